package github

import (
	"context"

	"github.com/tracker-tv/github-compliance-bot/models"
)

func (c *client) ListCustomProperties(ctx context.Context, repo string) ([]models.CustomProperty, error) {
	values, _, err := c.repositories.GetAllCustomPropertyValues(ctx, c.org, repo)
	if err != nil {
		return nil, err
	}

	props := make([]models.CustomProperty, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		props = append(props, models.CustomProperty{
			PropertyName: v.PropertyName,
			Value:        v.Value,
		})
	}
	return props, nil
}
