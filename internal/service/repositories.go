package service

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tracker-tv/github-compliance-bot/internal/github"
	"github.com/tracker-tv/github-compliance-bot/models"
)

type RepositoryService interface {
	// ListMonitored returns the organization's repositories minus archived
	// ones and those matching an exclusion glob.
	ListMonitored(ctx context.Context) ([]models.Repository, error)
}

type repositoriesService struct {
	gh       github.Client
	excludes []string
}

func NewRepositoriesService(ghClient github.Client, excludes []string) RepositoryService {
	return &repositoriesService{gh: ghClient, excludes: excludes}
}

func (s *repositoriesService) ListMonitored(ctx context.Context) ([]models.Repository, error) {
	repos, err := s.gh.ListAllRepos(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil || repo.GetArchived() {
			continue
		}

		excluded, err := s.isExcluded(repo.GetName())
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}

		result = append(result, models.Repository{
			Name:     repo.GetName(),
			FullName: repo.GetFullName(),
			Private:  repo.GetPrivate(),
			Archived: repo.GetArchived(),
		})
	}

	return result, nil
}

func (s *repositoriesService) isExcluded(name string) (bool, error) {
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
