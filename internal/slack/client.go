package slack

import (
	"context"

	slackapi "github.com/slack-go/slack"
)

// Message is the structured notification content handed to the transport.
// Text is the plain fallback for surfaces without block support.
type Message struct {
	Text        string
	Blocks      []slackapi.Block
	Attachments []slackapi.Attachment
}

// Client is the notification transport collaborator. A channel id or a Slack
// user id are both valid targets for PostMessage.
type Client interface {
	GetUserByEmail(ctx context.Context, email string) (*slackapi.User, error)
	PostMessage(ctx context.Context, channelID string, msg Message) error
}

type client struct {
	api *slackapi.Client
}

func New(token string) Client {
	return &client{api: slackapi.New(token)}
}

func (c *client) GetUserByEmail(ctx context.Context, email string) (*slackapi.User, error) {
	return c.api.GetUserByEmailContext(ctx, email)
}

func (c *client) PostMessage(ctx context.Context, channelID string, msg Message) error {
	opts := []slackapi.MsgOption{
		slackapi.MsgOptionText(msg.Text, false),
	}
	if len(msg.Blocks) > 0 {
		opts = append(opts, slackapi.MsgOptionBlocks(msg.Blocks...))
	}
	if len(msg.Attachments) > 0 {
		opts = append(opts, slackapi.MsgOptionAttachments(msg.Attachments...))
	}
	_, _, err := c.api.PostMessageContext(ctx, channelID, opts...)
	return err
}
