package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// client implements Service interface
type client struct {
	api     *slack.Client
	channel string
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new Slack service posting to the given channel ID
func New(token, channelID string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	c := &client{
		api:     slack.New(token),
		channel: channelID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// eventHeadline maps an event kind to the message headline
func eventHeadline(ev *model.Event) string {
	switch ev.Kind {
	case model.EventIncidentOpened:
		return fmt.Sprintf(":rotating_light: Incident reported: %s", ev.Title)
	case model.EventIncidentClosed:
		return fmt.Sprintf(":white_check_mark: Incident closed: %s", ev.Title)
	case model.EventEquipmentStatusChanged:
		return fmt.Sprintf(":gear: Equipment %s is now %s", ev.EquipmentName, ev.Detail)
	case model.EventInterventionScheduled:
		return fmt.Sprintf(":calendar: Intervention scheduled for: %s", ev.Title)
	case model.EventInterventionCompleted:
		return ":hammer_and_wrench: Intervention completed"
	case model.EventInterventionCancelled:
		return fmt.Sprintf(":no_entry: Intervention cancelled: %s", ev.Title)
	default:
		return fmt.Sprintf("Lifecycle event: %s", ev.Kind)
	}
}

func (c *client) Notify(ctx context.Context, ev *model.Event) error {
	fields := []*slack.TextBlockObject{}
	if ev.EquipmentID != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Equipment:* %s", ev.EquipmentID), false, false))
	}
	if ev.IncidentID != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Incident:* %s", ev.IncidentID), false, false))
	}
	if ev.InterventionID != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Intervention:* %s", ev.InterventionID), false, false))
	}
	fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType,
		fmt.Sprintf("*At:* %s", ev.OccurredAt.Format(time.RFC3339)), false, false))

	headline := eventHeadline(ev)
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, headline, false, false),
			nil, nil),
		slack.NewSectionBlock(nil, fields, nil),
	}

	_, _, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(headline, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post event message",
			goerr.V("channel", c.channel),
			goerr.V("kind", ev.Kind))
	}

	return nil
}

func (c *client) ListUsers(ctx context.Context) ([]*model.Personnel, error) {
	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list Slack users")
	}

	now := time.Now().UTC()
	personnel := make([]*model.Personnel, 0, len(users))
	for _, u := range users {
		if u.Deleted || u.IsBot || u.ID == "USLACKBOT" {
			continue
		}
		name := u.Profile.RealName
		if name == "" {
			name = u.Name
		}
		personnel = append(personnel, &model.Personnel{
			ID:       types.PersonnelID(u.ID),
			Name:     name,
			Email:    u.Profile.Email,
			Role:     u.Profile.Title,
			SyncedAt: now,
		})
	}

	return personnel, nil
}
