package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hotelops-lab/upkeep/pkg/service/slack"
)

// Slack holds CLI flags for the Slack notifier configuration
type Slack struct {
	botToken     string `masq:"secret"`
	channelID    string
	syncInterval time.Duration
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token",
			Sources:     cli.EnvVars("UPKEEP_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID to post lifecycle events to",
			Sources:     cli.EnvVars("UPKEEP_SLACK_CHANNEL_ID"),
			Destination: &s.channelID,
		},
		&cli.DurationFlag{
			Name:        "slack-sync-interval",
			Usage:       "Interval for syncing personnel from the Slack workspace",
			Value:       6 * time.Hour,
			Sources:     cli.EnvVars("UPKEEP_SLACK_SYNC_INTERVAL"),
			Destination: &s.syncInterval,
		},
	}
}

// IsConfigured returns true if a bot token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channelID != ""
}

// SyncInterval returns the personnel sync interval
func (s *Slack) SyncInterval() time.Duration {
	return s.syncInterval
}

// Configure builds a Slack service from the flags
func (s *Slack) Configure() (slack.Service, error) {
	if !s.IsConfigured() {
		return nil, goerr.New("slack-bot-token and slack-channel-id are required")
	}
	return slack.New(s.botToken, s.channelID)
}

func (s *Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", s.IsConfigured()),
		slog.String("channel_id", s.channelID),
		slog.Duration("sync_interval", s.syncInterval),
	)
}
