package config

import "time"

// NewAppForTest creates an App config for testing purposes
func NewAppForTest(path string) *App {
	return &App{path: path}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channelID string, syncInterval time.Duration) *Slack {
	return &Slack{
		botToken:     botToken,
		channelID:    channelID,
		syncInterval: syncInterval,
	}
}
