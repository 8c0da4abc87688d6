package config_test

import (
	"testing"

	"github.com/kurochkinivan/order_reporter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		App: config.App{
			Input:        "orders.xlsx",
			Output:       "processing.xlsx",
			StatusColumn: "Order Status",
			StatusValue:  "Processing",
		},
		Mail: config.Mail{
			Recipient:       "ops@example.com",
			DraftsDirectory: "drafts",
		},
		History: config.History{
			Driver: config.HistoryNone,
		},
	}
}

func TestConfig_ValidateRun(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConfig().ValidateRun())

	cfg := validConfig()
	cfg.App.Input = ""
	cfg.App.StatusValue = ""

	err := cfg.ValidateRun()
	require.Error(t, err)
	assert.ErrorContains(t, err, "input is required")
	assert.ErrorContains(t, err, "status is required")
}

func TestConfig_ValidateRun_LeavesRecipientToPipeline(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Mail.Recipient = ""

	assert.NoError(t, cfg.ValidateRun())
}

func TestConfig_ValidateHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		history config.History
		pg      config.PostgreSQL
		wantErr string
	}{
		{name: "none", history: config.History{Driver: config.HistoryNone}},
		{name: "csv", history: config.History{Driver: config.HistoryCSV, File: "runs.csv"}},
		{
			name:    "csv without file",
			history: config.History{Driver: config.HistoryCSV},
			wantErr: "history-file is required",
		},
		{
			name:    "postgres",
			history: config.History{Driver: config.HistoryPostgres},
			pg:      config.PostgreSQL{Host: "localhost", Port: "5432", Username: "reporter", DBName: "order_reporter"},
		},
		{
			name:    "postgres without username",
			history: config.History{Driver: config.HistoryPostgres},
			pg:      config.PostgreSQL{Host: "localhost", Port: "5432", DBName: "order_reporter"},
			wantErr: "pg-username is required",
		},
		{
			name:    "unknown driver",
			history: config.History{Driver: "sqlite"},
			wantErr: `unknown history driver "sqlite"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.History = tt.history
			cfg.PostgreSQL = tt.pg

			err := cfg.ValidateHistory()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
