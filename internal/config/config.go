package config

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

const (
	HistoryNone     = "none"
	HistoryCSV      = "csv"
	HistoryPostgres = "postgres"
)

type Config struct {
	App
	Mail
	History
	PostgreSQL
}

type App struct {
	Input        string
	Output       string
	PDF          string
	Sheet        string
	StatusColumn string
	StatusValue  string
}

type Mail struct {
	From            string
	Recipient       string
	CC              []string
	BCC             []string
	DraftsDirectory string
	SubjectTemplate string
	BodyTemplate    string
}

type History struct {
	Driver string
	File   string
	Limit  uint64
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Input:        cmd.String("input"),
			Output:       cmd.String("output"),
			PDF:          cmd.String("pdf"),
			Sheet:        cmd.String("sheet"),
			StatusColumn: cmd.String("status-column"),
			StatusValue:  cmd.String("status"),
		},
		Mail: Mail{
			From:            cmd.String("from"),
			Recipient:       cmd.String("recipient"),
			CC:              cmd.StringSlice("cc"),
			BCC:             cmd.StringSlice("bcc"),
			DraftsDirectory: cmd.String("drafts-dir"),
			SubjectTemplate: cmd.String("subject-template"),
			BodyTemplate:    cmd.String("body-template"),
		},
		History: History{
			Driver: cmd.String("history"),
			File:   cmd.String("history-file"),
			Limit:  cmd.Uint64("limit"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
	}
}

// ValidateRun checks what a report run needs beyond the history settings. Addresses are
// checked by the pipeline. An empty status is rejected, it is indistinguishable from an
// omitted --status.
func (c *Config) ValidateRun() error {
	var errs []error

	for _, req := range []struct{ name, value string }{
		{"input", c.App.Input},
		{"output", c.App.Output},
		{"status", c.App.StatusValue},
		{"status-column", c.App.StatusColumn},
		{"drafts-dir", c.Mail.DraftsDirectory},
	} {
		if req.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", req.name))
		}
	}

	errs = append(errs, c.ValidateHistory())

	return errors.Join(errs...)
}

func (c *Config) ValidateHistory() error {
	switch c.History.Driver {
	case HistoryNone:
		return nil
	case HistoryCSV:
		if c.History.File == "" {
			return errors.New("history-file is required for the csv history")
		}
		return nil
	case HistoryPostgres:
		for _, req := range []struct{ name, value string }{
			{"pg-host", c.PostgreSQL.Host},
			{"pg-port", c.PostgreSQL.Port},
			{"pg-username", c.PostgreSQL.Username},
			{"pg-dbname", c.PostgreSQL.DBName},
		} {
			if req.value == "" {
				return fmt.Errorf("%s is required for the postgres history", req.name)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown history driver %q, expected %q, %q or %q",
			c.History.Driver, HistoryNone, HistoryCSV, HistoryPostgres)
	}
}
