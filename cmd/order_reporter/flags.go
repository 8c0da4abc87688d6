package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/order_reporter/internal/app"
	"github.com/kurochkinivan/order_reporter/internal/config"
	"github.com/kurochkinivan/order_reporter/internal/domain"
	"github.com/kurochkinivan/order_reporter/internal/pipeline"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "order_reporter",
		Usage:   "Filter spreadsheet rows by status and draft an email with the result attached",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFrom(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)
			if err := cfg.ValidateRun(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			summary, err := app.New(log, cfg).Run(ctx)
			if summary != nil {
				printSummary(cmd, summary)
			}

			return err
		},
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "List recorded report runs",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:  "limit",
						Usage: "Show at most `N` runs, 0 for all",
						Value: 20,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, err := loggerFrom(ctx)
					if err != nil {
						return err
					}

					cfg := config.Load(cmd)
					if err := cfg.ValidateHistory(); err != nil {
						return fmt.Errorf("invalid configuration: %w", err)
					}

					return app.New(log, cfg).History(ctx, cmd.Root().Writer)
				},
			},
		},
	}
}

func loggerFrom(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return log, nil
}

func printSummary(cmd *cli.Command, s *domain.DraftSummary) {
	w := cmd.Root().Writer

	fmt.Fprintf(w, "%d of %d rows with %s %q written to %q\n", s.MatchedRows, s.TotalRows, s.StatusColumn, s.StatusValue, s.Output)
	if s.Drafted {
		fmt.Fprintf(w, "Draft email for %s created at %q\n", s.Recipient, s.DraftPath)
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Read rows from spreadsheet `FILE` (.xlsx, .csv or .tsv)",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.input", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "status",
			Aliases: []string{"s"},
			Usage:   "Keep rows whose status column equals `VALUE` exactly",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.status", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "status-column",
			Usage:   "Set the name of the status column",
			Value:   "Order Status",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.status_column", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the filtered rows to `FILE`, same format as the input",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.output", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "pdf",
			Usage:     "Also render the filtered rows to PDF `FILE` and attach it",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.pdf", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePDF,
		},
		&cli.StringFlag{
			Name:    "sheet",
			Usage:   "Read worksheet `NAME` of an xlsx input instead of the first one",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.sheet", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "recipient",
			Aliases: []string{"r", "to"},
			Usage:   "Address the draft to `EMAIL`",
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.recipient", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringSliceFlag{
			Name:    "cc",
			Usage:   "Add `EMAIL` to the draft's Cc, repeatable",
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.cc", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringSliceFlag{
			Name:    "bcc",
			Usage:   "Add `EMAIL` to the draft's Bcc, repeatable",
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.bcc", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "from",
			Usage:   "Set the draft's From address",
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.from", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "drafts-dir",
			Usage:   "Store draft .eml files in `DIR`",
			Value:   "drafts",
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.drafts_dir", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "subject-template",
			Usage:   "Set the subject `TEMPLATE` (fields: .Count .Total .Status .Column .Input .Output .Date)",
			Value:   pipeline.DefaultSubjectTemplate,
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.subject_template", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "body-template",
			Usage:   "Set the body `TEMPLATE`, same fields as the subject",
			Value:   pipeline.DefaultBodyTemplate,
			Sources: cli.NewValueSourceChain(yaml.YAML("mail.body_template", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "history",
			Usage:   "Record runs to `DRIVER`: none, csv or postgres",
			Value:   "none",
			Sources: cli.NewValueSourceChain(yaml.YAML("history.driver", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "history-file",
			Usage:   "Append runs to CSV `FILE` when --history=csv",
			Value:   "runs.csv",
			Sources: cli.NewValueSourceChain(yaml.YAML("history.file", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "order_reporter",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validatePDF(path string) error {
	if ext := filepath.Ext(path); ext != ".pdf" {
		return fmt.Errorf("invalid extension %q, expected .pdf", ext)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
