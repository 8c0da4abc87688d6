package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/kurochkinivan/order_reporter/internal/config"
	"github.com/kurochkinivan/order_reporter/internal/domain"
	"github.com/kurochkinivan/order_reporter/internal/infrastructure/maildraft"
	"github.com/kurochkinivan/order_reporter/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/order_reporter/internal/infrastructure/tabular"
	"github.com/kurochkinivan/order_reporter/internal/pipeline"
	"github.com/kurochkinivan/order_reporter/internal/repository/csvfile"
	"github.com/kurochkinivan/order_reporter/internal/repository/postgresql"
)

type runStore interface {
	pipeline.RunRecorder
	Runs(ctx context.Context, limit uint64) ([]*domain.Run, error)
}

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// Run performs one report run. A MailSinkError comes back together with the summary.
func (a *App) Run(ctx context.Context) (*domain.DraftSummary, error) {
	composer, err := pipeline.NewComposer(a.cfg.Mail.SubjectTemplate, a.cfg.Mail.BodyTemplate)
	if err != nil {
		return nil, fmt.Errorf("invalid message template: %w", err)
	}

	store, closeStore, err := a.openRunStore(ctx)
	if err != nil {
		// the run history is best effort, a report run goes on without it
		a.log.WarnContext(ctx, "run history unavailable", slog.String("err", err.Error()))
	}
	defer closeStore()

	var recorder pipeline.RunRecorder
	if store != nil {
		recorder = store
	}

	tables := tabular.New(a.cfg.App.Sheet)

	p := pipeline.NewPipeline(
		a.log,
		tables,
		tables,
		composer,
		maildraft.New(a.cfg.Mail.DraftsDirectory),
		report_generator.New(),
		recorder,
	)

	return p.Run(ctx, pipeline.Request{
		Input:        a.cfg.App.Input,
		StatusColumn: a.cfg.App.StatusColumn,
		StatusValue:  a.cfg.App.StatusValue,
		Output:       a.cfg.App.Output,
		PDF:          a.cfg.App.PDF,
		From:         a.cfg.Mail.From,
		Recipient:    a.cfg.Mail.Recipient,
		CC:           a.cfg.Mail.CC,
		BCC:          a.cfg.Mail.BCC,
	})
}

// History writes the recorded runs to w as an aligned table.
func (a *App) History(ctx context.Context, w io.Writer) error {
	store, closeStore, err := a.openRunStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if store == nil {
		return fmt.Errorf("run history is disabled, set --history to %q or %q", config.HistoryCSV, config.HistoryPostgres)
	}

	runs, err := store.Runs(ctx, a.cfg.History.Limit)
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}

	return WriteRuns(w, runs)
}

func WriteRuns(w io.Writer, runs []*domain.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "FINISHED\tOUTCOME\tINPUT\tSTATUS\tMATCHED\tTOTAL\tRECIPIENT\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s=%s\t%d\t%d\t%s\t%s\n",
			r.FinishedAt.Local().Format(time.DateTime),
			r.Outcome,
			r.Input,
			r.StatusColumn, r.StatusValue,
			r.MatchedRows,
			r.TotalRows,
			r.Recipient,
			r.Output,
		)
	}

	return tw.Flush()
}

func (a *App) openRunStore(ctx context.Context) (runStore, func(), error) {
	noop := func() {}

	switch a.cfg.History.Driver {
	case config.HistoryCSV:
		a.log.DebugContext(ctx, "using csv run history", slog.String("history_file", a.cfg.History.File))

		return csvfile.NewRunsRepository(a.cfg.History.File), noop, nil

	case config.HistoryPostgres:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create db connection: %w", err)
		}

		return postgresql.NewRunsRepository(pool), pool.Close, nil

	default:
		return nil, noop, nil
	}
}
