package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/order_reporter/internal/domain"
)

type Request struct {
	Input        string
	StatusColumn string
	StatusValue  string
	Output       string
	PDF          string // optional PDF rendition, attached after Output
	From         string
	Recipient    string
	CC           []string
	BCC          []string
}

type Pipeline struct {
	log             *slog.Logger
	reader          TableReader
	writer          TableWriter
	composer        *Composer
	mailSink        MailSink
	reportGenerator ReportGenerator
	runRecorder     RunRecorder
	now             func() time.Time
}

// NewPipeline wires the collaborators of a run. reportGenerator and runRecorder may be nil.
func NewPipeline(
	log *slog.Logger,
	reader TableReader,
	writer TableWriter,
	composer *Composer,
	mailSink MailSink,
	reportGenerator ReportGenerator,
	runRecorder RunRecorder,
) *Pipeline {
	return &Pipeline{
		log:             log,
		reader:          reader,
		writer:          writer,
		composer:        composer,
		mailSink:        mailSink,
		reportGenerator: reportGenerator,
		runRecorder:     runRecorder,
		now:             time.Now,
	}
}

// Run reads req.Input, keeps the records whose status column equals req.StatusValue, writes
// them to req.Output and drafts a message with the result attached.
//
// A failed draft returns the summary together with an error matching ErrMailSink; the output
// file is kept. Every other error is terminal and returns a nil summary.
func (p *Pipeline) Run(ctx context.Context, req Request) (*domain.DraftSummary, error) {
	log := p.log.With(
		slog.String("input", req.Input),
		slog.String("status_column", req.StatusColumn),
		slog.String("status_value", req.StatusValue),
	)

	log.InfoContext(ctx, "starting report run")

	summary, err := p.run(ctx, log, req)

	p.recordRun(ctx, log, req, summary, err)

	switch {
	case err == nil:
		log.InfoContext(ctx, "report run finished",
			slog.Int("matched_rows", summary.MatchedRows),
			slog.String("draft", summary.DraftPath),
		)
		return summary, nil

	case errors.Is(err, ErrMailSink):
		log.WarnContext(ctx, "report written but draft failed",
			slog.String("output", summary.Output),
			slog.String("err", err.Error()),
		)
		return summary, err

	default:
		log.ErrorContext(ctx, "report run failed", slog.String("err", err.Error()))
		return nil, err
	}
}

func (p *Pipeline) run(ctx context.Context, log *slog.Logger, req Request) (*domain.DraftSummary, error) {
	summary := &domain.DraftSummary{
		Input:        req.Input,
		Output:       req.Output,
		PDF:          req.PDF,
		StatusColumn: req.StatusColumn,
		StatusValue:  req.StatusValue,
		Recipient:    req.Recipient,
	}

	if err := p.validateAddresses(req); err != nil {
		return summary, err
	}

	if err := checkOutputPaths(req); err != nil {
		return summary, err
	}

	log.DebugContext(ctx, "loading table")

	table, err := p.reader.ReadTable(req.Input)
	if err != nil {
		return summary, sourceReadError(req.Input, err)
	}
	summary.TotalRows = table.Len()

	if err := checkSchema(table, req.StatusColumn); err != nil {
		return summary, err
	}

	report := Filter(table, req.StatusColumn, req.StatusValue)
	summary.MatchedRows = report.Len()

	log.DebugContext(ctx, "filtered table",
		slog.Int("total_rows", summary.TotalRows),
		slog.Int("matched_rows", summary.MatchedRows),
	)

	if err := p.writer.WriteTable(req.Output, report); err != nil {
		return summary, sinkWriteError(req.Output, err)
	}

	log.DebugContext(ctx, "report written", slog.String("output", req.Output))

	attachments := []string{req.Output}

	if req.PDF != "" && p.reportGenerator != nil {
		title := fmt.Sprintf("%s: %s", req.StatusColumn, req.StatusValue)
		if err := p.reportGenerator.GenerateReport(req.PDF, title, filepath.Base(req.Input), report); err != nil {
			return summary, sinkWriteError(req.PDF, err)
		}

		log.DebugContext(ctx, "pdf report written", slog.String("pdf", req.PDF))

		attachments = append(attachments, req.PDF)
	}

	subject, body, err := p.composer.Compose(MessageData{
		Count:  summary.MatchedRows,
		Total:  summary.TotalRows,
		Status: req.StatusValue,
		Column: req.StatusColumn,
		Input:  filepath.Base(req.Input),
		Output: filepath.Base(req.Output),
		Date:   p.now().Format(time.DateOnly),
	})
	if err != nil {
		return summary, mailSinkError(req.Recipient, err)
	}
	summary.Subject = subject

	draftPath, err := p.mailSink.Draft(ctx, &domain.DraftMessage{
		From:        req.From,
		Recipient:   req.Recipient,
		CC:          req.CC,
		BCC:         req.BCC,
		Subject:     subject,
		Body:        body,
		Attachments: attachments,
	})
	if err != nil {
		return summary, mailSinkError(req.Recipient, err)
	}

	summary.DraftPath = draftPath
	summary.Drafted = true

	return summary, nil
}

func checkOutputPaths(req Request) error {
	input, err := filepath.Abs(req.Input)
	if err != nil {
		return sourceReadError(req.Input, err)
	}

	for _, out := range []string{req.Output, req.PDF} {
		if out == "" {
			continue
		}

		abs, err := filepath.Abs(out)
		if err != nil {
			return sinkWriteError(out, err)
		}

		if abs == input {
			return sinkWriteError(out, errors.New("output would overwrite the input file"))
		}
	}

	if req.Output == "" {
		return sinkWriteError(req.Output, errors.New("output path is empty"))
	}

	return nil
}

func (p *Pipeline) recordRun(
	ctx context.Context,
	log *slog.Logger,
	req Request,
	summary *domain.DraftSummary,
	runErr error,
) {
	if p.runRecorder == nil {
		return
	}

	run := &domain.Run{
		Input:        req.Input,
		Output:       req.Output,
		StatusColumn: req.StatusColumn,
		StatusValue:  req.StatusValue,
		Recipient:    req.Recipient,
		Outcome:      domain.OutcomeDrafted,
		FinishedAt:   p.now().UTC(),
	}

	if summary != nil {
		run.TotalRows = summary.TotalRows
		run.MatchedRows = summary.MatchedRows
		run.DraftPath = summary.DraftPath
	}

	if runErr != nil {
		run.Outcome = domain.OutcomeFailed
		if errors.Is(runErr, ErrMailSink) {
			run.Outcome = domain.OutcomeDraftFailed
		}
		run.ErrorMessage = runErr.Error()
	}

	if err := p.runRecorder.RecordRun(ctx, run); err != nil {
		log.WarnContext(ctx, "failed to record run", slog.String("err", err.Error()))
	}
}
