package pipeline

import (
	"context"

	"github.com/kurochkinivan/order_reporter/internal/domain"
)

type TableReader interface {
	ReadTable(path string) (*domain.Table, error)
}

type TableWriter interface {
	WriteTable(path string, table *domain.Table) error
}

type MailSink interface {
	// Draft stores msg as an unsent draft and returns where it was put.
	Draft(ctx context.Context, msg *domain.DraftMessage) (string, error)
}

// AddressChecker is implemented by mail sinks whose address rules are stricter than
// ValidateAddress.
type AddressChecker interface {
	CheckAddress(addr string) error
}

type ReportGenerator interface {
	GenerateReport(outputPath, title, sourceFile string, table *domain.Table) error
}

type RunRecorder interface {
	RecordRun(ctx context.Context, run *domain.Run) error
}
