package report_generator

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/order_reporter/internal/domain"
)

const (
	titleHeight = 12
	rowHeight   = 7
	fontSize    = 8
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders table as a PDF with one grid column per table column.
func (g *Generator) GenerateReport(outputPath, title, sourceFile string, table *domain.Table) error {
	grid := max(len(table.Columns), 1)

	m := maroto.New(config.NewBuilder().
		WithMaxGridSize(grid).
		Build(),
	)

	m.AddRow(titleHeight, text.NewCol(grid, title, props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	m.AddRow(rowHeight, text.NewCol(grid, fmt.Sprintf("Source: %s, rows: %d", sourceFile, table.Len()), props.Text{
		Size:  fontSize,
		Align: align.Center,
	}))

	m.AddRow(rowHeight, cells(table.Columns, props.Text{Size: fontSize, Style: fontstyle.Bold})...)

	for _, row := range table.Rows() {
		m.AddRow(rowHeight, cells(row, props.Text{Size: fontSize})...)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func cells(values []string, style props.Text) []core.Col {
	cols := make([]core.Col, 0, len(values))
	for _, v := range values {
		cols = append(cols, text.NewCol(1, v, style))
	}

	return cols
}
