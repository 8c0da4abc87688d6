// Package csvfile keeps the run history in a local CSV file, one row per run.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/order_reporter/internal/domain"
)

type RunsRepository struct {
	path string
}

func NewRunsRepository(path string) *RunsRepository {
	return &RunsRepository{path: path}
}

// RecordRun appends run to the file, writing the header first when the file is new or empty.
func (r *RunsRepository) RecordRun(_ context.Context, run *domain.Run) (err error) {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat history file: %w", err)
	}

	w := csv.NewWriter(f)
	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = info.Size() == 0

	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write run: %w", err)
	}

	return nil
}

// Runs returns the recorded runs, newest first. limit 0 means all. A missing file has no runs.
func (r *RunsRepository) Runs(_ context.Context, limit uint64) (_ []*domain.Run, err error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var runs []*domain.Run
	for {
		var run domain.Run

		err := dec.Decode(&run)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode run #%d: %w", len(runs)+1, err)
		}

		runs = append(runs, &run)
	}

	slices.Reverse(runs)

	if limit > 0 && uint64(len(runs)) > limit {
		runs = runs[:limit]
	}

	return runs, nil
}
