package domain

import "time"

type Run struct {
	Input        string    `csv:"input"         db:"input"`
	Output       string    `csv:"output"        db:"output"`
	StatusColumn string    `csv:"status_column" db:"status_column"`
	StatusValue  string    `csv:"status_value"  db:"status_value"`
	Recipient    string    `csv:"recipient"     db:"recipient"`
	TotalRows    int       `csv:"total_rows"    db:"total_rows"`
	MatchedRows  int       `csv:"matched_rows"  db:"matched_rows"`
	Outcome      Outcome   `csv:"outcome"       db:"outcome"`
	DraftPath    string    `csv:"draft_path"    db:"draft_path"`
	ErrorMessage string    `csv:"error_message" db:"error_message"`
	FinishedAt   time.Time `csv:"finished_at"   db:"finished_at"`
}
