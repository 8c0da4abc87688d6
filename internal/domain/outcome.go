package domain

type Outcome string

const (
	OutcomeDrafted     Outcome = "drafted"
	OutcomeDraftFailed Outcome = "draft_failed"
	OutcomeFailed      Outcome = "failed"
)
