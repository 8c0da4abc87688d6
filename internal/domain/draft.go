package domain

type DraftMessage struct {
	From        string
	Recipient   string
	CC          []string
	BCC         []string
	Subject     string
	Body        string
	Attachments []string
}

type DraftSummary struct {
	Input        string
	Output       string
	PDF          string
	StatusColumn string
	StatusValue  string
	TotalRows    int
	MatchedRows  int
	Recipient    string
	Subject      string
	DraftPath    string // empty when the draft could not be created
	Drafted      bool
}
