package domain

import "time"

const (
	// StatementTitle heads every account statement.
	StatementTitle = "Account Statement"
	// NotAvailable replaces fields of an account that could not be found.
	NotAvailable = "N/A"
	// PDFContentType is the media type of rendered documents.
	PDFContentType = "application/pdf"
)

// Statement is a rendered account statement.
type Statement struct {
	AccountID      string
	TargetCurrency string
	Title          string
	Lines          []string
	Document       []byte
	Converted      bool
}

// Filename returns the inline filename used when serving the statement.
func (s *Statement) Filename() string {
	return StatementFilename(s.AccountID)
}

// StatementFilename returns "statement-<accountID>.pdf".
func StatementFilename(accountID string) string {
	return "statement-" + accountID + ".pdf"
}

// StatementEvent is published after a statement has been rendered.
type StatementEvent struct {
	GeneratedAt    time.Time `json:"generated_at"`
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	TargetCurrency string    `json:"target_currency"`
	Converted      bool      `json:"converted"`
	Bytes          int       `json:"bytes"`
}
