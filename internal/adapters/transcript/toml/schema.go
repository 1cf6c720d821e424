package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Session sessionSchema `toml:"session"`
	Record  recordSchema  `toml:"record"`
	Turns   []turnSchema  `toml:"turns"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported transcript schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ActiveAgent   string `toml:"active_agent"`
	StatusLine    string `toml:"status_line,omitempty"`
	PendingUpload string `toml:"pending_upload,omitempty"`
}

type recordSchema struct {
	Status           string `toml:"status"`
	ApplicantName    string `toml:"applicant_name,omitempty"`
	LoanAmount       string `toml:"loan_amount,omitempty"`
	Purpose          string `toml:"purpose,omitempty"`
	InterestRate     string `toml:"interest_rate,omitempty"`
	TenureMonths     int    `toml:"tenure_months,omitempty"`
	DecisionReason   string `toml:"decision_reason,omitempty"`
	DecisionEvidence string `toml:"decision_evidence,omitempty"`
}

type turnSchema struct {
	ID         string            `toml:"id"`
	Role       string            `toml:"role"`
	Content    string            `toml:"content"`
	CreatedAt  string            `toml:"created_at"`
	Sender     string            `toml:"sender,omitempty"`
	Attachment *attachmentSchema `toml:"attachment,omitempty"`
}

// attachmentSchema records attachment metadata only; payload bytes stay out
// of the export.
type attachmentSchema struct {
	Kind       string `toml:"kind"`
	MIMEType   string `toml:"mime_type"`
	DisplayURI string `toml:"display_uri,omitempty"`
}
