package domain

import (
	"fmt"
	"strings"
)

type DocumentType string

const (
	DocumentIdentityProof DocumentType = "identity_proof"
	DocumentIncomeProof   DocumentType = "income_proof"
)

func ParseDocumentType(value string) (DocumentType, error) {
	switch DocumentType(strings.ToLower(strings.TrimSpace(value))) {
	case DocumentIdentityProof:
		return DocumentIdentityProof, nil
	case DocumentIncomeProof:
		return DocumentIncomeProof, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, value)
}

func (d DocumentType) Label() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

// Session consolidates the per-session workflow state that the interpreter
// commits as one snapshot: which persona speaks next, the latest status
// phrase for the panel, and the upload gate. A zero DocumentType means no
// upload is pending.
type Session struct {
	ActiveAgent   Agent
	StatusLine    string
	PendingUpload DocumentType
}

func NewSession() Session {
	return Session{ActiveAgent: AgentSales}
}

func (s Session) UploadPending() bool {
	return s.PendingUpload != ""
}
