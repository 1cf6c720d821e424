// Package toml exports a session transcript (dialogue log, application
// record, session state) to a TOML file and reads it back. Export is an
// explicit user action, not crash-recovery state.
package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
)

const (
	transcriptDirMode  = 0o700
	transcriptFileMode = 0o600
	tempFilePattern    = ".transcript-*.toml.tmp"
)

// Transcript is the unit of export: everything needed to review a session or
// to render its sanction letter later.
type Transcript struct {
	Session domain.Session
	Record  domain.ApplicationRecord
	Turns   []domain.DialogueTurn
}

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Export writes the transcript atomically: marshal to a temp file in the
// destination directory, then rename over the target.
func (s *Store) Export(ctx context.Context, path string, transcript Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := toSchema(transcript)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, transcriptDirMode); err != nil {
		return fmt.Errorf("create transcript directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp transcript file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp transcript file: %w", err)
	}
	if err := tempFile.Chmod(transcriptFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp transcript file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp transcript file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace transcript file: %w", err)
	}
	cleanup = false

	return nil
}

// Load reads a previously exported transcript.
func (s *Store) Load(ctx context.Context, path string) (Transcript, error) {
	if err := ctx.Err(); err != nil {
		return Transcript{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return Transcript{}, fmt.Errorf("decode transcript file: %w", err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return Transcript{}, err
	}

	return fromSchema(file)
}

func toSchema(transcript Transcript) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Session: sessionSchema{
			ActiveAgent:   string(transcript.Session.ActiveAgent),
			StatusLine:    transcript.Session.StatusLine,
			PendingUpload: string(transcript.Session.PendingUpload),
		},
		Record: recordSchema{
			Status:           string(transcript.Record.Status),
			ApplicantName:    transcript.Record.ApplicantName,
			Purpose:          transcript.Record.Purpose,
			TenureMonths:     transcript.Record.TenureMonths,
			DecisionReason:   transcript.Record.DecisionReason,
			DecisionEvidence: transcript.Record.DecisionEvidence,
		},
	}

	if !transcript.Record.LoanAmount.IsZero() {
		file.Record.LoanAmount = transcript.Record.LoanAmount.String()
	}
	if !transcript.Record.InterestRate.IsZero() {
		file.Record.InterestRate = transcript.Record.InterestRate.String()
	}

	for _, turn := range transcript.Turns {
		schema := turnSchema{
			ID:        turn.ID,
			Role:      string(turn.Role),
			Content:   turn.Content,
			CreatedAt: turn.CreatedAt.UTC().Format(time.RFC3339),
			Sender:    string(turn.Sender),
		}
		if turn.Attachment != nil {
			schema.Attachment = &attachmentSchema{
				Kind:       string(turn.Attachment.Kind),
				MIMEType:   turn.Attachment.MIMEType,
				DisplayURI: turn.Attachment.DisplayURI,
			}
		}
		file.Turns = append(file.Turns, schema)
	}

	return file
}

func fromSchema(file fileSchema) (Transcript, error) {
	transcript := Transcript{
		Session: domain.Session{
			ActiveAgent:   domain.Agent(file.Session.ActiveAgent),
			StatusLine:    file.Session.StatusLine,
			PendingUpload: domain.DocumentType(file.Session.PendingUpload),
		},
		Record: domain.ApplicationRecord{
			Status:           domain.Status(file.Record.Status),
			ApplicantName:    file.Record.ApplicantName,
			Purpose:          file.Record.Purpose,
			TenureMonths:     file.Record.TenureMonths,
			DecisionReason:   file.Record.DecisionReason,
			DecisionEvidence: file.Record.DecisionEvidence,
		},
	}

	if file.Record.LoanAmount != "" {
		amount, err := decimal.NewFromString(file.Record.LoanAmount)
		if err != nil {
			return Transcript{}, fmt.Errorf("parse loan amount: %w", err)
		}
		transcript.Record.LoanAmount = amount
	}
	if file.Record.InterestRate != "" {
		rate, err := decimal.NewFromString(file.Record.InterestRate)
		if err != nil {
			return Transcript{}, fmt.Errorf("parse interest rate: %w", err)
		}
		transcript.Record.InterestRate = rate
	}

	for _, schema := range file.Turns {
		createdAt, err := time.Parse(time.RFC3339, schema.CreatedAt)
		if err != nil {
			return Transcript{}, fmt.Errorf("parse turn %s timestamp: %w", schema.ID, err)
		}

		turn := domain.DialogueTurn{
			ID:        schema.ID,
			Role:      domain.Role(schema.Role),
			Content:   schema.Content,
			CreatedAt: createdAt,
			Sender:    domain.Agent(schema.Sender),
		}
		if schema.Attachment != nil {
			turn.Attachment = &domain.Attachment{
				Kind:       domain.AttachmentKind(schema.Attachment.Kind),
				MIMEType:   schema.Attachment.MIMEType,
				DisplayURI: schema.Attachment.DisplayURI,
			}
		}
		transcript.Turns = append(transcript.Turns, turn)
	}

	return transcript, nil
}
