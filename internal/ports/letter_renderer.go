package ports

import (
	"context"

	"github.com/swiftloan/swiftloan-cli/internal/domain"
)

// LetterRenderer turns a finalized, approved application record into a
// persisted sanction-letter artifact and returns its path.
type LetterRenderer interface {
	Render(ctx context.Context, record domain.ApplicationRecord) (string, error)
}
