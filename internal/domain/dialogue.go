package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type AttachmentKind string

const AttachmentImage AttachmentKind = "image"

// Attachment carries one binary payload on a dialogue turn. Data holds the
// transport-encoded form as supplied by the ingestion collaborator, which may
// include a data-URI wrapper.
type Attachment struct {
	Kind       AttachmentKind
	Data       string
	MIMEType   string
	DisplayURI string
}

// RawBase64 strips any data-URI prefix ("data:<mime>;base64,") and returns
// the bare base64 payload.
func (a Attachment) RawBase64() string {
	if !strings.HasPrefix(a.Data, "data:") {
		return a.Data
	}

	if idx := strings.Index(a.Data, ","); idx >= 0 {
		return a.Data[idx+1:]
	}

	return a.Data
}

// Bytes decodes the attachment payload for forwarding to the model.
func (a Attachment) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(a.RawBase64())
	if err != nil {
		return nil, fmt.Errorf("decode attachment payload: %w", err)
	}

	return data, nil
}

// DialogueTurn is one exchange unit. Turns are immutable once appended.
type DialogueTurn struct {
	ID         string
	Role       Role
	Content    string
	CreatedAt  time.Time
	Sender     Agent
	Attachment *Attachment
}

// Replayable reports whether the turn is part of the conversation history
// sent back to the model. System turns are UI-only error annotations.
func (t DialogueTurn) Replayable() bool {
	return t.Role == RoleUser || t.Role == RoleAssistant
}

// DialogueLog is the append-only ordered turn sequence for one session.
type DialogueLog struct {
	turns []DialogueTurn
}

func (l *DialogueLog) Append(turn DialogueTurn) DialogueTurn {
	l.turns = append(l.turns, turn)
	return turn
}

// Turns returns a copy so callers cannot edit or reorder the log.
func (l *DialogueLog) Turns() []DialogueTurn {
	out := make([]DialogueTurn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *DialogueLog) Len() int {
	return len(l.turns)
}
