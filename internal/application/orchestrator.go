package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
)

// shortReplyRunes is the threshold under which model text accompanying a tool
// batch is considered unusable and replaced with canned copy.
const shortReplyRunes = 10

const transportFailureNotice = "System Error: Unable to reach the agent network. Please ensure your API key is valid and try again."

// Config carries orchestrator policy knobs.
type Config struct {
	// StrictUploads clears the upload gate only when the arriving user turn
	// actually carries an attachment. The default (false) treats any user
	// turn as fulfilling an outstanding document request.
	StrictUploads bool
}

// TurnResult reports what one submission appended and the committed state.
type TurnResult struct {
	Assistant  *domain.DialogueTurn
	SystemNote *domain.DialogueTurn
	Session    domain.Session
	Record     domain.ApplicationRecord
}

// Orchestrator drives one session: it accepts user turns, invokes the model,
// applies interpreter effects, reconciles displayed text, and appends to the
// dialogue log. At most one turn is in flight at a time.
type Orchestrator struct {
	model       ports.ModelClient
	composer    Composer
	interpreter *Interpreter
	clock       ports.Clock
	logger      *slog.Logger
	cfg         Config

	mu      sync.Mutex
	busy    bool
	log     domain.DialogueLog
	session domain.Session
	record  domain.ApplicationRecord
}

func NewOrchestrator(model ports.ModelClient, clock ports.Clock, logger *slog.Logger, cfg Config) *Orchestrator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := &Orchestrator{
		model:       model,
		composer:    NewComposer(),
		interpreter: NewInterpreter(logger),
		clock:       clock,
		logger:      logger,
		cfg:         cfg,
		session:     domain.NewSession(),
		record:      domain.NewApplicationRecord(),
	}

	o.log.Append(domain.DialogueTurn{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   domain.AgentSales.Greeting(),
		CreatedAt: clock.Now(),
		Sender:    domain.AgentSales,
	})

	return o
}

// Submit runs one full turn. Blank submissions and submissions made while a
// turn is in flight are no-ops reported through sentinel errors; the log is
// untouched in both cases. Transport failures are recovered here: a single
// system turn is appended and the session stays usable.
func (o *Orchestrator) Submit(ctx context.Context, text string, attachment *domain.Attachment) (TurnResult, error) {
	if strings.TrimSpace(text) == "" && attachment == nil {
		return TurnResult{}, domain.ErrEmptySubmission
	}

	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return TurnResult{}, domain.ErrSessionBusy
	}
	o.busy = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.busy = false
		o.mu.Unlock()
	}()

	o.log.Append(domain.DialogueTurn{
		ID:         uuid.NewString(),
		Role:       domain.RoleUser,
		Content:    text,
		CreatedAt:  o.clock.Now(),
		Attachment: attachment,
	})

	if !o.cfg.StrictUploads || attachment != nil {
		o.session.PendingUpload = ""
	}

	request, err := o.composer.Compose(o.log.Turns(), o.session, o.record)
	if err != nil {
		return o.recoverTurn(fmt.Errorf("compose model request: %w", err)), nil
	}

	response, err := o.model.Generate(ctx, request)
	if err != nil {
		return o.recoverTurn(fmt.Errorf("call model: %w", err)), nil
	}

	outcome := o.interpreter.Apply(o.session, o.record, response.ToolCalls)

	content := o.reconcileText(response, outcome)

	o.session = outcome.Session
	o.record = outcome.Record

	result := TurnResult{Session: o.session, Record: o.record}
	if content == "" {
		o.logger.Debug("suppressing empty assistant turn")
		return result, nil
	}

	// The assistant turn is attributed to the agent active after the batch,
	// so handoff messages carry the incoming persona's label.
	assistant := o.log.Append(domain.DialogueTurn{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   content,
		CreatedAt: o.clock.Now(),
		Sender:    o.session.ActiveAgent,
	})
	result.Assistant = &assistant

	return result, nil
}

func (o *Orchestrator) reconcileText(response ports.ModelResponse, outcome Outcome) string {
	content := strings.TrimSpace(response.Text)
	if len(response.ToolCalls) == 0 || len([]rune(content)) >= shortReplyRunes {
		return content
	}

	switch {
	case outcome.AgentChanged:
		return outcome.Session.ActiveAgent.Greeting()
	case outcome.Session.UploadPending():
		return fmt.Sprintf("Please upload your %s to continue.", outcome.Session.PendingUpload.Label())
	default:
		return "One moment, I'm updating your application."
	}
}

func (o *Orchestrator) recoverTurn(err error) TurnResult {
	o.logger.Warn("turn failed", "error", err)

	note := o.log.Append(domain.DialogueTurn{
		ID:        uuid.NewString(),
		Role:      domain.RoleSystem,
		Content:   transportFailureNotice,
		CreatedAt: o.clock.Now(),
	})

	return TurnResult{SystemNote: &note, Session: o.session, Record: o.record}
}

// Busy reports whether a turn is currently in flight.
func (o *Orchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.busy
}

func (o *Orchestrator) Session() domain.Session {
	return o.session
}

func (o *Orchestrator) Record() domain.ApplicationRecord {
	return o.record
}

func (o *Orchestrator) Turns() []domain.DialogueTurn {
	return o.log.Turns()
}
