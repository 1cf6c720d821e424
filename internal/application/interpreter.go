package application

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
)

const approvalReason = "meets financial criteria"

// Tool names the model may invoke. They mirror the function declarations the
// transport adapter advertises.
const (
	ToolUpdateLoanStage = "updateLoanStage"
	ToolRequestDocument = "requestDocument"
	ToolApproveLoan     = "approveLoan"
	ToolRejectLoan      = "rejectLoan"
)

// Outcome is the candidate next state produced by one tool batch. The caller
// commits it atomically; intermediate per-call state is never observable.
type Outcome struct {
	Session      domain.Session
	Record       domain.ApplicationRecord
	AgentChanged bool
	Applied      int
}

// Interpreter folds structured tool invocations, in the order received, into
// a working copy of the session and application record.
type Interpreter struct {
	logger *slog.Logger
}

func NewInterpreter(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Interpreter{logger: logger}
}

// Apply processes the batch over working copies. Unknown invocation names are
// forward-compatible no-ops. A recognized invocation missing a required field
// is skipped whole, never partially applied. Once the record is terminal, no
// invocation may change status, decision fields, or the deciding agent.
func (i *Interpreter) Apply(session domain.Session, record domain.ApplicationRecord, calls []ports.ToolCall) Outcome {
	out := Outcome{Session: session, Record: record}
	startAgent := session.ActiveAgent

	for _, call := range calls {
		switch call.Name {
		case ToolUpdateLoanStage:
			i.applyStageUpdate(&out, call)
		case ToolRequestDocument:
			i.applyDocumentRequest(&out, call)
		case ToolApproveLoan:
			i.applyApproval(&out, call)
		case ToolRejectLoan:
			i.applyRejection(&out, call)
		default:
			i.logger.Debug("ignoring unknown tool invocation", "name", call.Name)
		}
	}

	out.AgentChanged = out.Session.ActiveAgent != startAgent

	return out
}

func (i *Interpreter) applyStageUpdate(out *Outcome, call ports.ToolCall) {
	stageValue, ok := stringArg(call.Args, "stage")
	if !ok {
		i.skip(call, "stage")
		return
	}
	agentValue, ok := stringArg(call.Args, "agent")
	if !ok {
		i.skip(call, "agent")
		return
	}
	message, ok := stringArg(call.Args, "message")
	if !ok {
		i.skip(call, "message")
		return
	}

	stage, err := domain.ParseStageTag(stageValue)
	if err != nil {
		i.logger.Warn("skipping stage update", "error", err)
		return
	}
	agent, err := domain.ParseAgent(agentValue)
	if err != nil {
		i.logger.Warn("skipping stage update", "error", err)
		return
	}

	if out.Record.Status.Terminal() {
		i.logger.Warn("ignoring stage update after terminal decision", "stage", stage)
		return
	}

	out.Session.ActiveAgent = agent
	out.Session.StatusLine = message
	if status, ok := stage.Status(); ok && out.Record.Status.CanAdvanceTo(status) {
		out.Record.Status = status
	}
	out.Applied++
}

func (i *Interpreter) applyDocumentRequest(out *Outcome, call ports.ToolCall) {
	docValue, ok := stringArg(call.Args, "docType")
	if !ok {
		i.skip(call, "docType")
		return
	}

	docType, err := domain.ParseDocumentType(docValue)
	if err != nil {
		i.logger.Warn("skipping document request", "error", err)
		return
	}

	out.Session.PendingUpload = docType
	out.Applied++
}

func (i *Interpreter) applyApproval(out *Outcome, call ports.ToolCall) {
	amount, ok := numberArg(call.Args, "approvedAmount")
	if !ok {
		i.skip(call, "approvedAmount")
		return
	}
	rate, ok := numberArg(call.Args, "interestRate")
	if !ok {
		i.skip(call, "interestRate")
		return
	}
	tenure, ok := numberArg(call.Args, "tenureMonths")
	if !ok {
		i.skip(call, "tenureMonths")
		return
	}
	name, ok := stringArg(call.Args, "applicantName")
	if !ok {
		i.skip(call, "applicantName")
		return
	}
	evidence, ok := stringArg(call.Args, "evidence")
	if !ok {
		i.skip(call, "evidence")
		return
	}

	if out.Record.Status.Terminal() {
		i.logger.Warn("ignoring approval after terminal decision")
		return
	}

	out.Record.Status = domain.StatusApproved
	out.Record.LoanAmount = decimal.NewFromFloat(amount)
	out.Record.InterestRate = decimal.NewFromFloat(rate)
	out.Record.TenureMonths = int(tenure)
	out.Record.ApplicantName = name
	out.Record.DecisionReason = approvalReason
	out.Record.DecisionEvidence = evidence
	out.Session.ActiveAgent = domain.AgentSanction
	out.Applied++
}

func (i *Interpreter) applyRejection(out *Outcome, call ports.ToolCall) {
	reason, ok := stringArg(call.Args, "reason")
	if !ok {
		i.skip(call, "reason")
		return
	}
	evidence, ok := stringArg(call.Args, "evidence")
	if !ok {
		i.skip(call, "evidence")
		return
	}

	if out.Record.Status.Terminal() {
		i.logger.Warn("ignoring rejection after terminal decision")
		return
	}

	out.Record.Status = domain.StatusRejected
	out.Record.DecisionReason = reason
	out.Record.DecisionEvidence = evidence
	out.Session.ActiveAgent = domain.AgentSanction
	out.Applied++
}

func (i *Interpreter) skip(call ports.ToolCall, field string) {
	i.logger.Warn("skipping tool invocation with missing required field", "name", call.Name, "field", field)
}

func stringArg(args map[string]any, key string) (string, bool) {
	raw, ok := args[key]
	if !ok {
		return "", false
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}

	return value, true
}

func numberArg(args map[string]any, key string) (float64, bool) {
	switch value := args[key].(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	}

	return 0, false
}
