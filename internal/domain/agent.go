package domain

import (
	"fmt"
	"strings"
)

type Agent string

const (
	AgentSales        Agent = "Sales Agent"
	AgentKYC          Agent = "KYC Agent"
	AgentUnderwriting Agent = "Underwriting Agent"
	AgentSanction     Agent = "Sanction Authority"
)

// AllAgents returns the personas in workflow order.
func AllAgents() []Agent {
	return []Agent{AgentSales, AgentKYC, AgentUnderwriting, AgentSanction}
}

// ParseAgent resolves a persona label reported by the model. Labels are
// matched case-insensitively and tolerate a missing "Agent" suffix.
func ParseAgent(label string) (Agent, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return "", fmt.Errorf("%w: empty label", ErrUnknownAgent)
	}

	for _, agent := range AllAgents() {
		if normalized == strings.ToLower(string(agent)) {
			return agent, nil
		}
	}

	switch normalized {
	case "sales":
		return AgentSales, nil
	case "kyc":
		return AgentKYC, nil
	case "underwriting":
		return AgentUnderwriting, nil
	case "sanction", "sanction agent":
		return AgentSanction, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAgent, label)
}

// Greeting is the canned introduction used when the model hands off to this
// persona without supplying usable text of its own.
func (a Agent) Greeting() string {
	switch a {
	case AgentSales:
		return "Hello! I'm your dedicated Loan Sales Agent at SwiftLoan. I can help you get a personal loan approved in minutes. To start, may I ask how much funding you are looking for?"
	case AgentKYC:
		return "Hi, I'm the KYC Agent. I'll verify your identity next. Could you upload a photo of your government-issued ID?"
	case AgentUnderwriting:
		return "Underwriting Agent here. I'll assess your repayment capacity now. Could you share your monthly income, or upload a recent salary slip?"
	case AgentSanction:
		return "This is the Sanction Authority. Your application has been processed. Please review the decision details above."
	}

	return ""
}

type StageTag string

const (
	StageKYC          StageTag = "kyc"
	StageUnderwriting StageTag = "underwriting"
	StageDecision     StageTag = "decision"
	StageSanction     StageTag = "sanction"
)

func ParseStageTag(value string) (StageTag, error) {
	switch StageTag(strings.ToLower(strings.TrimSpace(value))) {
	case StageKYC:
		return StageKYC, nil
	case StageUnderwriting:
		return StageUnderwriting, nil
	case StageDecision:
		return StageDecision, nil
	case StageSanction:
		return StageSanction, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStage, value)
}

// Status maps a stage tag to the application status it implies. The decision
// stage is a deliberate alias for underwriting. The sanction stage carries no
// status of its own (approval or rejection sets it), so ok is false there.
func (s StageTag) Status() (Status, bool) {
	switch s {
	case StageKYC:
		return StatusKYCPending, true
	case StageUnderwriting, StageDecision:
		return StatusUnderwriting, true
	}

	return "", false
}
