package application

import "github.com/swiftloan/swiftloan-cli/internal/domain"

// AgentStatus is one row of the live-status panel.
type AgentStatus struct {
	Agent   domain.Agent
	Active  bool
	Message string
}

// WorkflowStep is one milestone of the loan journey.
type WorkflowStep struct {
	Label string
	Done  bool
}

// Snapshot is the view model the render adapter consumes.
type Snapshot struct {
	Agents        []AgentStatus
	Steps         []WorkflowStep
	Record        domain.ApplicationRecord
	StatusLine    string
	PendingUpload domain.DocumentType
}

// StatusSnapshot projects the committed session and record into the panel
// view model.
func StatusSnapshot(session domain.Session, record domain.ApplicationRecord) Snapshot {
	agents := make([]AgentStatus, 0, len(domain.AllAgents()))
	for _, agent := range domain.AllAgents() {
		status := AgentStatus{Agent: agent, Active: agent == session.ActiveAgent}
		if status.Active {
			status.Message = session.StatusLine
			if status.Message == "" {
				status.Message = "Working on your application"
			}
		} else {
			status.Message = "Standing by"
		}
		agents = append(agents, status)
	}

	return Snapshot{
		Agents:        agents,
		Steps:         workflowSteps(record.Status),
		Record:        record,
		StatusLine:    session.StatusLine,
		PendingUpload: session.PendingUpload,
	}
}

func workflowSteps(status domain.Status) []WorkflowStep {
	return []WorkflowStep{
		{Label: "Consultation", Done: true},
		{Label: "KYC Verification", Done: status != domain.StatusInitial},
		{Label: "Credit Underwriting", Done: status != domain.StatusInitial && status != domain.StatusKYCPending},
		{Label: "Final Sanction", Done: status == domain.StatusApproved},
	}
}
