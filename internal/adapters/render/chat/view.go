package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/swiftloan/swiftloan-cli/internal/application"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Live Application Status"),
		s.header.Render("Trace your loan journey in real time."),
		s.section.Render(renderAgents(snapshot, s)),
		s.section.Render(renderSummary(snapshot, s)),
		s.section.Render(renderSteps(snapshot.Steps, s)),
	}

	if snapshot.PendingUpload != "" {
		lines = append(lines, s.section.Render(s.banner.Render(
			fmt.Sprintf("Awaiting upload: %s", snapshot.PendingUpload.Label()))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAgents(snapshot application.Snapshot, s styles) string {
	lines := make([]string, 0, len(snapshot.Agents)+1)
	lines = append(lines, s.header.Render("Active Agents"))
	for _, agent := range snapshot.Agents {
		marker := "  "
		style := s.agentIdle
		if agent.Active {
			marker = "> "
			style = s.agentActive
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%-20s %s", marker, agent.Agent, agent.Message)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(snapshot application.Snapshot, s styles) string {
	record := snapshot.Record

	amount := "--"
	if !record.LoanAmount.IsZero() {
		amount = "$" + record.LoanAmount.StringFixed(2)
	}

	lines := []string{
		s.header.Render("Application Summary"),
		summaryLine("Applicant", orDash(record.ApplicantName), s),
		summaryLine("Requested", amount, s),
		summaryLine("Purpose", orDash(record.Purpose), s),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.detailKey.Render(fmt.Sprintf("  %-12s", "Status:")),
			statusStyle(record.Status, s).Render(strings.ToUpper(record.Status.Label())),
		),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSteps(steps []application.WorkflowStep, s styles) string {
	lines := make([]string, 0, len(steps)+1)
	lines = append(lines, s.header.Render("Workflow Log"))
	for _, step := range steps {
		if step.Done {
			lines = append(lines, s.stepDone.Render(fmt.Sprintf("  [x] %-20s Done", step.Label)))
			continue
		}
		lines = append(lines, s.stepPending.Render(fmt.Sprintf("  [ ] %-20s Waiting...", step.Label)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryLine(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.detailKey.Render(fmt.Sprintf("  %-12s", key+":")),
		s.detailValue.Render(value),
	)
}

func statusStyle(status domain.Status, s styles) lipgloss.Style {
	switch status {
	case domain.StatusApproved:
		return s.statusGood
	case domain.StatusRejected:
		return s.statusBad
	}

	return s.statusInfo
}

func orDash(value string) string {
	if value == "" {
		return "--"
	}

	return value
}

// Turn renders one dialogue turn as chat-transcript lines.
func Turn(turn domain.DialogueTurn) string {
	s := newStyles()
	stamp := s.timestamp.Render(turn.CreatedAt.Format("15:04"))

	switch turn.Role {
	case domain.RoleUser:
		content := turn.Content
		if turn.Attachment != nil {
			content = strings.TrimSpace(content + fmt.Sprintf(" [attached %s: %s]", turn.Attachment.Kind, turn.Attachment.MIMEType))
		}
		return fmt.Sprintf("%s %s %s", stamp, s.userText.Render("You:"), content)
	case domain.RoleSystem:
		return fmt.Sprintf("%s %s", stamp, s.systemNote.Render(turn.Content))
	}

	sender := string(turn.Sender)
	if sender == "" {
		sender = "Assistant"
	}

	return fmt.Sprintf("%s %s %s", stamp, s.sender.Render(sender+":"), turn.Content)
}
