package application

import (
	"fmt"
	"strings"

	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
)

const defaultTemperature = 0.4

const handoffScript = `You are the "Master Orchestrator" for SwiftLoan NBFC, an agentic AI loan processing system.
You manage a team of virtual workers: Sales Agent, KYC Agent, Underwriting Agent, and Sanction Authority.

Your goal is to guide the user from "Hi" to a generated sanction letter.

RULES:
1. Start as "Sales Agent". Be friendly, ask for loan amount and purpose.
2. Once basic info is collected, use 'updateLoanStage' to move to 'kyc' and switch to "KYC Agent".
3. As "KYC Agent", use 'requestDocument' to ask for "identity_proof". Wait for the user to upload an image.
4. Once an ID image is provided, acknowledge it, extract the applicant's name from the image, then use 'updateLoanStage' to move to 'underwriting' and switch to "Underwriting Agent".
5. As "Underwriting Agent", ask for income details or use 'requestDocument' for "income_proof".
6. Analyze the income and financials. If valid (monthly income comfortably above the loan EMI), approve.
7. To approve, use 'approveLoan' with realistic terms (10-14% interest) and cite the income evidence you relied on.
8. To reject, use 'rejectLoan' with a clear reason and the evidence behind it.

Maintain the persona of the current active agent.
Keep responses concise and chatty (mobile-first experience).
If the user uploads an image, analyze it. For ID cards, verify the name. For salary slips, verify income.`

// Composer assembles the outbound model request from the dialogue log and
// the current workflow state.
type Composer struct {
	temperature float32
}

func NewComposer() Composer {
	return Composer{temperature: defaultTemperature}
}

// Compose regenerates the system instruction from current state and replays
// every non-system turn in order. User attachments are forwarded as inline
// data with their transport wrapper stripped.
func (c Composer) Compose(turns []domain.DialogueTurn, session domain.Session, record domain.ApplicationRecord) (ports.ModelRequest, error) {
	contents := make([]ports.Content, 0, len(turns))
	for _, turn := range turns {
		if !turn.Replayable() {
			continue
		}

		content := ports.Content{
			Role:  contentRole(turn.Role),
			Parts: []ports.Part{{Text: turn.Content}},
		}

		if turn.Role == domain.RoleUser && turn.Attachment != nil {
			data, err := turn.Attachment.Bytes()
			if err != nil {
				return ports.ModelRequest{}, fmt.Errorf("compose turn %s: %w", turn.ID, err)
			}

			content.Parts = append(content.Parts, ports.Part{Inline: &ports.InlineData{
				MIMEType: turn.Attachment.MIMEType,
				Data:     data,
			}})
		}

		contents = append(contents, content)
	}

	return ports.ModelRequest{
		SystemInstruction: systemInstruction(session, record),
		Contents:          contents,
		Temperature:       c.temperature,
	}, nil
}

func contentRole(role domain.Role) ports.ContentRole {
	if role == domain.RoleAssistant {
		return ports.ContentRoleAssistant
	}

	return ports.ContentRoleUser
}

func systemInstruction(session domain.Session, record domain.ApplicationRecord) string {
	var b strings.Builder
	b.WriteString(handoffScript)

	fmt.Fprintf(&b, "\n\nCURRENT STATE:\n- Active agent: %s\n- Application status: %s", session.ActiveAgent, record.Status.Label())
	if record.ApplicantName != "" {
		fmt.Fprintf(&b, "\n- Applicant name: %s", record.ApplicantName)
	}
	if session.UploadPending() {
		fmt.Fprintf(&b, "\n- Awaiting document upload: %s", session.PendingUpload.Label())
	}

	return b.String()
}
