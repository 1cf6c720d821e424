package gemini

import (
	"github.com/swiftloan/swiftloan-cli/internal/application"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"google.golang.org/genai"
)

// functionDeclarations enumerates the four tools the orchestration core
// recognizes. Tag-valued fields carry closed enumerations so the model
// cannot invent stages, personas, or document types.
func functionDeclarations() []*genai.FunctionDeclaration {
	agentLabels := make([]string, 0, len(domain.AllAgents()))
	for _, agent := range domain.AllAgents() {
		agentLabels = append(agentLabels, string(agent))
	}

	return []*genai.FunctionDeclaration{
		{
			Name:        application.ToolUpdateLoanStage,
			Description: "Updates the current stage of the loan application process and sets the active agent.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"stage": {
						Type: genai.TypeString,
						Enum: []string{
							string(domain.StageKYC),
							string(domain.StageUnderwriting),
							string(domain.StageDecision),
							string(domain.StageSanction),
						},
						Description: "The new stage to move to.",
					},
					"agent": {
						Type:        genai.TypeString,
						Enum:        agentLabels,
						Description: "The name of the agent now handling the conversation.",
					},
					"message": {
						Type:        genai.TypeString,
						Description: "A short status phrase for the applicant's status panel.",
					},
				},
				Required: []string{"stage", "agent", "message"},
			},
		},
		{
			Name:        application.ToolRequestDocument,
			Description: "Requests the user to upload a specific document type.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"docType": {
						Type: genai.TypeString,
						Enum: []string{
							string(domain.DocumentIdentityProof),
							string(domain.DocumentIncomeProof),
						},
						Description: "The type of document to request.",
					},
				},
				Required: []string{"docType"},
			},
		},
		{
			Name:        application.ToolApproveLoan,
			Description: "Approves the loan and provides final details for the sanction letter.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"approvedAmount": {Type: genai.TypeNumber, Description: "The final approved loan amount."},
					"interestRate":   {Type: genai.TypeNumber, Description: "The interest rate percentage per annum."},
					"tenureMonths":   {Type: genai.TypeNumber, Description: "The loan tenure in months."},
					"applicantName":  {Type: genai.TypeString, Description: "The applicant's full name extracted from documents."},
					"evidence":       {Type: genai.TypeString, Description: "The income or credit evidence the approval relies on."},
				},
				Required: []string{"approvedAmount", "interestRate", "tenureMonths", "applicantName", "evidence"},
			},
		},
		{
			Name:        application.ToolRejectLoan,
			Description: "Rejects the loan application.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"reason":   {Type: genai.TypeString, Description: "The reason for rejection."},
					"evidence": {Type: genai.TypeString, Description: "The evidence behind the rejection."},
				},
				Required: []string{"reason", "evidence"},
			},
		},
	}
}
