package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftloan/swiftloan-cli/internal/application"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
	"google.golang.org/genai"
)

func TestFunctionDeclarations(t *testing.T) {
	decls := functionDeclarations()
	require.Len(t, decls, 4)

	byName := make(map[string]*genai.FunctionDeclaration, len(decls))
	for _, decl := range decls {
		byName[decl.Name] = decl
	}

	stage, ok := byName[application.ToolUpdateLoanStage]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"stage", "agent", "message"}, stage.Parameters.Required)
	assert.ElementsMatch(t,
		[]string{"kyc", "underwriting", "decision", "sanction"},
		stage.Parameters.Properties["stage"].Enum,
	)
	assert.ElementsMatch(t,
		[]string{"Sales Agent", "KYC Agent", "Underwriting Agent", "Sanction Authority"},
		stage.Parameters.Properties["agent"].Enum,
	)

	doc, ok := byName[application.ToolRequestDocument]
	require.True(t, ok)
	assert.Equal(t, []string{"docType"}, doc.Parameters.Required)
	assert.ElementsMatch(t,
		[]string{"identity_proof", "income_proof"},
		doc.Parameters.Properties["docType"].Enum,
	)

	approve, ok := byName[application.ToolApproveLoan]
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"approvedAmount", "interestRate", "tenureMonths", "applicantName", "evidence"},
		approve.Parameters.Required,
	)
	assert.Equal(t, genai.TypeNumber, approve.Parameters.Properties["approvedAmount"].Type)
	assert.Equal(t, genai.TypeString, approve.Parameters.Properties["applicantName"].Type)

	reject, ok := byName[application.ToolRejectLoan]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"reason", "evidence"}, reject.Parameters.Required)
}

func TestFunctionDeclarationEnumsTrackDomain(t *testing.T) {
	decls := functionDeclarations()

	var agentEnum []string
	for _, decl := range decls {
		if decl.Name == application.ToolUpdateLoanStage {
			agentEnum = decl.Parameters.Properties["agent"].Enum
		}
	}

	require.Len(t, agentEnum, len(domain.AllAgents()))
	for _, label := range agentEnum {
		_, err := domain.ParseAgent(label)
		assert.NoError(t, err, "every enum value parses back to an agent")
	}
}

func TestToContentsMapsRolesAndParts(t *testing.T) {
	contents := toContents([]ports.Content{
		{Role: ports.ContentRoleUser, Parts: []ports.Part{{Text: "hello"}}},
		{Role: ports.ContentRoleAssistant, Parts: []ports.Part{{Text: "hi there"}}},
		{Role: ports.ContentRoleUser, Parts: []ports.Part{
			{Text: "my id"},
			{Inline: &ports.InlineData{MIMEType: "image/png", Data: []byte{0x89, 0x50}}},
		}},
	})

	require.Len(t, contents, 3)
	assert.Equal(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, "hello", contents[0].Parts[0].Text)
	assert.Equal(t, genai.RoleModel, contents[1].Role)

	require.Len(t, contents[2].Parts, 2)
	require.NotNil(t, contents[2].Parts[1].InlineData)
	assert.Equal(t, "image/png", contents[2].Parts[1].InlineData.MIMEType)
	assert.Equal(t, []byte{0x89, 0x50}, contents[2].Parts[1].InlineData.Data)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", DefaultModel, nil)
	require.ErrorIs(t, err, domain.ErrMissingAPIKey)
}
