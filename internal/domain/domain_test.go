package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgent(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Agent
		wantErr bool
	}{
		{name: "full label", label: "KYC Agent", want: AgentKYC},
		{name: "case insensitive", label: "sales agent", want: AgentSales},
		{name: "short alias", label: "underwriting", want: AgentUnderwriting},
		{name: "sanction authority", label: "Sanction Authority", want: AgentSanction},
		{name: "padded", label: "  Sales Agent  ", want: AgentSales},
		{name: "unknown", label: "Collections Agent", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAgent(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownAgent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgentGreetingsNonEmpty(t *testing.T) {
	for _, agent := range AllAgents() {
		assert.NotEmpty(t, agent.Greeting(), "greeting for %s", agent)
	}
}

func TestStageTagStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		stage  StageTag
		want   Status
		mapped bool
	}{
		{name: "kyc maps to kyc_pending", stage: StageKYC, want: StatusKYCPending, mapped: true},
		{name: "underwriting", stage: StageUnderwriting, want: StatusUnderwriting, mapped: true},
		{name: "decision aliases underwriting", stage: StageDecision, want: StatusUnderwriting, mapped: true},
		{name: "sanction carries no status", stage: StageSanction, mapped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.stage.Status()
			assert.Equal(t, tt.mapped, ok)
			if tt.mapped {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseStageTagRejectsUnknown(t *testing.T) {
	_, err := ParseStageTag("disbursement")
	require.ErrorIs(t, err, ErrUnknownStage)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusInitial.Terminal())
	assert.False(t, StatusKYCPending.Terminal())
	assert.False(t, StatusUnderwriting.Terminal())
}

func TestStatusCanAdvanceTo(t *testing.T) {
	assert.True(t, StatusInitial.CanAdvanceTo(StatusKYCPending))
	assert.True(t, StatusKYCPending.CanAdvanceTo(StatusUnderwriting))
	assert.True(t, StatusUnderwriting.CanAdvanceTo(StatusApproved))
	assert.True(t, StatusInitial.CanAdvanceTo(StatusUnderwriting), "kyc may be skipped")
	assert.True(t, StatusUnderwriting.CanAdvanceTo(StatusUnderwriting), "same rank is allowed")

	assert.False(t, StatusUnderwriting.CanAdvanceTo(StatusKYCPending), "status never decreases")
	assert.False(t, StatusApproved.CanAdvanceTo(StatusUnderwriting), "terminal never changes")
	assert.False(t, StatusApproved.CanAdvanceTo(StatusRejected), "terminal never flips")
	assert.False(t, StatusRejected.CanAdvanceTo(StatusApproved))
}

func TestParseDocumentType(t *testing.T) {
	got, err := ParseDocumentType("identity_proof")
	require.NoError(t, err)
	assert.Equal(t, DocumentIdentityProof, got)

	got, err = ParseDocumentType(" INCOME_PROOF ")
	require.NoError(t, err)
	assert.Equal(t, DocumentIncomeProof, got)

	_, err = ParseDocumentType("passport")
	require.ErrorIs(t, err, ErrUnknownDocumentType)

	assert.Equal(t, "identity proof", DocumentIdentityProof.Label())
}

func TestEstimatedEMI(t *testing.T) {
	record := ApplicationRecord{
		LoanAmount:   decimal.NewFromInt(10_000),
		TenureMonths: 24,
	}

	// 10000 / 24 * 1.1 = 458.33, rounded to whole units.
	assert.True(t, record.EstimatedEMI().Equal(decimal.NewFromInt(458)), "got %s", record.EstimatedEMI())
}

func TestEstimatedEMIZeroTenure(t *testing.T) {
	record := ApplicationRecord{LoanAmount: decimal.NewFromInt(10_000)}
	assert.True(t, record.EstimatedEMI().IsZero())
}

func TestNewApplicationRecordStartsInitial(t *testing.T) {
	record := NewApplicationRecord()
	assert.Equal(t, StatusInitial, record.Status)
	assert.Empty(t, record.DecisionReason)
	assert.Empty(t, record.DecisionEvidence)
}

func TestNewSessionStartsWithSales(t *testing.T) {
	session := NewSession()
	assert.Equal(t, AgentSales, session.ActiveAgent)
	assert.False(t, session.UploadPending())
}
