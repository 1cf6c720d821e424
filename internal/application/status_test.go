package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
)

func TestStatusSnapshotMarksActiveAgent(t *testing.T) {
	session := domain.Session{
		ActiveAgent: domain.AgentKYC,
		StatusLine:  "Verifying identity",
	}

	snapshot := StatusSnapshot(session, domain.ApplicationRecord{Status: domain.StatusKYCPending})

	require.Len(t, snapshot.Agents, 4)
	for _, agent := range snapshot.Agents {
		if agent.Agent == domain.AgentKYC {
			assert.True(t, agent.Active)
			assert.Equal(t, "Verifying identity", agent.Message)
			continue
		}
		assert.False(t, agent.Active)
		assert.Equal(t, "Standing by", agent.Message)
	}
}

func TestStatusSnapshotWorkflowSteps(t *testing.T) {
	tests := []struct {
		name   string
		status domain.Status
		want   []bool
	}{
		{name: "initial", status: domain.StatusInitial, want: []bool{true, false, false, false}},
		{name: "kyc pending", status: domain.StatusKYCPending, want: []bool{true, true, false, false}},
		{name: "underwriting", status: domain.StatusUnderwriting, want: []bool{true, true, true, false}},
		{name: "approved", status: domain.StatusApproved, want: []bool{true, true, true, true}},
		{name: "rejected", status: domain.StatusRejected, want: []bool{true, true, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := StatusSnapshot(domain.NewSession(), domain.ApplicationRecord{Status: tt.status})
			require.Len(t, snapshot.Steps, len(tt.want))
			for i, step := range snapshot.Steps {
				assert.Equal(t, tt.want[i], step.Done, step.Label)
			}
		})
	}
}

func TestStatusSnapshotDefaultsActiveMessage(t *testing.T) {
	snapshot := StatusSnapshot(domain.NewSession(), domain.NewApplicationRecord())

	assert.Equal(t, "Working on your application", snapshot.Agents[0].Message)
}
