package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestChatCommandRequiresAPIKey(t *testing.T) {
	t.Setenv("SWIFTLOAN_API_KEY", "")

	_, _, err := executeCLI(t, t.TempDir(), nil, "chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model api key is not configured")
}

func TestChatCommandQuitEndsSession(t *testing.T) {
	t.Setenv("SWIFTLOAN_API_KEY", "test-key")

	stdout, _, err := executeCLI(t, t.TempDir(), strings.NewReader("/quit\n"), "chat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sales Agent:", "seeded greeting is printed before the prompt")
	assert.Contains(t, stdout, "/attach <path>")
}

func TestChatCommandSavesTranscript(t *testing.T) {
	t.Setenv("SWIFTLOAN_API_KEY", "test-key")

	home := t.TempDir()
	transcriptPath := filepath.Join(home, "session.toml")
	input := strings.NewReader("/save " + transcriptPath + "\n/quit\n")

	stdout, _, err := executeCLI(t, home, input, "chat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Transcript saved to "+transcriptPath)

	data, err := os.ReadFile(transcriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "active_agent = 'Sales Agent'")
	assert.Contains(t, string(data), "status = 'initial'")
}

func TestLetterCommandRequiresTranscriptFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), nil, "letter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"transcript\" not set")
}

func TestLetterCommandRendersFromApprovedTranscript(t *testing.T) {
	home := t.TempDir()
	letterDir := filepath.Join(home, "letters")
	t.Setenv("SWIFTLOAN_LETTER_OUTPUT_DIR", letterDir)

	transcriptPath := filepath.Join(home, "session.toml")
	require.NoError(t, writeTranscriptFixture(transcriptPath, "approved"))

	stdout, _, err := executeCLI(t, home, nil, "letter", "--transcript", transcriptPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sanction letter saved to ")

	data, err := os.ReadFile(filepath.Join(letterDir, "SwiftLoan_Sanction_Letter.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dear Jane Doe,")
	assert.Contains(t, string(data), "LOAN SANCTION LETTER")
}

func TestLetterCommandRefusesNonApprovedTranscript(t *testing.T) {
	home := t.TempDir()

	transcriptPath := filepath.Join(home, "session.toml")
	require.NoError(t, writeTranscriptFixture(transcriptPath, "underwriting"))

	_, _, err := executeCLI(t, home, nil, "letter", "--transcript", transcriptPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application is not approved")
}

func TestLetterCommandMissingTranscriptFile(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), nil, "letter", "--transcript", "/nonexistent/session.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load transcript")
}

func executeCLI(t *testing.T, home string, stdin *strings.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTranscriptFixture(path, status string) error {
	transcript := `version = 1

[session]
active_agent = 'Sanction Authority'

[record]
status = '` + status + `'
applicant_name = 'Jane Doe'
loan_amount = '10000'
purpose = 'car purchase'
interest_rate = '12'
tenure_months = 24
decision_reason = 'meets financial criteria'
decision_evidence = 'income covers the EMI twice over'

[[turns]]
id = 't1'
role = 'assistant'
content = 'Welcome to SwiftLoan!'
created_at = '2026-08-30T10:00:00Z'
sender = 'Sales Agent'
`

	return os.WriteFile(path, []byte(transcript), 0o600)
}
