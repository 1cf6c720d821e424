// Package letter renders the sanction-letter artifact for an approved
// application record.
package letter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/swiftloan/swiftloan-cli/internal/domain"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
)

const (
	letterDirMode  = 0o700
	letterFileMode = 0o600
	letterFileName = "SwiftLoan_Sanction_Letter.txt"
)

type Renderer struct {
	outputDir string
	clock     ports.Clock
}

var _ ports.LetterRenderer = (*Renderer)(nil)

func NewRenderer(outputDir string, clock ports.Clock) *Renderer {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Renderer{outputDir: filepath.Clean(outputDir), clock: clock}
}

// Render writes the sanction letter and returns its path. Only an approved
// record can be rendered.
func (r *Renderer) Render(ctx context.Context, record domain.ApplicationRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if record.Status != domain.StatusApproved {
		return "", fmt.Errorf("render sanction letter for status %q: %w", record.Status, domain.ErrNotApproved)
	}

	if err := os.MkdirAll(r.outputDir, letterDirMode); err != nil {
		return "", fmt.Errorf("create letter directory: %w", err)
	}

	path := filepath.Join(r.outputDir, letterFileName)
	if err := os.WriteFile(path, []byte(r.compose(record)), letterFileMode); err != nil {
		return "", fmt.Errorf("write sanction letter: %w", err)
	}

	return path, nil
}

func (r *Renderer) compose(record domain.ApplicationRecord) string {
	applicant := record.ApplicantName
	if applicant == "" {
		applicant = "Applicant"
	}

	var b strings.Builder
	b.WriteString("SwiftLoan NBFC\n")
	b.WriteString("123 Finance District, Fintech City, 400001\n")
	b.WriteString("support@swiftloan.ai | www.swiftloan.ai\n")
	b.WriteString(strings.Repeat("-", 60) + "\n\n")
	b.WriteString("                   LOAN SANCTION LETTER\n\n")
	fmt.Fprintf(&b, "Date: %s\n\n", r.clock.Now().Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Dear %s,\n\n", applicant)
	b.WriteString("We are pleased to inform you that your personal loan application\nhas been APPROVED based on your credit profile and income verification.\n\n")
	b.WriteString("Sanction Details:\n")
	fmt.Fprintf(&b, "  Sanctioned Amount:   $%s\n", record.LoanAmount.StringFixed(2))
	fmt.Fprintf(&b, "  Interest Rate:       %s%% p.a.\n", record.InterestRate.String())
	fmt.Fprintf(&b, "  Tenure:              %d Months\n", record.TenureMonths)
	fmt.Fprintf(&b, "  Monthly EMI (Est.):  $%s\n", record.EstimatedEMI().String())
	if record.Purpose != "" {
		fmt.Fprintf(&b, "  Purpose:             %s\n", record.Purpose)
	}
	b.WriteString("\nTerms & Conditions:\n")
	b.WriteString("  1. This sanction is valid for 30 days from the date of issuance.\n")
	b.WriteString("  2. Final disbursement is subject to signing of the loan agreement.\n")
	b.WriteString("  3. The interest rate is fixed for the tenure of the loan.\n\n")
	b.WriteString("Authorized Signatory\n\n")
	b.WriteString("[ Digital Signature: SwiftLoan_Auto_Gen_AI_882 ]\n")

	return b.String()
}
