package domain

import "github.com/shopspring/decimal"

type Status string

const (
	StatusInitial      Status = "initial"
	StatusKYCPending   Status = "kyc_pending"
	StatusUnderwriting Status = "underwriting"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
)

// Terminal reports whether no further status transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// rank orders statuses along the workflow so transitions can be checked for
// monotonicity. Approved and rejected share a rank: both are final outcomes.
func (s Status) rank() int {
	switch s {
	case StatusInitial:
		return 0
	case StatusKYCPending:
		return 1
	case StatusUnderwriting:
		return 2
	case StatusApproved, StatusRejected:
		return 3
	}

	return -1
}

// CanAdvanceTo reports whether moving to next keeps the status progression
// non-decreasing and never leaves a terminal status.
func (s Status) CanAdvanceTo(next Status) bool {
	if s.Terminal() {
		return false
	}

	return next.rank() >= s.rank()
}

func (s Status) Label() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusKYCPending:
		return "kyc pending"
	case StatusUnderwriting:
		return "underwriting"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	}

	return string(s)
}

// emiMarkup covers processing overhead baked into the monthly estimate.
var emiMarkup = decimal.NewFromFloat(1.1)

// ApplicationRecord is the mutable loan-application state. It carries no
// behavior beyond derived read-only views; only the tool-call interpreter
// mutates it.
type ApplicationRecord struct {
	Status           Status
	ApplicantName    string
	LoanAmount       decimal.Decimal
	Purpose          string
	InterestRate     decimal.Decimal
	TenureMonths     int
	DecisionReason   string
	DecisionEvidence string
}

func NewApplicationRecord() ApplicationRecord {
	return ApplicationRecord{Status: StatusInitial}
}

// EstimatedEMI is the estimated monthly installment: amount over tenure with
// the fixed markup, rounded to whole currency units. Zero when no tenure is
// set.
func (r ApplicationRecord) EstimatedEMI() decimal.Decimal {
	if r.TenureMonths <= 0 {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(r.TenureMonths))

	return r.LoanAmount.Div(months).Mul(emiMarkup).Round(0)
}
