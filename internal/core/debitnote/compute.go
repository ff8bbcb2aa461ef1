package debitnote

import "debitnote-service/internal/domain"

// epsilon guards the cent boundary against floating-point noise being read
// as a genuine debit.
const epsilon = 0.01

// ComputeDebit derives the debit amount for one row. An explicitly recorded
// debit above the epsilon wins outright; otherwise a positive planned minus
// actual-payable shortfall is charged; otherwise the debit is exactly zero.
// The result is non-negative and rounded to 2 decimals.
func ComputeDebit(row domain.NormalizedRow) float64 {
	explicit := ParseNumber(row.RawDebitValue)
	if explicit > epsilon {
		return round2(explicit)
	}

	planned := ParseNumber(row.PlannedAmount)
	actual := ParseNumber(row.ActualPayable)
	if planned > 0 && actual >= 0 {
		if diff := planned - actual; diff > epsilon {
			return round2(diff)
		}
	}
	return 0
}
