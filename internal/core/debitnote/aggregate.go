package debitnote

import (
	"github.com/shopspring/decimal"

	"debitnote-service/internal/domain"
)

// Aggregate groups computed rows by supplier, preserving input row order.
// Rows at or below the epsilon are computed upstream but never surface in any
// bucket. The result is built fresh on every call; nothing is shared between
// invocations.
func Aggregate(rows []domain.NormalizedRow) domain.Aggregation {
	agg := domain.Aggregation{Suppliers: make(map[string]*domain.Supplier)}
	totals := make(map[string]decimal.Decimal)

	for _, r := range rows {
		if r.DebitAmount <= epsilon {
			continue
		}

		name := r.Supplier
		if name == "" {
			name = domain.UnknownSupplier
		}

		sup, ok := agg.Suppliers[name]
		if !ok {
			sup = &domain.Supplier{Name: name}
			agg.Suppliers[name] = sup
			agg.Order = append(agg.Order, name)
		}
		if sup.State == "" && r.State != "" {
			sup.State = r.State
		}

		sup.Items = append(sup.Items, r)
		totals[name] = totals[name].Add(decimal.NewFromFloat(r.DebitAmount))
		sup.TotalDebit, _ = totals[name].Float64()
	}

	return agg
}
