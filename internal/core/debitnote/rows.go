package debitnote

import (
	"strings"

	"debitnote-service/internal/domain"
)

// NormalizeRows projects raw rows through the header map into fixed-shape
// records. Pure projection: unmapped fields fall back to the empty string and
// no row can fail.
func NormalizeRows(raws []domain.RawRow, hm domain.HeaderMap) []domain.NormalizedRow {
	rows := make([]domain.NormalizedRow, 0, len(raws))
	for _, rr := range raws {
		rows = append(rows, normalizeRow(rr, hm))
	}
	return rows
}

func normalizeRow(rr domain.RawRow, hm domain.HeaderMap) domain.NormalizedRow {
	get := func(f domain.Field) string {
		h, ok := hm.Header(f)
		if !ok {
			return ""
		}
		return rr[h]
	}

	// the debit cell is kept verbatim for explicit-value detection
	rawDebit := get(domain.FieldDebitNote)

	return domain.NormalizedRow{
		Month:            strings.TrimSpace(get(domain.FieldMonth)),
		State:            strings.TrimSpace(get(domain.FieldState)),
		Supplier:         strings.TrimSpace(get(domain.FieldSupplier)),
		Item:             strings.TrimSpace(get(domain.FieldItem)),
		UnitRate:         strings.TrimSpace(get(domain.FieldUnitRate)),
		PlannedUnits:     get(domain.FieldPlannedUnits),
		PlannedAmount:    get(domain.FieldPlannedAmount),
		InvoicedUnits:    get(domain.FieldInvoicedUnits),
		InvoicedUnitRate: get(domain.FieldInvoicedUnitRate),
		InvAmount:        get(domain.FieldInvAmount),
		InvoiceNo:        strings.TrimSpace(get(domain.FieldInvoiceNo)),
		ReceivedUnits:    get(domain.FieldReceivedUnits),
		ReceivedAmount:   get(domain.FieldReceivedAmount),
		UnitsPayable:     get(domain.FieldUnitsPayable),
		ActualPayable:    get(domain.FieldActualPayable),
		RawDebitValue:    rawDebit,
		DebitNote:        rawDebit,
		Remarks:          strings.TrimSpace(get(domain.FieldRemarks)),
	}
}
