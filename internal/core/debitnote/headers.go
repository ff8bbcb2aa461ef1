package debitnote

import (
	"strings"

	"debitnote-service/internal/domain"
)

// FieldCandidates binds a semantic field to the canonical substrings that
// identify it in a raw header. Catalog order is matching order.
type FieldCandidates struct {
	Field      domain.Field
	Candidates []string
}

// DefaultCatalog is the built-in field catalog. Candidate lists are searched
// in order against headers in their original order; containment is
// deliberately loose, so ambiguous headers resolve to the first declared
// field that claims them.
var DefaultCatalog = []FieldCandidates{
	{domain.FieldMonth, []string{"month"}},
	{domain.FieldState, []string{"state"}},
	{domain.FieldSupplier, []string{"supplier", "suppliername"}},
	{domain.FieldItem, []string{"item", "description", "product"}},
	{domain.FieldUnitRate, []string{"unitrate", "finalplannedrate", "unit"}},
	{domain.FieldPlannedUnits, []string{"plannedunits", "plannedunit"}},
	{domain.FieldPlannedAmount, []string{"plannedamount", "plannedamountvated", "planned"}},
	{domain.FieldInvoicedUnits, []string{"invoicedunits", "invoicedunit"}},
	{domain.FieldInvoicedUnitRate, []string{"invoicedunitrate", "invoicedrate"}},
	{domain.FieldInvAmount, []string{"invamount", "invamountvated", "invoicedamount", "invoiceamount"}},
	{domain.FieldInvoiceNo, []string{"invoiceno", "invno", "invnumber"}},
	{domain.FieldReceivedUnits, []string{"receivedunits", "receivedunit"}},
	{domain.FieldReceivedAmount, []string{"receivedunitsamount", "receivedamount"}},
	{domain.FieldUnitsPayable, []string{"unitspayable", "payableunits"}},
	{domain.FieldActualPayable, []string{"actualpayable", "actualpayableamount"}},
	{domain.FieldDebitNote, []string{"debitnote", "debit"}},
	{domain.FieldRemarks, []string{"remarks", "remark"}},
}

// BuildHeaderMap matches raw workbook headers against the catalog. For each
// field the first header whose canonical token contains any candidate wins;
// the same header may be claimed by several fields. A field with no match is
// left absent, which is informational, not an error. When the debit-note
// field cannot be located, a last-resort scan accepts any header containing
// the bare token "debit".
func BuildHeaderMap(headers []string, catalog []FieldCandidates) domain.HeaderMap {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}

	tokens := make([]string, len(headers))
	for i, h := range headers {
		tokens[i] = NormalizeKey(h)
	}

	hm := make(domain.HeaderMap, len(catalog))
	for _, fc := range catalog {
		if h, ok := findHeader(headers, tokens, fc.Candidates); ok {
			hm[fc.Field] = h
		}
	}

	if _, ok := hm[domain.FieldDebitNote]; !ok {
		for i, tok := range tokens {
			if strings.Contains(tok, "debit") {
				hm[domain.FieldDebitNote] = headers[i]
				break
			}
		}
	}

	return hm
}

func findHeader(headers, tokens, candidates []string) (string, bool) {
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		for _, cand := range candidates {
			c := NormalizeKey(cand)
			if c != "" && strings.Contains(tok, c) {
				return headers[i], true
			}
		}
	}
	return "", false
}
