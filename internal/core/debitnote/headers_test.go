package debitnote_test

import (
	"testing"

	"debitnote-service/internal/core/debitnote"
	"debitnote-service/internal/domain"
)

func TestBuildHeaderMap_BasicMapping(t *testing.T) {
	headers := []string{"Supplier Name", "Debit Note", "Planned Amount"}
	hm := debitnote.BuildHeaderMap(headers, nil)

	if h, _ := hm.Header(domain.FieldSupplier); h != "Supplier Name" {
		t.Fatalf("supplier got=%q want=%q", h, "Supplier Name")
	}
	if h, _ := hm.Header(domain.FieldDebitNote); h != "Debit Note" {
		t.Fatalf("debitNote got=%q want=%q", h, "Debit Note")
	}
	if h, _ := hm.Header(domain.FieldPlannedAmount); h != "Planned Amount" {
		t.Fatalf("plannedAmount got=%q want=%q", h, "Planned Amount")
	}
	if _, ok := hm.Header(domain.FieldState); ok {
		t.Fatalf("state should be absent")
	}
}

func TestBuildHeaderMap_Deterministic(t *testing.T) {
	headers := []string{"Month", "State", "Supplier", "Item", "Debit Note"}
	first := debitnote.BuildHeaderMap(headers, nil)
	for i := 0; i < 10; i++ {
		again := debitnote.BuildHeaderMap(headers, nil)
		if len(again) != len(first) {
			t.Fatalf("mapping size changed between runs: %d vs %d", len(again), len(first))
		}
		for f, h := range first {
			if again[f] != h {
				t.Fatalf("mapping for %s changed: %q vs %q", f, again[f], h)
			}
		}
	}
}

func TestBuildHeaderMap_DiacriticsAndPunctuation(t *testing.T) {
	hm := debitnote.BuildHeaderMap([]string{"Débit-Note "}, nil)
	if h, _ := hm.Header(domain.FieldDebitNote); h != "Débit-Note " {
		t.Fatalf("debitNote got=%q want original header", h)
	}
}

func TestBuildHeaderMap_HeaderReusedAcrossFields(t *testing.T) {
	// one header can satisfy several fields; only within a single field is
	// the search first-match-exclusive
	hm := debitnote.BuildHeaderMap([]string{"Invoiced Unit Rate"}, nil)

	for _, f := range []domain.Field{domain.FieldUnitRate, domain.FieldInvoicedUnits, domain.FieldInvoicedUnitRate} {
		if h, ok := hm.Header(f); !ok || h != "Invoiced Unit Rate" {
			t.Fatalf("%s got=%q ok=%v, want shared header", f, h, ok)
		}
	}
}

func TestBuildHeaderMap_AmbiguousPlannedColumns(t *testing.T) {
	// the loose "planned" candidate claims the first planned-ish header in
	// raw order; this mirrors the committed matching behavior
	hm := debitnote.BuildHeaderMap([]string{"Planned Units", "Planned Amount"}, nil)

	if h, _ := hm.Header(domain.FieldPlannedUnits); h != "Planned Units" {
		t.Fatalf("plannedUnits got=%q want=%q", h, "Planned Units")
	}
	if h, _ := hm.Header(domain.FieldPlannedAmount); h != "Planned Units" {
		t.Fatalf("plannedAmount got=%q want=%q (first header containing a candidate wins)", h, "Planned Units")
	}
}

func TestBuildHeaderMap_DebitFallback(t *testing.T) {
	catalog := []debitnote.FieldCandidates{
		{Field: domain.FieldSupplier, Candidates: []string{"supplier"}},
		{Field: domain.FieldDebitNote, Candidates: []string{"debitnote"}},
	}
	hm := debitnote.BuildHeaderMap([]string{"Supplier", "Total Debit (NGN)"}, catalog)

	if h, ok := hm.Header(domain.FieldDebitNote); !ok || h != "Total Debit (NGN)" {
		t.Fatalf("debitNote fallback got=%q ok=%v want=%q", h, ok, "Total Debit (NGN)")
	}
}

func TestBuildHeaderMap_NoMatchIsNotAnError(t *testing.T) {
	hm := debitnote.BuildHeaderMap([]string{"Foo", "Bar"}, nil)
	if len(hm) != 0 {
		t.Fatalf("expected empty map, got %v", hm)
	}
}
