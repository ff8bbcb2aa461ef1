package debitnote_test

import (
	"testing"

	"debitnote-service/internal/core/debitnote"
	"debitnote-service/internal/domain"
)

func TestAggregate_GroupsBySupplier(t *testing.T) {
	rows := []domain.NormalizedRow{
		{Supplier: "Acme", State: "Lagos", DebitAmount: 120.00},
		{Supplier: "Acme", State: "Lagos", DebitAmount: 30.50},
	}
	agg := debitnote.Aggregate(rows)

	if len(agg.Order) != 1 || agg.Order[0] != "Acme" {
		t.Fatalf("Order got=%v want=[Acme]", agg.Order)
	}
	sup := agg.Suppliers["Acme"]
	if sup == nil {
		t.Fatalf("Acme bucket missing")
	}
	if len(sup.Items) != 2 {
		t.Fatalf("Items len got=%d want=%d", len(sup.Items), 2)
	}
	if sup.TotalDebit != 150.50 {
		t.Fatalf("TotalDebit got=%v want=%v", sup.TotalDebit, 150.50)
	}
	if sup.State != "Lagos" {
		t.Fatalf("State got=%q want=%q", sup.State, "Lagos")
	}
}

func TestAggregate_UnknownSupplierFallback(t *testing.T) {
	rows := []domain.NormalizedRow{{Supplier: "", DebitAmount: 10}}
	agg := debitnote.Aggregate(rows)

	sup := agg.Suppliers[domain.UnknownSupplier]
	if sup == nil {
		t.Fatalf("expected %q bucket", domain.UnknownSupplier)
	}
	if sup.TotalDebit != 10 {
		t.Fatalf("TotalDebit got=%v want=%v", sup.TotalDebit, 10.0)
	}
}

func TestAggregate_SkipsNonQualifyingRows(t *testing.T) {
	rows := []domain.NormalizedRow{
		{Supplier: "Acme", DebitAmount: 0},
		{Supplier: "Acme", DebitAmount: 0.01},
		{Supplier: "Beta", DebitAmount: 0.02},
	}
	agg := debitnote.Aggregate(rows)

	if _, ok := agg.Suppliers["Acme"]; ok {
		t.Fatalf("Acme should not exist: no row above the epsilon")
	}
	if len(agg.Order) != 1 || agg.Order[0] != "Beta" {
		t.Fatalf("Order got=%v want=[Beta]", agg.Order)
	}
	if len(agg.Suppliers["Beta"].Items) != 1 {
		t.Fatalf("Beta items got=%d want=%d", len(agg.Suppliers["Beta"].Items), 1)
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	rows := []domain.NormalizedRow{
		{Supplier: "Beta", DebitAmount: 5},
		{Supplier: "Acme", DebitAmount: 7},
		{Supplier: "Beta", DebitAmount: 3},
	}
	agg := debitnote.Aggregate(rows)

	if len(agg.Order) != 2 || agg.Order[0] != "Beta" || agg.Order[1] != "Acme" {
		t.Fatalf("Order got=%v want=[Beta Acme]", agg.Order)
	}
}

func TestAggregate_StateFirstNonEmpty(t *testing.T) {
	rows := []domain.NormalizedRow{
		{Supplier: "Acme", State: "", DebitAmount: 5},
		{Supplier: "Acme", State: "Oyo", DebitAmount: 5},
		{Supplier: "Acme", State: "Lagos", DebitAmount: 5},
	}
	agg := debitnote.Aggregate(rows)

	if got := agg.Suppliers["Acme"].State; got != "Oyo" {
		t.Fatalf("State got=%q want=%q", got, "Oyo")
	}
}

func TestAggregate_TotalsMatchQualifyingRows(t *testing.T) {
	rows := []domain.NormalizedRow{
		{Supplier: "Acme", DebitAmount: 120.00},
		{Supplier: "Beta", DebitAmount: 0.005},
		{Supplier: "Acme", DebitAmount: 30.50},
		{Supplier: "Gamma", DebitAmount: 9.99},
		{Supplier: "Beta", DebitAmount: 0},
	}
	agg := debitnote.Aggregate(rows)

	var fromSuppliers, fromRows float64
	for _, name := range agg.Order {
		fromSuppliers += agg.Suppliers[name].TotalDebit
	}
	for _, r := range rows {
		if r.DebitAmount > 0.01 {
			fromRows += r.DebitAmount
		}
	}
	if fromSuppliers != fromRows {
		t.Fatalf("totals differ: suppliers=%v rows=%v", fromSuppliers, fromRows)
	}
}
