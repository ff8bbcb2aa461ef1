package document_test

import (
	"bytes"
	"strings"
	"testing"

	"debitnote-service/internal/core/document"
	"debitnote-service/internal/domain"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme & Sons Ltd.", "acme-sons-ltd"},
		{"  Beta   Holdings ", "beta-holdings"},
		{"Ölmez Gıda", "lmez-gda"},
		{"", ""},
	}
	for _, c := range cases {
		if got := document.Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) got=%q want=%q", c.in, got, c.want)
		}
	}

	long := strings.Repeat("a", 80)
	if got := document.Slugify(long); len(got) != 60 {
		t.Fatalf("Slugify long name len got=%d want=%d", len(got), 60)
	}
}

func TestNoteFileName(t *testing.T) {
	if got := document.NoteFileName("Acme"); got != "DebitNote_acme.pdf" {
		t.Fatalf("NoteFileName got=%q want=%q", got, "DebitNote_acme.pdf")
	}
	if got := document.NoteFileName("!!!"); got != "DebitNote_supplier.pdf" {
		t.Fatalf("NoteFileName got=%q want=%q", got, "DebitNote_supplier.pdf")
	}
}

func TestRenderNote(t *testing.T) {
	r := document.NewRenderer(document.Options{CompanyName: "Triple E"})
	sup := &domain.Supplier{
		Name:  "Acme",
		State: "Lagos",
		Items: []domain.NormalizedRow{
			{Month: "January", Item: "Widgets", InvoiceNo: "INV-1", PlannedAmount: "1000", ActualPayable: "880", DebitAmount: 120, Remarks: "Short delivery"},
			{Item: "Bolts", InvoiceNo: "INV-2", PlannedAmount: "730.50", ActualPayable: "700", DebitAmount: 30.50},
		},
		TotalDebit: 150.50,
	}

	pdf, err := r.RenderNote(sup)
	if err != nil {
		t.Fatalf("RenderNote: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRenderNote_NilSupplier(t *testing.T) {
	r := document.NewRenderer(document.Options{})
	if _, err := r.RenderNote(nil); err == nil {
		t.Fatalf("expected error for nil supplier")
	}
}
