// Package document renders a supplier's aggregated debit data into a
// printable debit note PDF.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"debitnote-service/internal/domain"
)

// Options configures a Renderer. FormatAmount and ParseAmount are supplied by
// the engine so the document layer carries no money-handling policy of its own.
type Options struct {
	CompanyName  string
	FormatAmount func(float64) string
	ParseAmount  func(string) float64
}

// Renderer produces debit note PDFs.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	if opts.FormatAmount == nil {
		opts.FormatAmount = func(v float64) string { return fmt.Sprintf("%.2f", v) }
	}
	if opts.ParseAmount == nil {
		opts.ParseAmount = func(string) float64 { return 0 }
	}
	return &Renderer{opts: opts}
}

var noteColumns = []struct {
	title string
	width float64
}{
	{"Item", 34},
	{"Invoice No", 22},
	{"Planned Units", 14},
	{"Planned Amount", 24},
	{"Invoiced Units", 14},
	{"Invoiced Amount", 24},
	{"Received Units", 14},
	{"Actual Payable", 22},
	{"Debit Amount", 22},
}

// RenderNote renders the debit note for one supplier as a single PDF.
func (r *Renderer) RenderNote(sup *domain.Supplier) ([]byte, error) {
	if sup == nil {
		return nil, fmt.Errorf("no supplier data to render")
	}

	var totalPlanned, totalActual, totalDebit float64
	for _, it := range sup.Items {
		totalPlanned += r.opts.ParseAmount(it.PlannedAmount)
		totalActual += r.opts.ParseAmount(it.ActualPayable)
		totalDebit += it.DebitAmount
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := "Debit Note"
	if r.opts.CompanyName != "" {
		title = r.opts.CompanyName + " Debit Note"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s — %s", title, sup.Name)), "", 1, "L", false, 0, "")

	reference := "DN-" + strings.ToUpper(uuid.NewString()[:8])
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Ref: %s    Generated: %s", reference, time.Now().Format("02 Jan 2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Invoice Month: %s    |    Supplier State: %s", firstMonth(sup.Items), sup.State)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Dear %s,", sup.Name)), "", "L", false)
	pdf.Ln(2)

	body := fmt.Sprintf(
		"This is to notify you that a Debit Note of %s is being issued to your account in relation to the supplies listed below. "+
			"The total planned amount across these deliveries was %s, while the actual payable amount recorded is %s. "+
			"The resulting shortfall (debit) is %s.",
		r.opts.FormatAmount(totalDebit), r.opts.FormatAmount(totalPlanned),
		r.opts.FormatAmount(totalActual), r.opts.FormatAmount(totalDebit))
	pdf.MultiCell(0, 5, tr(body), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(22, 5, "Reason(s):", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(reasons(sup.Items)), "", "L", false)
	pdf.Ln(3)

	r.writeItemTable(pdf, tr, sup, totalPlanned, totalActual, totalDebit)

	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr("Please adjust your account and provide confirmation. If you disagree with the values shown here, contact accounts immediately with supporting documentation."), "", "L", false)
	pdf.Ln(3)
	pdf.MultiCell(0, 5, "Regards,", "", "L", false)
	pdf.SetFont("Arial", "B", 10)
	pdf.MultiCell(0, 5, "Procurement / Accounts", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to produce PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeItemTable(pdf *gofpdf.Fpdf, tr func(string) string, sup *domain.Supplier, totalPlanned, totalActual, totalDebit float64) {
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(247, 247, 247)
	for _, col := range noteColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, it := range sup.Items {
		cells := []string{
			it.Item,
			it.InvoiceNo,
			it.PlannedUnits,
			r.opts.FormatAmount(r.opts.ParseAmount(it.PlannedAmount)),
			it.InvoicedUnits,
			r.opts.FormatAmount(r.opts.ParseAmount(it.InvAmount)),
			it.ReceivedUnits,
			r.opts.FormatAmount(r.opts.ParseAmount(it.ActualPayable)),
			r.opts.FormatAmount(it.DebitAmount),
		}
		for i, cell := range cells {
			pdf.CellFormat(noteColumns[i].width, 6, tr(cell), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 7)
	totalsWidth := noteColumns[0].width + noteColumns[1].width + noteColumns[2].width
	pdf.CellFormat(totalsWidth, 6, "Totals", "1", 0, "L", false, 0, "")
	pdf.CellFormat(noteColumns[3].width, 6, tr(r.opts.FormatAmount(totalPlanned)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(noteColumns[4].width, 6, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(noteColumns[5].width, 6, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(noteColumns[6].width, 6, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(noteColumns[7].width, 6, tr(r.opts.FormatAmount(totalActual)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(noteColumns[8].width, 6, tr(r.opts.FormatAmount(totalDebit)), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
}

func firstMonth(items []domain.NormalizedRow) string {
	for _, it := range items {
		if it.Month != "" {
			return it.Month
		}
	}
	return ""
}

func reasons(items []domain.NormalizedRow) string {
	var distinct []string
	seen := make(map[string]bool)
	for _, it := range items {
		if it.Remarks == "" || seen[it.Remarks] {
			continue
		}
		seen[it.Remarks] = true
		distinct = append(distinct, it.Remarks)
	}
	if len(distinct) == 0 {
		return "Not specified"
	}
	return strings.Join(distinct, "; ")
}

// NoteFileName builds the download file name for a supplier's note.
func NoteFileName(supplier string) string {
	slug := Slugify(supplier)
	if slug == "" {
		slug = "supplier"
	}
	return "DebitNote_" + slug + ".pdf"
}

// Slugify lowercases s, collapses whitespace into hyphens and strips anything
// that is not alphanumeric or a hyphen, capped at 60 characters.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
			lastHyphen = false
		}
	}
	slug := b.String()
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
