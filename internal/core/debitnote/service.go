package debitnote

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/schollz/closestmatch"

	"debitnote-service/internal/config"
	"debitnote-service/internal/core/document"
	"debitnote-service/internal/domain"
)

// Service defines the debit-note extraction and rendering operations.
type Service interface {
	// ProcessWorkbook runs the full pipeline over one uploaded workbook:
	// decode, header mapping, row normalization, debit computation and
	// supplier aggregation.
	ProcessWorkbook(file io.Reader, filename string) (*domain.Result, error)
	// GenerateNote renders the debit note PDF for one supplier of a result.
	GenerateNote(res *domain.Result, supplier string) ([]byte, error)
	// GenerateAllNotes renders every supplier's debit note into a zip archive.
	GenerateAllNotes(res *domain.Result) ([]byte, error)
}

type service struct {
	catalog   []FieldCandidates
	formatter *CurrencyFormatter
	renderer  *document.Renderer
}

// Options configures a debit-note service.
type Options struct {
	Catalog     []FieldCandidates
	Currency    config.CurrencyConfig
	CompanyName string
}

// NewService creates a new debit-note service instance.
func NewService(opts Options) Service {
	if len(opts.Catalog) == 0 {
		opts.Catalog = DefaultCatalog
	}
	formatter := NewCurrencyFormatter(opts.Currency.Code, opts.Currency.Locale, opts.Currency.Symbol)
	renderer := document.NewRenderer(document.Options{
		CompanyName:  opts.CompanyName,
		FormatAmount: formatter.Format,
		ParseAmount:  ParseNumber,
	})
	return &service{
		catalog:   opts.Catalog,
		formatter: formatter,
		renderer:  renderer,
	}
}

// NewServiceFromConfig wires a service from the application configuration,
// applying any field catalog overrides.
func NewServiceFromConfig(cfg *config.Config) Service {
	return NewService(Options{
		Catalog:     catalogFromConfig(cfg.Fields),
		Currency:    cfg.Currency,
		CompanyName: cfg.CompanyName,
	})
}

func catalogFromConfig(fields []config.FieldConfig) []FieldCandidates {
	if len(fields) == 0 {
		return nil
	}
	catalog := make([]FieldCandidates, 0, len(fields))
	for _, fc := range fields {
		if fc.Field == "" || len(fc.Candidates) == 0 {
			continue
		}
		catalog = append(catalog, FieldCandidates{
			Field:      domain.Field(fc.Field),
			Candidates: fc.Candidates,
		})
	}
	return catalog
}

func (s *service) ProcessWorkbook(file io.Reader, filename string) (*domain.Result, error) {
	headers, raws, err := decodeWorkbook(file, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to decode workbook: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("file is empty or has no data rows")
	}

	headerMap := BuildHeaderMap(headers, s.catalog)
	rows := NormalizeRows(raws, headerMap)

	var explicitRows, computedRows int
	for i := range rows {
		rows[i].DebitAmount = ComputeDebit(rows[i])
		if ParseNumber(rows[i].RawDebitValue) > epsilon {
			explicitRows++
		} else if rows[i].DebitAmount > epsilon {
			computedRows++
		}
	}

	agg := Aggregate(rows)

	diag := domain.Diagnostics{
		DebitHeader:       domain.DebitHeaderNotFound,
		ExplicitDebitRows: explicitRows,
		ComputedDebitRows: computedRows,
		RowCount:          len(rows),
		SupplierCount:     len(agg.Order),
		Suggestions:       headerSuggestions(headers, headerMap, s.catalog),
	}
	if h, ok := headerMap.Header(domain.FieldDebitNote); ok {
		diag.DebitHeader = h
		diag.DebitHeaderFound = true
	}

	return &domain.Result{
		Headers:     headers,
		HeaderMap:   headerMap,
		Rows:        rows,
		Aggregation: agg,
		Diagnostics: diag,
	}, nil
}

// headerSuggestions proposes the nearest raw header for every field the
// mapper left absent. Informational only; the mapping itself is never
// influenced by fuzzy matches.
func headerSuggestions(headers []string, hm domain.HeaderMap, catalog []FieldCandidates) map[domain.Field]string {
	var missing []FieldCandidates
	for _, fc := range catalog {
		if _, ok := hm.Header(fc.Field); !ok {
			missing = append(missing, fc)
		}
	}
	if len(missing) == 0 || len(headers) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(headers))
	byToken := make(map[string]string, len(headers))
	for _, h := range headers {
		tok := NormalizeKey(h)
		if tok == "" {
			continue
		}
		if _, dup := byToken[tok]; !dup {
			byToken[tok] = h
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	cm := closestmatch.New(tokens, []int{2, 3})
	suggestions := make(map[domain.Field]string)
	for _, fc := range missing {
		if len(fc.Candidates) == 0 {
			continue
		}
		match := cm.Closest(NormalizeKey(fc.Candidates[0]))
		if match == "" {
			continue
		}
		if h, ok := byToken[match]; ok {
			suggestions[fc.Field] = h
		}
	}
	if len(suggestions) == 0 {
		return nil
	}
	return suggestions
}

func (s *service) GenerateNote(res *domain.Result, supplier string) ([]byte, error) {
	sup, ok := res.Aggregation.Suppliers[supplier]
	if !ok {
		return nil, fmt.Errorf("supplier %q has no debit note", supplier)
	}
	return s.renderer.RenderNote(sup)
}

func (s *service) GenerateAllNotes(res *domain.Result) ([]byte, error) {
	if len(res.Aggregation.Order) == 0 {
		return nil, fmt.Errorf("no suppliers require debit notes")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range res.Aggregation.Order {
		pdf, err := s.renderer.RenderNote(res.Aggregation.Suppliers[name])
		if err != nil {
			return nil, fmt.Errorf("failed to render note for %s: %w", name, err)
		}
		w, err := zw.Create(document.NoteFileName(name))
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(pdf); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
