// package domain/models.go
package domain

// Field identifies one of the semantic columns the engine knows how to locate
// in a procurement workbook.
type Field string

// Semantic fields, in catalog declaration order.
const (
	FieldMonth            Field = "month"
	FieldState            Field = "state"
	FieldSupplier         Field = "supplier"
	FieldItem             Field = "item"
	FieldUnitRate         Field = "unitRate"
	FieldPlannedUnits     Field = "plannedUnits"
	FieldPlannedAmount    Field = "plannedAmount"
	FieldInvoicedUnits    Field = "invoicedUnits"
	FieldInvoicedUnitRate Field = "invoicedUnitRate"
	FieldInvAmount        Field = "invAmount"
	FieldInvoiceNo        Field = "invoiceNo"
	FieldReceivedUnits    Field = "receivedUnits"
	FieldReceivedAmount   Field = "receivedAmount"
	FieldUnitsPayable     Field = "unitsPayable"
	FieldActualPayable    Field = "actualPayable"
	FieldDebitNote        Field = "debitNote"
	FieldRemarks          Field = "remarks"
)

// UnknownSupplier is the bucket name used when a row carries no supplier.
const UnknownSupplier = "Unknown Supplier"

// DebitHeaderNotFound is the marker reported when no header could be mapped
// to the debit-note field.
const DebitHeaderNotFound = "NOT FOUND"

// RawRow maps an original header string to the raw cell text of one data row,
// exactly as produced by the workbook decoder.
type RawRow map[string]string

// HeaderMap maps each semantic field to the original header string it was
// matched against. A field with no match is simply absent from the map.
type HeaderMap map[Field]string

// Header returns the original header mapped to f, and whether a mapping exists.
func (hm HeaderMap) Header(f Field) (string, bool) {
	h, ok := hm[f]
	return h, ok
}

// NormalizedRow is the fixed-shape projection of one RawRow through the
// HeaderMap. Text fields are trimmed; unit/amount fields keep the raw cell
// text as supplied, numeric coercion happens at computation time.
type NormalizedRow struct {
	Month            string `json:"month"`
	State            string `json:"state"`
	Supplier         string `json:"supplier"`
	Item             string `json:"item"`
	UnitRate         string `json:"unitRate"`
	PlannedUnits     string `json:"plannedUnits"`
	PlannedAmount    string `json:"plannedAmount"`
	InvoicedUnits    string `json:"invoicedUnits"`
	InvoicedUnitRate string `json:"invoicedUnitRate"`
	InvAmount        string `json:"invAmount"`
	InvoiceNo        string `json:"invoiceNo"`
	ReceivedUnits    string `json:"receivedUnits"`
	ReceivedAmount   string `json:"receivedAmount"`
	UnitsPayable     string `json:"unitsPayable"`
	ActualPayable    string `json:"actualPayable"`

	// RawDebitValue is the untouched debit-note cell, kept verbatim so that an
	// explicitly recorded debit can be detected later.
	RawDebitValue string `json:"rawDebitValue"`
	DebitNote     string `json:"debitNote"`
	Remarks       string `json:"remarks"`

	// DebitAmount is attached once by the debit calculator, non-negative,
	// rounded to 2 decimals.
	DebitAmount float64 `json:"debitAmount"`
}

// Supplier groups the qualifying rows of one supplier.
type Supplier struct {
	Name       string          `json:"name"`
	State      string          `json:"state"`
	Items      []NormalizedRow `json:"items"`
	TotalDebit float64         `json:"totalDebit"`
}

// Aggregation is the complete grouping result for one workbook. Order records
// first-seen supplier order and is the authoritative traversal sequence;
// map iteration order is never relied upon.
type Aggregation struct {
	Suppliers map[string]*Supplier `json:"suppliers"`
	Order     []string             `json:"order"`
}

// Diagnostics carries operator-facing information about one processing run.
type Diagnostics struct {
	DebitHeader       string           `json:"debitHeader"`
	DebitHeaderFound  bool             `json:"debitHeaderFound"`
	ExplicitDebitRows int              `json:"explicitDebitRows"`
	ComputedDebitRows int              `json:"computedDebitRows"`
	RowCount          int              `json:"rowCount"`
	SupplierCount     int              `json:"supplierCount"`
	Suggestions       map[Field]string `json:"suggestions,omitempty"`
}

// Result is the full output of one workbook run, consumed by the rendering
// layer and by API clients.
type Result struct {
	Headers     []string        `json:"headers"`
	HeaderMap   HeaderMap       `json:"headerMap"`
	Rows        []NormalizedRow `json:"rows"`
	Aggregation Aggregation     `json:"aggregation"`
	Diagnostics Diagnostics     `json:"diagnostics"`
}
