package render

// Document is the canonical display/print projection of a stored invoice.
// Field order mirrors the fixed layout contract: header, dealer block,
// customer/vehicle/invoice columns, parts table, labor table, summary,
// total, advisory/deferred/observation block, signatory.
type Document struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	Dealer []Field `json:"dealer"`

	Customer    []Field `json:"customer"`
	Vehicle     []Field `json:"vehicle"`
	InvoiceInfo []Field `json:"invoiceInfo"`

	// Parts and Labor are nil when the invoice has no rows of that kind;
	// the corresponding section is omitted from the laid-out document.
	Parts *ItemsTable `json:"parts,omitempty"`
	Labor *ItemsTable `json:"labor,omitempty"`

	PartSummary  SummaryColumn `json:"partSummary"`
	LaborSummary SummaryColumn `json:"laborSummary"`

	Total TotalBlock `json:"total"`

	Advisory     string `json:"advisory"`
	DeferredJobs string `json:"deferredJobs"`
	Observations string `json:"observations"`

	SignatoryFor  string `json:"signatoryFor"`
	SignatoryLine string `json:"signatoryLine"`
}

// Field is a single label/value row inside an info block.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ItemsTable is the tabular projection of a part or labor sequence.
// Cell values are pre-formatted display strings.
type ItemsTable struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SummaryColumn is one half of the two-column summary block.
type SummaryColumn struct {
	Heading string  `json:"heading"`
	Rows    []Field `json:"rows"`
}

// TotalBlock carries the total row, the rounded grand total and its
// worded rendering.
type TotalBlock struct {
	PartTotal     string `json:"partTotal"`
	LaborTotal    string `json:"laborTotal"`
	GrandTotal    string `json:"grandTotal"`
	AmountInWords string `json:"amountInWords"`
}
