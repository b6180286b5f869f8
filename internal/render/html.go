package render

import (
	"bytes"
	"html/template"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; color: #1a1f36; }
    .invoice { background: #ffffff; max-width: 900px; margin: 0 auto; padding: 2rem; }
    h2, h4 { text-align: center; margin: 0.25rem 0; }
    .section { background: #f8f9fa; padding: 1rem; margin-top: 1rem; border-left: 3px solid #3498db; }
    .section h5 { margin: 0 0 0.5rem 0; text-transform: uppercase; font-size: 0.9rem; }
    .info-row { padding: 0.15rem 0; font-size: 0.9rem; }
    .label { font-weight: 600; margin-right: 0.4rem; }
    .columns { display: flex; gap: 1rem; }
    .columns .section { flex: 1; margin-top: 1rem; }
    table { width: 100%; border-collapse: collapse; margin-top: 0.75rem; font-size: 0.85rem; }
    th, td { border: 1px solid #dee2e6; padding: 0.4rem 0.5rem; text-align: left; }
    thead { background: #2c3e50; color: #ffffff; }
    .summary td:last-child { text-align: right; }
    .total { border: 2px solid #2c3e50; padding: 1rem; margin-top: 1rem; }
    .total-row { display: flex; justify-content: space-between; padding: 0.4rem 0; }
    .grand { font-size: 1.2rem; font-weight: 700; border-top: 2px solid #2c3e50; margin-top: 0.5rem; padding-top: 0.5rem; }
    .words { text-align: center; background: #e9ecef; padding: 0.75rem; margin-top: 0.75rem; font-weight: 600; }
    .signatory { text-align: right; margin-top: 2rem; }
    .signatory .line { margin-top: 3rem; }
    @media print { body { margin: 0; padding: 10px; } }
  </style>
</head>
<body>
  <div class="invoice">
    <h2>{{.Title}}</h2>
    <h4>{{.Subtitle}}</h4>

    <div class="section">
      <h5>Dealer Details</h5>
      {{range .Dealer}}<div class="info-row"><span class="label">{{.Label}}:</span>{{.Value}}</div>
      {{end}}
    </div>

    <div class="columns">
      <div class="section">
        <h5>Customer Details</h5>
        {{range .Customer}}<div class="info-row"><span class="label">{{.Label}}:</span>{{.Value}}</div>
        {{end}}
      </div>
      <div class="section">
        <h5>Vehicle Details</h5>
        {{range .Vehicle}}<div class="info-row"><span class="label">{{.Label}}:</span>{{.Value}}</div>
        {{end}}
      </div>
      <div class="section">
        <h5>Invoice Details</h5>
        {{range .InvoiceInfo}}<div class="info-row"><span class="label">{{.Label}}:</span>{{.Value}}</div>
        {{end}}
      </div>
    </div>

    {{with .Parts}}
    <div class="section">
      <h5>{{.Title}}</h5>
      <table>
        <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
        <tbody>
          {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}

    {{with .Labor}}
    <div class="section">
      <h5>{{.Title}}</h5>
      <table>
        <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
        <tbody>
          {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}

    <div class="columns">
      <div class="section">
        <h5>{{.PartSummary.Heading}}</h5>
        <table class="summary">
          {{range .PartSummary.Rows}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
          {{end}}
        </table>
      </div>
      <div class="section">
        <h5>{{.LaborSummary.Heading}}</h5>
        <table class="summary">
          {{range .LaborSummary.Rows}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
          {{end}}
        </table>
      </div>
    </div>

    <div class="total">
      <div class="total-row"><span>Total(Rs)</span><span>{{.Total.PartTotal}}</span><span>{{.Total.LaborTotal}}</span></div>
      <div class="total-row grand"><span>Grand Total(Rs) (Rounded)</span><span>{{.Total.GrandTotal}}</span></div>
      <div class="words">{{.Total.AmountInWords}}</div>
    </div>

    <div class="columns">
      <div class="section">
        <h5>Customer Advisory</h5>
        <div class="info-row">{{.Advisory}}</div>
      </div>
      <div class="section">
        <h5>Deferred Jobs</h5>
        <div class="info-row">{{.DeferredJobs}}</div>
      </div>
      <div class="section">
        <h5>Observation</h5>
        <div class="info-row">{{.Observations}}</div>
      </div>
    </div>

    <div class="signatory">
      <div><strong>{{.SignatoryFor}}</strong></div>
      <div class="line">{{.SignatoryLine}}</div>
    </div>
  </div>
</body>
</html>
`

var documentTemplate = template.Must(template.New("invoice-document").Parse(documentHTMLTemplate))

// RenderHTML serializes a Document into a self-contained printable HTML
// page. Layout decisions live in the template; all values arrive
// pre-formatted from the Document projection.
func RenderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
