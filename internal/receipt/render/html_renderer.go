package render

import (
	"bytes"
	"html/template"
	"time"

	notifrender "github.com/networkasro-maker/asro/internal/notification/render"
)

const receiptHTMLTemplate = `<!doctype html>
<html lang="id">
<head>
  <meta charset="utf-8" />
  <title>Kuitansi Pembayaran - {{.Customer.Name}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .receipt {
      max-width: 640px;
      margin: 0 auto;
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      padding: 24px;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .brand {
      display: flex;
      align-items: center;
      gap: 12px;
    }
    .brand img {
      max-height: 48px;
    }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .section { margin-bottom: 16px; font-size: 14px; }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    .totals {
      margin-top: 12px;
      display: flex;
      justify-content: flex-end;
      font-size: 16px;
    }
    .totals strong { margin-left: 12px; }
    .paid {
      display: inline-block;
      padding: 4px 12px;
      border: 2px solid #16a34a;
      border-radius: 4px;
      color: #16a34a;
      font-weight: bold;
      text-transform: uppercase;
    }
    .footer {
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="header">
      <div class="brand">
        {{if .Profile.LogoURL}}
        <img src="{{.Profile.LogoURL}}" alt="Logo" />
        {{end}}
        <div>
          <div><strong>{{.Profile.Name}}</strong></div>
          <div>{{.Profile.Address}}</div>
          <div>{{.Profile.Contact}}</div>
        </div>
      </div>
      <div style="text-align: right; font-size: 14px;">
        <div class="label">Kuitansi</div>
        <div>No. Pelanggan: <strong>{{.Customer.ID}}</strong></div>
        <div>Tanggal: {{formatDate .PaidAt}}</div>
        <div class="paid">Lunas</div>
      </div>
    </div>

    <div class="section">
      <div class="label">Diterima dari</div>
      <div><strong>{{.Customer.Name}}</strong></div>
      <div>{{.Customer.Address}}</div>
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Keterangan</th>
            <th>Jatuh Tempo</th>
            <th>Jumlah</th>
          </tr>
        </thead>
        <tbody>
          <tr>
            <td>{{.Package.Name}}</td>
            <td>{{formatDate .Customer.DueDate}}</td>
            <td>{{formatRupiah .Package.Price}}</td>
          </tr>
        </tbody>
      </table>
      <div class="totals">
        <span>Total</span>
        <strong>{{formatRupiah .Package.Price}}</strong>
      </div>
    </div>

    <div class="footer">
      <div>Terima kasih atas pembayaran Anda.</div>
      <div>Kuitansi ini sah tanpa tanda tangan.</div>
    </div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatRupiah": notifrender.FormatRupiah,
		"formatDate":   notifrender.FormatDate,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("receipt").Funcs(funcs).Parse(receiptHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if input.Profile.Name == "" {
		input.Profile.Name = "Kuitansi"
	}
	if input.PaidAt.IsZero() {
		input.PaidAt = time.Now()
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
