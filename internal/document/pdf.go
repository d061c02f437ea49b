// Package document prints quotes and bills as PDF.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"rentalbilling/internal/billing"
)

const (
	pageMargin = 15.0
	lineHeight = 6.0
	qrSize     = 28.0
)

// table columns: reference, name, quantity, unit price, total
var columnWidths = []float64{30, 80, 15, 27.5, 27.5}

type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// QRPayload is what the QR code of a document encodes.
func QRPayload(data *billing.TemplateData) string {
	if data.Number != "" {
		return fmt.Sprintf("bill=%s&event=%s&total=%s", data.Number, data.Event.ID, data.TotalInclTax.StringFixed(2))
	}
	return fmt.Sprintf("event=%s&total=%s", data.Event.ID, data.TotalInclTax.StringFixed(2))
}

// Render lays the quote out on A4 pages. Hidden lines never appear but are part of the totals.
func (r *PDFRenderer) Render(data *billing.TemplateData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(documentTitle(data), true)
	pdf.SetCreator(data.Company.Name, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	qr, err := qrcode.Encode(QRPayload(data), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qr))

	pageWidth, _ := pdf.GetPageSize()
	pdf.ImageOptions("qr", pageWidth-pageMargin-qrSize, pageMargin, qrSize, qrSize, false, imgOpts, 0, "")

	writeCompany(pdf, tr, data.Company)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(documentTitle(data)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, lineHeight, tr("Date: "+data.Date.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeBeneficiary(pdf, tr, data.Beneficiary)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, lineHeight, tr(data.Event.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	period := fmt.Sprintf("From %s to %s (%d day(s))",
		data.Event.StartDate.Format("02/01/2006"), data.Event.EndDate.Format("02/01/2006"), data.DaysCount)
	if data.Event.Location != "" {
		period += ", " + data.Event.Location
	}
	pdf.CellFormat(0, lineHeight, tr(period), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	money := func(d decimal.Decimal) string {
		return tr(formatMoney(d, data.Currency))
	}

	writeTableHeader(pdf, tr)
	for _, group := range data.MaterialsByCategory {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(235, 235, 245)
		pdf.CellFormat(0, lineHeight, tr(group.Name), "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, m := range group.Materials {
			pdf.CellFormat(columnWidths[0], lineHeight, tr(m.Reference), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columnWidths[1], lineHeight, tr(truncate(materialLabel(m), 52)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columnWidths[2], lineHeight, fmt.Sprintf("%d", m.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(columnWidths[3], lineHeight, money(m.RentalPrice), "1", 0, "R", false, 0, "")
			pdf.CellFormat(columnWidths[4], lineHeight, money(m.Total), "1", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(4)

	labelWidth := columnWidths[0] + columnWidths[1] + columnWidths[2] + columnWidths[3]
	total := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[4], lineHeight, value, "", 1, "R", false, 0, "")
	}

	total("Daily amount", money(data.DailyAmount), false)
	total(fmt.Sprintf("Degressive rate (%d day(s))", data.DaysCount), "x "+data.DegressiveRate.StringFixed(2), false)
	if data.DiscountAmount.IsPositive() {
		total(fmt.Sprintf("Discount (%s %%)", data.DiscountRate.StringFixed(2)), "- "+money(data.DiscountAmount), false)
	}
	total("Total excluding taxes", money(data.TotalExclTax), true)
	for _, tax := range data.Taxes {
		label := tax.Name
		if tax.IsRate {
			label = fmt.Sprintf("%s (%s %%)", tax.Name, tax.Value.String())
		}
		total(label, money(tax.Amount), false)
	}
	total("Total including taxes", money(data.TotalInclTax), true)
	pdf.Ln(4)

	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Total replacement value of the material: %s", formatMoney(data.ReplacementAmount, data.Currency))), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func documentTitle(data *billing.TemplateData) string {
	if data.Number != "" {
		return "Bill " + data.Number
	}
	return "Quote"
}

func writeCompany(pdf *gofpdf.Fpdf, tr func(string) string, c billing.Company) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, lineHeight, tr(c.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	lines := []string{c.Street, strings.TrimSpace(c.ZipCode + " " + c.Locality), c.Country, c.Phone}
	if c.VATNumber != "" {
		lines = append(lines, "VAT: "+c.VATNumber)
	}
	for _, l := range lines {
		if l == "" {
			continue
		}
		pdf.CellFormat(0, 4.5, tr(l), "", 1, "L", false, 0, "")
	}
}

func writeBeneficiary(pdf *gofpdf.Fpdf, tr func(string) string, b billing.Beneficiary) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, lineHeight, tr("Billed to: "+b.FullName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, l := range []string{b.CompanyName, b.Street, strings.TrimSpace(b.PostalCode + " " + b.Locality), b.Email, b.Phone} {
		if l == "" {
			continue
		}
		pdf.CellFormat(0, 4.5, tr(l), "", 1, "L", false, 0, "")
	}
}

func writeTableHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(210, 210, 225)
	headers := []string{"Reference", "Material", "Qty", "Unit price", "Total"}
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(columnWidths[i], lineHeight, tr(h), "1", ln, "C", true, 0, "")
	}
}

// materialLabel appends the booked units of unit-tracked materials.
func materialLabel(m billing.PresentedMaterial) string {
	if len(m.Units) == 0 {
		return m.Name
	}
	names := make([]string, 0, len(m.Units))
	for _, u := range m.Units {
		names = append(names, u.Name)
	}
	return fmt.Sprintf("%s [%s]", m.Name, strings.Join(names, ", "))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// formatMoney prefers the configured symbol and falls back to the ISO code for foreign currencies.
func formatMoney(d decimal.Decimal, c billing.TemplateCurrency) string {
	if c.Symbol != "" {
		return d.StringFixed(2) + " " + c.Symbol
	}
	return d.StringFixed(2) + " " + c.Code
}
