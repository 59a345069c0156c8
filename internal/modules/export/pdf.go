package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/stockroomhq/stockroom-backend/internal/modules/inventory"
)

// Fixed table layout in millimetres on an A4 portrait page.
const (
	pdfTitle   = "Inventory Report"
	pdfHeaderY = 35.0  // vertical start of the table header
	pdfRowStep = 8.0   // vertical increment per row
	pdfBodyMax = 280.0 // past this the cursor moves to a new page
)

var (
	pdfColX    = []float64{15, 80, 105, 135, 170}
	pdfColumns = []string{"Name", "Qty", "Price", "Category", "Supplier"}
)

// RenderPDF renders the item list as a paginated PDF table: a centered
// title, a five-column header at a fixed offset, then one row per item at
// fixed column positions. Empty category/supplier render as "-", price as
// "$" with two decimals. Compression is off so the rendered strings stay
// literal in the output stream.
func RenderPDF(items []inventory.Item) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(false, 0)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 20, pdfTitle, "", 1, "C", false, 0, "")

	writeHeader := func(y float64) {
		pdf.SetFont("Helvetica", "B", 11)
		for i, col := range pdfColumns {
			pdf.Text(pdfColX[i], y, col)
		}
		pdf.SetFont("Helvetica", "", 10)
	}

	y := pdfHeaderY
	writeHeader(y)
	y += pdfRowStep

	for _, it := range items {
		if y > pdfBodyMax {
			pdf.AddPage()
			y = pdfHeaderY
			writeHeader(y)
			y += pdfRowStep
		}
		category := it.Category
		if category == "" {
			category = "-"
		}
		supplier := it.Supplier
		if supplier == "" {
			supplier = "-"
		}
		pdf.Text(pdfColX[0], y, it.Name)
		pdf.Text(pdfColX[1], y, strconv.Itoa(it.Quantity))
		pdf.Text(pdfColX[2], y, fmt.Sprintf("$%.2f", it.Price))
		pdf.Text(pdfColX[3], y, category)
		pdf.Text(pdfColX[4], y, supplier)
		y += pdfRowStep
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
