// Package invoice renders a downloadable PDF for a placed order. The
// rendered numbers come straight from the Order record; nothing is
// recomputed here.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fooddash-be/internal/order"
)

const (
	companyName    = "FOODDASH"
	companyTagline = "Delicious meals delivered to your doorstep"
	supportEmail   = "support@fooddash.example.com"
)

// Render produces the invoice PDF for one order.
func Render(o *order.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice #%d", o.ID), false)
	pdf.SetAuthor(companyName, false)
	pdf.AddPage()

	header(pdf)
	billTo(pdf, o)
	details(pdf, o)
	itemsTable(pdf, o)
	summary(pdf, o)
	footer(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

func header(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(34, 197, 94)
	pdf.Text(20, 25, companyName)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 35, companyTagline)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(150, 30, "INVOICE")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, 40, 190, 40)
}

func billTo(pdf *gofpdf.Fpdf, o *order.Order) {
	a := o.DeliveryAddress

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 55, "BILL TO:")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20, 62, a.FullName)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 69, a.Address)
	pdf.Text(20, 76, fmt.Sprintf("%s, %s", a.City, a.PostalCode))
	pdf.Text(20, 83, a.Phone)
}

func details(pdf *gofpdf.Fpdf, o *order.Order) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(140, 55, "INVOICE #")
	pdf.Text(140, 65, "DATE")
	pdf.Text(140, 75, "STATUS")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(165, 55, fmt.Sprintf("#%d", o.ID))
	pdf.Text(165, 65, formatDate(o.OrderDate))
	pdf.Text(165, 75, string(o.Status))
}

func itemsTable(pdf *gofpdf.Fpdf, o *order.Order) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 100, "Order Items")

	pdf.SetY(105)
	pdf.SetX(20)

	widths := []float64{80, 25, 30, 35}
	headers := []string{"Item", "Quantity", "Price", "Total"}

	pdf.SetFillColor(34, 197, 94)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range o.Items {
		pdf.SetX(20)
		pdf.CellFormat(widths[0], 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, rupees(item.Price), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, rupees(item.Price*float64(item.Quantity)), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}

func summary(pdf *gofpdf.Fpdf, o *order.Order) {
	y := pdf.GetY() + 15

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(130, y, "Subtotal:")
	pdf.Text(130, y+10, "Delivery Fee:")
	pdf.Text(130, y+20, "Taxes:")

	pdf.Text(170, y, rupees(o.Subtotal))
	pdf.Text(170, y+10, rupees(o.DeliveryFee))
	pdf.Text(170, y+20, rupees(o.Taxes))

	pdf.SetFillColor(232, 248, 238)
	pdf.RoundedRect(125, y+25, 70, 15, 2, "1234", "F")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(34, 197, 94)
	pdf.Text(130, y+34, "GRAND TOTAL:")
	pdf.Text(170, y+34, fmt.Sprintf("Rs %d/-", o.Total))
	pdf.SetTextColor(0, 0, 0)
}

func footer(pdf *gofpdf.Fpdf) {
	_, pageH := pdf.GetPageSize()
	y := pageH - 20

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(80, y, "Thank you for your order!")
	pdf.Text(65, y+7, "For support, contact: "+supportEmail)
	pdf.Text(175, y+14, fmt.Sprintf("Page %d of 1", pdf.PageNo()))
}

func rupees(amount float64) string {
	// Whole amounts print without a decimal point, matching the cart.
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("Rs %d/-", int64(amount))
	}
	return fmt.Sprintf("Rs %.2f/-", amount)
}

func formatDate(orderDate string) string {
	t, err := time.Parse(time.RFC3339, orderDate)
	if err != nil {
		return orderDate
	}
	return t.Format("January 2, 2006")
}
