package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/driveease/rental-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(doc model.BookingDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "DriveEase Booking Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Booking %s", doc.Booking.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Booked on %s", formatDateTime(doc.Booking.BookingDate)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Rental details", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	colWidths := []float64{60, 120}
	rows := [][2]string{
		{"Customer", safeValue(doc.Booking.CustomerName)},
		{"Vehicle type", safeValue(doc.Contract.VehicleType)},
		{"Provider", safeValue(doc.Contract.ProviderName)},
		{"Pickup date", formatDate(doc.Booking.PickupDate)},
		{"Rental days", fmt.Sprintf("%d", doc.Booking.RentalDays)},
		{"Vehicle count", fmt.Sprintf("%d", doc.Booking.VehicleCount)},
		{"Daily base rate", doc.Contract.BaseRatePerDay.StringFixed(2)},
		{"Total price", doc.Booking.FinalPrice.StringFixed(2)},
	}
	for _, row := range rows {
		pdf.CellFormat(colWidths[0], 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, row[1], "1", 1, "L", false, 0, "")
	}

	if strings.TrimSpace(doc.Booking.Requirements) != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Special requirements", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 6, doc.Booking.Requirements, "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "", 9)
	pdf.CellFormat(0, 6, "The total includes the 10% DriveEase service fee.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
