package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/driveease/rental-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.SummaryReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Summary"
	file.SetSheetName("Sheet1", sheet)
	if err := g.writeSummary(file, sheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.SummaryReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Rental summary")
	set("A2", "Total revenue")
	set("B2", report.TotalRevenue.StringFixed(2))
	set("A3", "Total bookings")
	set("B3", report.TotalBookings)

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Vehicle type")
	set(fmt.Sprintf("B%d", tableRow), "Contracts")

	for i, stat := range report.VehicleStats {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), stat.VehicleType)
		set(fmt.Sprintf("B%d", row), stat.Count)
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 18)
	return nil
}
