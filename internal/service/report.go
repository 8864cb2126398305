package service

import (
	"context"
	"fmt"
	"time"

	"github.com/driveease/rental-service/internal/model"
)

// ReportService builds the admin dashboard summary and its XLSX export.
type ReportService struct {
	bookings  BookingStore
	contracts ContractStore
	excel     ExcelGenerator
}

func NewReportService(bookings BookingStore, contracts ContractStore, excel ExcelGenerator) *ReportService {
	return &ReportService{bookings: bookings, contracts: contracts, excel: excel}
}

func (s *ReportService) Summary(ctx context.Context) (*model.SummaryReport, error) {
	revenue, err := s.bookings.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.bookings.TotalBookingCount(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.contracts.VehicleTypeCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.SummaryReport{
		TotalRevenue:  revenue,
		TotalBookings: count,
		VehicleStats:  stats,
	}, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ReportService) Export(ctx context.Context) (*ExportResult, error) {
	report, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("rental-summary-%s.xlsx", time.Now().Format("20060102")),
		Content:  content,
	}, nil
}
