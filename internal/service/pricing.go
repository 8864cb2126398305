package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/driveease/rental-service/internal/model"
)

// markupMultiplier is the fixed 10% service markup applied once to the
// daily rate, not compounded per day.
var markupMultiplier = decimal.RequireFromString("1.10")

const offerImageURL = "https://images.unsplash.com/photo-1494976388531-d1058494cdd8?w=600"

// FinalPrice quotes a rental: baseRate × 1.10 × days × vehicleCount, in
// exact decimal arithmetic. Days and count below 1 are clamped to 1 so
// untrusted input can never produce a zero or negative quote.
func FinalPrice(baseRate decimal.Decimal, days, vehicleCount int) decimal.Decimal {
	if days < 1 {
		days = 1
	}
	if vehicleCount < 1 {
		vehicleCount = 1
	}
	return baseRate.
		Mul(markupMultiplier).
		Mul(decimal.NewFromInt(int64(days))).
		Mul(decimal.NewFromInt(int64(vehicleCount)))
}

// SearchAvailableVehicles returns available contracts, optionally narrowed
// to one vehicle type. An empty, blank or "All" type means no narrowing.
func (s *BookingService) SearchAvailableVehicles(ctx context.Context, vehicleType string) ([]model.VehicleContract, error) {
	trimmed := strings.TrimSpace(vehicleType)
	if trimmed == "" || strings.EqualFold(trimmed, "All") {
		return s.contracts.ListAvailable(ctx, true)
	}
	return s.contracts.ListAvailableByType(ctx, vehicleType, true)
}

// SearchOffers decorates each search hit with the quoted price for the
// requested rental length and vehicle count.
func (s *BookingService) SearchOffers(ctx context.Context, vehicleType string, days, count int) ([]model.VehicleOffer, error) {
	contracts, err := s.SearchAvailableVehicles(ctx, vehicleType)
	if err != nil {
		return nil, err
	}

	offers := make([]model.VehicleOffer, 0, len(contracts))
	for _, contract := range contracts {
		providerName := contract.ProviderName
		if providerName == "" {
			providerName = "DriveEase Elite"
		}
		availability := "Not Available"
		if contract.AvailabilityStatus {
			availability = "Available"
		}
		offers = append(offers, model.VehicleOffer{
			ContractID:   contract.ID,
			VehicleType:  contract.VehicleType,
			ProviderName: providerName,
			BaseRate:     contract.BaseRatePerDay,
			FinalPrice:   FinalPrice(contract.BaseRatePerDay, days, count),
			Availability: availability,
			ImageURL:     offerImageURL,
		})
	}
	return offers, nil
}
