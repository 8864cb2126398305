package model

import "github.com/shopspring/decimal"

type VehicleTypeCount struct {
	VehicleType string `json:"vehicleType"`
	Count       int64  `json:"count"`
}

type SummaryReport struct {
	TotalRevenue  decimal.Decimal    `json:"totalRevenue"`
	TotalBookings int64              `json:"totalBookings"`
	VehicleStats  []VehicleTypeCount `json:"vehicleStats"`
}
