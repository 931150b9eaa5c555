package dto

import (
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

const dateLayout = "2006-01-02"

// ListCalibrationsParams filters the calibration overview.
type ListCalibrationsParams struct {
	Tone string `form:"tone"`
}

// DeviceCalibrationResponse is a device with its calibration urgency.
type DeviceCalibrationResponse struct {
	EntityID                 int64   `json:"entity_id"`
	Title                    string  `json:"title"`
	InStorage                bool    `json:"in_storage"`
	Warehouse                *string `json:"warehouse"`
	LastCalibrationAt        *string `json:"last_calibration_at"`
	CalibrationIntervalYears *int    `json:"calibration_interval_years"`
	DueDate                  *string `json:"due_date"`
	Tone                     string  `json:"tone"`
	DaysLeft                 *int    `json:"days_left"`
	Label                    string  `json:"label"`
}

// ToDeviceCalibrationResponse converts a domain.DeviceCalibration to its DTO.
// Dates are rendered as YYYY-MM-DD.
func ToDeviceCalibrationResponse(dc domain.DeviceCalibration) DeviceCalibrationResponse {
	resp := DeviceCalibrationResponse{
		EntityID:                 dc.ID,
		Title:                    dc.Title,
		InStorage:                dc.InStorage,
		Warehouse:                dc.Warehouse,
		CalibrationIntervalYears: dc.CalibrationIntervalYears,
		Tone:                     string(dc.Tone),
		DaysLeft:                 dc.DaysLeft,
		Label:                    dc.Label,
	}
	if dc.LastCalibrationAt != nil {
		s := dc.LastCalibrationAt.Format(dateLayout)
		resp.LastCalibrationAt = &s
	}
	if dc.DueDate != nil {
		s := dc.DueDate.Format(dateLayout)
		resp.DueDate = &s
	}
	return resp
}

// ToDeviceCalibrationResponses converts a slice; never returns nil.
func ToDeviceCalibrationResponses(items []domain.DeviceCalibration) []DeviceCalibrationResponse {
	responses := make([]DeviceCalibrationResponse, len(items))
	for i, item := range items {
		responses[i] = ToDeviceCalibrationResponse(item)
	}
	return responses
}
