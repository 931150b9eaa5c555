package services

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

// CalibrationSvc exposes the calibration urgency of devices.
type CalibrationSvc interface {
	GetDeviceCalibration(ctx context.Context, deviceID int64) (*domain.DeviceCalibration, error)

	// ListDeviceCalibrations returns every device, most urgent first,
	// optionally restricted to one tone.
	ListDeviceCalibrations(ctx context.Context, params dto.ListCalibrationsParams) ([]domain.DeviceCalibration, error)
}
