package mapping

import (
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
)

// ToDomainDevice converts a model Device to a domain Device
func ToDomainDevice(m models.Device) domain.Device {
	d := domain.Device{
		ID:                m.ID,
		Title:             m.Title,
		InStorage:         m.InStorage,
		Warehouse:         m.Warehouse,
		LastCalibrationAt: m.LastCalibrationAt,
	}
	if m.CalibrationIntervalYears != nil {
		years := int(*m.CalibrationIntervalYears)
		d.CalibrationIntervalYears = &years
	}
	return d
}

// ToDomainDeviceSlice converts a slice of model Devices to a slice of domain Devices
func ToDomainDeviceSlice(ms []models.Device) []domain.Device {
	ds := make([]domain.Device, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDevice(m)
	}
	return ds
}
