package domain

import "time"

// Warehouses a device can be stored in instead of having map coordinates.
const (
	WarehouseGeoBB  = "GEO_BB"
	WarehouseGeoOM  = "GEO_OM"
	WarehouseGeoLD  = "GEO_LD"
	WarehouseSerwis = "SERWIS"
)

// Device is the read-only view of an inventory entity (kind "points") that the
// journal needs: its title, storage location and calibration record.
type Device struct {
	ID                       int64
	Title                    string
	InStorage                bool
	Warehouse                *string
	LastCalibrationAt        *time.Time
	CalibrationIntervalYears *int
}

// DeviceCalibration pairs a device with its derived calibration urgency.
type DeviceCalibration struct {
	Device
	Calibration
}

// CalibrationOf computes the device's calibration relative to today.
func (d Device) CalibrationOf(today time.Time) DeviceCalibration {
	return DeviceCalibration{
		Device:      d,
		Calibration: ComputeCalibration(d.LastCalibrationAt, d.CalibrationIntervalYears, today),
	}
}
