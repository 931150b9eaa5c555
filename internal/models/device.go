package models

import "time"

// Device is the subset of an assets row the journal reads.
type Device struct {
	ID                       int64      `db:"id"`
	Title                    string     `db:"title"`
	InStorage                bool       `db:"in_storage"`
	Warehouse                *string    `db:"warehouse"`
	LastCalibrationAt        *time.Time `db:"last_calibration_at"`
	CalibrationIntervalYears *int16     `db:"calibration_interval_years"`
}
