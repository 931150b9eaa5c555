package repositories

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// EntityDirectory answers existence questions about entities owned by the
// inventory collaborator.
type EntityDirectory interface {
	EntityExists(ctx context.Context, kind domain.EntityKind, entityID int64) (bool, error)
}

// DeviceReader reads the calibration and storage fields of devices.
type DeviceReader interface {
	// FindDeviceByID returns apperrors.ErrNotFound for unknown ids.
	FindDeviceByID(ctx context.Context, deviceID int64) (*domain.Device, error)
	ListDevices(ctx context.Context) ([]domain.Device, error)
}

// EntityRepositoryFacade combines the entity lookups.
type EntityRepositoryFacade interface {
	EntityDirectory
	DeviceReader
}
