package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

// CalibrationService derives calibration urgency for stored devices.
type CalibrationService struct {
	BaseService
	devices portsrepo.DeviceReader
	now     func() time.Time
}

// CalibrationOption configures a CalibrationService.
type CalibrationOption func(*CalibrationService)

// WithClock replaces the wall clock used as "today".
func WithClock(now func() time.Time) CalibrationOption {
	return func(s *CalibrationService) {
		s.now = now
	}
}

func NewCalibrationService(devices portsrepo.DeviceReader, opts ...CalibrationOption) *CalibrationService {
	s := &CalibrationService{devices: devices, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CalibrationSvc = (*CalibrationService)(nil)

func (s *CalibrationService) GetDeviceCalibration(ctx context.Context, deviceID int64) (*domain.DeviceCalibration, error) {
	ctx, span := s.StartSpan(ctx, "CalibrationService.GetDeviceCalibration")
	defer span.End()

	if err := validatePositiveID("id", deviceID); err != nil {
		return nil, err
	}

	device, err := s.devices.FindDeviceByID(ctx, deviceID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load device", slog.Int64("device_id", deviceID))
		return nil, fmt.Errorf("failed to load device: %w", err)
	}

	dc := device.CalibrationOf(s.now())
	return &dc, nil
}

// ListDeviceCalibrations orders by tone urgency (overdue, warn, ok, none),
// then by days left ascending, then by id.
func (s *CalibrationService) ListDeviceCalibrations(ctx context.Context, params dto.ListCalibrationsParams) ([]domain.DeviceCalibration, error) {
	ctx, span := s.StartSpan(ctx, "CalibrationService.ListDeviceCalibrations")
	defer span.End()

	var filter *domain.CalibrationTone
	if params.Tone != "" {
		tone, err := domain.ParseCalibrationTone(params.Tone)
		if err != nil {
			return nil, err
		}
		filter = &tone
	}

	devices, err := s.devices.ListDevices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list devices")
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	today := s.now()
	result := make([]domain.DeviceCalibration, 0, len(devices))
	for _, d := range devices {
		dc := d.CalibrationOf(today)
		if filter != nil && dc.Tone != *filter {
			continue
		}
		result = append(result, dc)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Tone.Urgency() != b.Tone.Urgency() {
			return a.Tone.Urgency() < b.Tone.Urgency()
		}
		if a.DaysLeft != nil && b.DaysLeft != nil && *a.DaysLeft != *b.DaysLeft {
			return *a.DaysLeft < *b.DaysLeft
		}
		return a.ID < b.ID
	})
	return result, nil
}
