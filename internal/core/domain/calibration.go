package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
)

// CalibrationTone is the urgency class shown next to a device.
type CalibrationTone string

const (
	ToneNone    CalibrationTone = "none"
	ToneOK      CalibrationTone = "ok"
	ToneWarn    CalibrationTone = "warn"
	ToneOverdue CalibrationTone = "overdue"
)

// CalibrationWarnDays is the last window, in days, before a due date in which
// a device is flagged.
const CalibrationWarnDays = 30

// urgency orders tones from most to least pressing.
var urgency = map[CalibrationTone]int{
	ToneOverdue: 0,
	ToneWarn:    1,
	ToneOK:      2,
	ToneNone:    3,
}

// Urgency returns the sort rank of the tone; lower is more urgent.
func (t CalibrationTone) Urgency() int {
	if rank, ok := urgency[t]; ok {
		return rank
	}
	return len(urgency)
}

// ParseCalibrationTone accepts one of the four tone names.
func ParseCalibrationTone(raw string) (CalibrationTone, error) {
	tone := CalibrationTone(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := urgency[tone]; !ok {
		return "", fmt.Errorf("%w: tone must be one of overdue, warn, ok, none", apperrors.ErrValidation)
	}
	return tone, nil
}

// Calibration is the derived, transient urgency of a device.
// DaysLeft and DueDate are nil when the tone is ToneNone.
type Calibration struct {
	Tone     CalibrationTone
	DaysLeft *int
	DueDate  *time.Time
	Label    string
}

// ComputeCalibration derives the calibration urgency from the last calibration
// date and the interval in years, relative to today. It has no side effects.
//
// The due date is a calendar-year increment of the last calibration. Both dates
// are reduced to calendar days before comparing, so a due date falling on today
// yields zero days left.
func ComputeCalibration(lastCalibrationAt *time.Time, intervalYears *int, today time.Time) Calibration {
	if lastCalibrationAt == nil || intervalYears == nil || *intervalYears <= 0 {
		return Calibration{Tone: ToneNone, Label: calibrationLabel(ToneNone, 0)}
	}

	due := calendarDay(*lastCalibrationAt).AddDate(*intervalYears, 0, 0)
	daysLeft := int(math.Ceil(due.Sub(calendarDay(today)).Hours() / 24))

	tone := ToneOK
	switch {
	case daysLeft < 0:
		tone = ToneOverdue
	case daysLeft <= CalibrationWarnDays:
		tone = ToneWarn
	}

	return Calibration{
		Tone:     tone,
		DaysLeft: &daysLeft,
		DueDate:  &due,
		Label:    calibrationLabel(tone, daysLeft),
	}
}

// calendarDay drops the clock part, keeping the date as seen in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func calibrationLabel(tone CalibrationTone, daysLeft int) string {
	switch tone {
	case ToneNone:
		return "brak danych"
	case ToneOverdue:
		return fmt.Sprintf("po terminie (%s)", days(-daysLeft))
	default:
		return days(daysLeft)
	}
}

func days(n int) string {
	if n == 1 {
		return "1 dzień"
	}
	return fmt.Sprintf("%d dni", n)
}
