package domain

import (
	"fmt"
	"strings"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
)

// EntityKind tags which collaborator table a comment or read mark belongs to.
// Entity ids are only unique within a kind.
type EntityKind string

const (
	// KindPoints is the journal of devices placed on the map or in a warehouse.
	KindPoints EntityKind = "points"
)

// supportedEntityKinds is the closed set of kinds that carry a journal.
var supportedEntityKinds = []EntityKind{KindPoints}

// SupportedEntityKinds returns the registered kinds in a stable order.
func SupportedEntityKinds() []EntityKind {
	kinds := make([]EntityKind, len(supportedEntityKinds))
	copy(kinds, supportedEntityKinds)
	return kinds
}

// Valid reports whether k is a registered kind.
func (k EntityKind) Valid() bool {
	for _, known := range supportedEntityKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k EntityKind) String() string {
	return string(k)
}

// ParseEntityKind converts raw input into a registered kind.
// Unknown values are rejected rather than passed through.
func ParseEntityKind(raw string) (EntityKind, error) {
	kind := EntityKind(strings.TrimSpace(raw))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: kind must be one of %s", apperrors.ErrValidation, kindList())
	}
	return kind, nil
}

func kindList() string {
	names := make([]string, len(supportedEntityKinds))
	for i, k := range supportedEntityKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
