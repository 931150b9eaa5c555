package pgsql

import (
	"fmt"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// kindTables describes where one entity kind keeps its rows and comments.
type kindTables struct {
	entityTable   string // owned by the inventory collaborator
	titleColumn   string
	commentTable  string
	foreignColumn string // commentTable column referencing entityTable.id
}

// kindRegistry maps every supported kind to its tables. Identifiers here are
// the only ones ever interpolated into SQL text.
var kindRegistry = map[domain.EntityKind]kindTables{
	domain.KindPoints: {
		entityTable:   "assets",
		titleColumn:   "name",
		commentTable:  "point_comments",
		foreignColumn: "point_id",
	},
}

func tablesFor(kind domain.EntityKind) (kindTables, error) {
	t, ok := kindRegistry[kind]
	if !ok {
		return kindTables{}, fmt.Errorf("%w: unsupported kind %q", apperrors.ErrValidation, kind)
	}
	return t, nil
}

// commentColumns lists the columns read back for a comment, with the foreign
// key aliased to entity_id.
func (t kindTables) commentColumns() []string {
	return []string{
		"id",
		t.foreignColumn + " AS entity_id",
		"user_id",
		"user_email",
		"body",
		"created_at",
		"edited",
		"updated_at",
	}
}
