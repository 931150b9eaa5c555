package mapping

import (
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
)

// ToDomainReadMark converts a model ReadMark to a domain ReadMark
func ToDomainReadMark(m models.ReadMark) domain.ReadMark {
	return domain.ReadMark{
		UserID:    m.UserID,
		Kind:      domain.EntityKind(m.Kind),
		EntityID:  m.EntityID,
		CommentID: m.CommentID,
		ReadAt:    m.ReadAt,
	}
}
