package mapping

import (
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
)

// ToDomainComment converts a model Comment to a domain Comment
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		ID:          m.ID,
		Kind:        domain.EntityKind(m.Kind),
		EntityID:    m.EntityID,
		AuthorID:    m.UserID,
		AuthorLabel: m.UserEmail,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
		Edited:      m.Edited,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainCommentSlice converts a slice of model Comments to a slice of domain Comments
func ToDomainCommentSlice(ms []models.Comment) []domain.Comment {
	ds := make([]domain.Comment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainComment(m)
	}
	return ds
}
