package mapping

import (
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
)

// ToDomainFeedItemSlice converts feed rows to domain feed items
func ToDomainFeedItemSlice(ms []models.FeedItem) []domain.FeedItem {
	ds := make([]domain.FeedItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.FeedItem{
			ID:          m.ID,
			Kind:        domain.EntityKind(m.Kind),
			EntityID:    m.EntityID,
			EntityTitle: m.EntityTitle,
			AuthorID:    m.AuthorID,
			AuthorLabel: m.AuthorLabel,
			Body:        m.Body,
			CreatedAt:   m.CreatedAt,
			Edited:      m.Edited,
		}
	}
	return ds
}
