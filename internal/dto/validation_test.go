package dto_test

import (
	"strings"
	"testing"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentBodyRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
		wantErr  string
	}{
		{name: "trimmed", body: "  ping \n", wantBody: "ping"},
		{name: "empty", body: "", wantErr: "body is required"},
		{name: "whitespace only", body: " \t\n ", wantErr: "body is required"},
		{name: "exactly 5000", body: strings.Repeat("a", 5000), wantBody: strings.Repeat("a", 5000)},
		{name: "5001", body: strings.Repeat("a", 5001), wantErr: "body must be at most 5000 characters"},
		{name: "5000 multibyte characters", body: strings.Repeat("ż", 5000), wantBody: strings.Repeat("ż", 5000)},
		{name: "padding does not count", body: "  " + strings.Repeat("a", 5000) + "  ", wantBody: strings.Repeat("a", 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.CommentBodyRequest{Body: tt.body}.Normalize()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestValidate_MarkReadRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.MarkReadRequest
		wantErr string
	}{
		{name: "valid", req: dto.MarkReadRequest{Kind: "points", EntityID: 42, CommentID: 7}},
		{name: "unknown kind", req: dto.MarkReadRequest{Kind: "tunnels", EntityID: 42, CommentID: 7}, wantErr: "kind must be one of: points"},
		{name: "missing kind", req: dto.MarkReadRequest{EntityID: 42, CommentID: 7}, wantErr: "kind is required"},
		{name: "zero entity", req: dto.MarkReadRequest{Kind: "points", CommentID: 7}, wantErr: "entity_id must be a positive integer"},
		{name: "negative comment", req: dto.MarkReadRequest{Kind: "points", EntityID: 42, CommentID: -1}, wantErr: "comment_id must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEffectiveLimits(t *testing.T) {
	limit := func(i int) *int { return &i }

	assert.Equal(t, 30, dto.RecentUpdatesParams{}.EffectiveLimit())
	assert.Equal(t, 100, dto.RecentUpdatesParams{Limit: limit(250)}.EffectiveLimit())
	assert.Equal(t, 1, dto.RecentUpdatesParams{Limit: limit(0)}.EffectiveLimit())

	assert.Equal(t, 300, dto.MarkAllReadParams{}.EffectiveLimit())
	assert.Equal(t, 500, dto.MarkAllReadParams{Limit: limit(900)}.EffectiveLimit())
	assert.Equal(t, 12, dto.MarkAllReadParams{Limit: limit(12)}.EffectiveLimit())
}
