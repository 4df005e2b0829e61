package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	repo := NewStubUserRepo()
	stored, err := repo.UpsertUser(context.Background(), User{
		Sub:         "sub-1",
		Email:       "camper@example.com",
		DisplayName: "Test Camper",
	})
	require.NoError(t, err)
	handler := NewHandler(NewUserService(repo))

	t.Run("returns the authenticated user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/current", nil)
		req = req.WithContext(WithUser(req.Context(), stored))
		rec := httptest.NewRecorder()

		handler.CurrentUser(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto UserDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, stored.Id, dto.Id)
		assert.Equal(t, "Test Camper", dto.DisplayName)
	})

	t.Run("no user in context is a 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/current", nil)
		rec := httptest.NewRecorder()

		handler.CurrentUser(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user missing from storage is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/current", nil)
		req = req.WithContext(WithUser(req.Context(), User{Id: "ghost"}))
		rec := httptest.NewRecorder()

		handler.CurrentUser(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpsertUser_KeyedBySub(t *testing.T) {
	ctx := context.Background()
	repo := NewStubUserRepo()
	service := NewUserService(repo)

	first, err := service.UpsertUser(ctx, User{Sub: "sub-1", DisplayName: "Before"})
	require.NoError(t, err)

	second, err := service.UpsertUser(ctx, User{Sub: "sub-1", DisplayName: "After"})
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "After", second.DisplayName)
}
