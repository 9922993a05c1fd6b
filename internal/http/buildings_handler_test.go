package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
	"github.com/jaym93/gtpower/internal/service"
)

type stubBuildingsRepo struct {
	buildings  []*domain.Building
	categories []string
}

func (s *stubBuildingsRepo) ListBuildings(context.Context) ([]*domain.Building, error) {
	return s.buildings, nil
}

func (s *stubBuildingsRepo) GetBuilding(context.Context, string) (*domain.Building, error) {
	if len(s.buildings) == 0 {
		return nil, fmt.Errorf("building: %w", domain.ErrNotFound)
	}
	return s.buildings[0], nil
}

func (s *stubBuildingsRepo) SearchBuildings(context.Context, string) ([]*domain.Building, error) {
	return s.buildings, nil
}

func (s *stubBuildingsRepo) CategoriesForBuilding(context.Context, string) ([]string, error) {
	return s.categories, nil
}

type stubCategoriesRepo struct {
	categories []*domain.Category
	added      []string
}

func (s *stubCategoriesRepo) ListCategories(context.Context) ([]*domain.Category, error) {
	return s.categories, nil
}

func (s *stubCategoriesRepo) AddCategory(_ context.Context, name string) error {
	s.added = append(s.added, name)
	return nil
}

func newBuildingsRouter(buildings *stubBuildingsRepo, categories *stubCategoriesRepo, sessions *fakeSessions) http.Handler {
	logger := zap.NewNop()
	svc := service.NewBuildingService(buildings, categories, &stubTagsRepo{tags: []*domain.Tag{}}, logger)
	return NewRouter(RouterDeps{
		Facilities: NewFacilitiesHandler(nil, logger),
		Buildings:  NewBuildingsHandler(svc, logger),
		Tags:       NewTagsHandler(nil, logger),
		Auth:       NewAuthHandler(nil, sessions, time.Hour, logger),
		Health:     NewHealthHandler(nil, logger),
		Sessions:   sessions,
		Logger:     logger,
	})
}

func TestGetBuilding_ComposesCategoriesAndTags(t *testing.T) {
	buildings := &stubBuildingsRepo{
		buildings: []*domain.Building{{
			BID:  "050",
			Name: "Klaus Advanced Computing",
		}},
		categories: []string{"Academic"},
	}
	router := newBuildingsRouter(buildings, &stubCategoriesRepo{}, &fakeSessions{tokens: map[string]string{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/buildings_id/050", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var detail service.BuildingDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "050", detail.BID)
	assert.Equal(t, []string{"Academic"}, detail.Categories)
	assert.Empty(t, detail.Tags)
}

func TestGetBuilding_NotFoundEnvelope(t *testing.T) {
	router := newBuildingsRouter(&stubBuildingsRepo{}, &stubCategoriesRepo{}, &fakeSessions{tokens: map[string]string{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/buildings_id/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Resource not found", body.Message)
}

func TestAddCategory_RequiresSession(t *testing.T) {
	router := newBuildingsRouter(&stubBuildingsRepo{}, &stubCategoriesRepo{}, &fakeSessions{tokens: map[string]string{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/categories", "category=Research", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddCategory_ReturnsRefreshedCatalog(t *testing.T) {
	categories := &stubCategoriesRepo{categories: []*domain.Category{
		{CatID: 1, Name: "Academic"},
		{CatID: 2, Name: "Research"},
	}}
	sessions := &fakeSessions{tokens: map[string]string{"tok-1": "gburdell3"}}
	router := newBuildingsRouter(&stubBuildingsRepo{}, categories, sessions)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/categories", "category=Research", "tok-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Research"}, categories.added)

	var got []*domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
