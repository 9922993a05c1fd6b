package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
	"github.com/jaym93/gtpower/internal/repository"
)

// BuildingService serves building metadata and the category catalog.
type BuildingService struct {
	buildings  repository.BuildingsRepository
	categories repository.CategoriesRepository
	tags       repository.TagsRepository
	logger     *zap.Logger
}

func NewBuildingService(buildings repository.BuildingsRepository, categories repository.CategoriesRepository, tags repository.TagsRepository, logger *zap.Logger) *BuildingService {
	return &BuildingService{
		buildings:  buildings,
		categories: categories,
		tags:       tags,
		logger:     logger,
	}
}

// BuildingDetail is a building with its category and tag associations.
type BuildingDetail struct {
	domain.Building
	Categories []string      `json:"categories"`
	Tags       []*domain.Tag `json:"tags"`
}

func (s *BuildingService) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	buildings, err := s.buildings.ListBuildings(ctx)
	if err != nil {
		s.logger.Error("failed to list buildings", zap.Error(err))
		return nil, err
	}
	return buildings, nil
}

// GetBuilding returns one building with its categories and tags attached.
func (s *BuildingService) GetBuilding(ctx context.Context, bID string) (*BuildingDetail, error) {
	if bID == "" {
		return nil, fmt.Errorf("%w: building id is required", domain.ErrInvalidArgument)
	}

	building, err := s.buildings.GetBuilding(ctx, bID)
	if err != nil {
		return nil, err
	}

	categories, err := s.buildings.CategoriesForBuilding(ctx, bID)
	if err != nil {
		s.logger.Error("failed to load building categories", zap.String("b_id", bID), zap.Error(err))
		return nil, err
	}

	tags, err := s.tags.ListTagsForBuilding(ctx, bID)
	if err != nil {
		s.logger.Error("failed to load building tags", zap.String("b_id", bID), zap.Error(err))
		return nil, err
	}

	return &BuildingDetail{Building: *building, Categories: categories, Tags: tags}, nil
}

// SearchBuildings matches buildings by partial name. No match is an empty
// array, not an error.
func (s *BuildingService) SearchBuildings(ctx context.Context, name string) ([]*domain.Building, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: building name is required", domain.ErrInvalidArgument)
	}
	buildings, err := s.buildings.SearchBuildings(ctx, name)
	if err != nil {
		s.logger.Error("failed to search buildings", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return buildings, nil
}

func (s *BuildingService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// AddCategory inserts a category and returns the refreshed catalog.
func (s *BuildingService) AddCategory(ctx context.Context, name string) ([]*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidArgument)
	}
	if err := s.categories.AddCategory(ctx, name); err != nil {
		s.logger.Error("failed to add category", zap.String("category", name), zap.Error(err))
		return nil, err
	}
	return s.ListCategories(ctx)
}
