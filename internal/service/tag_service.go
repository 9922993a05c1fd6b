package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
	"github.com/jaym93/gtpower/internal/repository"
)

// TagService serves building tags and the tag/flag mutations.
type TagService struct {
	tags   repository.TagsRepository
	logger *zap.Logger
}

func NewTagService(tags repository.TagsRepository, logger *zap.Logger) *TagService {
	return &TagService{tags: tags, logger: logger}
}

func (s *TagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.tags.ListTags(ctx)
	if err != nil {
		s.logger.Error("failed to list tags", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

func (s *TagService) GetTagByName(ctx context.Context, tagName string) (*domain.Tag, error) {
	if tagName == "" {
		return nil, fmt.Errorf("%w: tag name is required", domain.ErrInvalidArgument)
	}
	return s.tags.GetTagByName(ctx, tagName)
}

// AddTag creates the tag or bumps its count when the same (building, name)
// pair was tagged before. actor is the authenticated user doing the
// tagging.
func (s *TagService) AddTag(ctx context.Context, bID, tagName, actor string) (*domain.Tag, error) {
	bID = strings.TrimSpace(bID)
	tagName = strings.TrimSpace(tagName)
	if bID == "" || tagName == "" {
		return nil, fmt.Errorf("%w: b_id and tag are required", domain.ErrInvalidArgument)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrInvalidArgument)
	}

	tag, err := s.tags.AddOrIncrementTag(ctx, bID, tagName, actor)
	if err != nil {
		s.logger.Error("failed to add tag",
			zap.String("b_id", bID),
			zap.String("tag_name", tagName),
			zap.Error(err))
		return nil, err
	}
	return tag, nil
}

// FlagTag records that actor reported the named tag. Repeat flags by the
// same actor are no-ops.
func (s *TagService) FlagTag(ctx context.Context, tagName, actor string) (*domain.Tag, error) {
	tagName = strings.TrimSpace(tagName)
	if tagName == "" {
		return nil, fmt.Errorf("%w: tag_name is required", domain.ErrInvalidArgument)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrInvalidArgument)
	}

	tag, err := s.tags.FlagTag(ctx, tagName, actor)
	if err != nil {
		return nil, err
	}
	return tag, nil
}
