package repository

import (
	"context"

	"github.com/jaym93/gtpower/internal/domain"
)

// TagsRepository manages building tags. The two mutating operations are the
// only read-modify-write races in the service; both are pushed down into
// single guarded statements so concurrent identical requests cannot diverge.
type TagsRepository interface {
	ListTags(ctx context.Context) ([]*domain.Tag, error)

	// GetTagByName returns a tag by name, or an error wrapping
	// domain.ErrNotFound.
	GetTagByName(ctx context.Context, tagName string) (*domain.Tag, error)

	// ListTagsForBuilding returns the tags attached to one building.
	ListTagsForBuilding(ctx context.Context, bID string) ([]*domain.Tag, error)

	// AddOrIncrementTag creates the (bID, tagName) tag with tag_count 1, or
	// bumps tag_count when it already exists. Atomic via a unique constraint
	// and INSERT ... ON CONFLICT DO UPDATE: two concurrent identical calls
	// yield one row with tag_count 2, never two rows.
	AddOrIncrementTag(ctx context.Context, bID, tagName, actor string) (*domain.Tag, error)

	// FlagTag records that actor reported the tag. Idempotent per actor: a
	// repeat flag by the same actor leaves the tag unchanged and returns it.
	// A missing tag yields an error wrapping domain.ErrNotFound.
	FlagTag(ctx context.Context, tagName, actor string) (*domain.Tag, error)
}
