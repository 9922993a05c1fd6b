package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jaym93/gtpower/internal/domain"
)

// PostgresTagsRepository manages the tags table.
type PostgresTagsRepository struct {
	db *sql.DB
}

func NewPostgresTagsRepository(db *sql.DB) *PostgresTagsRepository {
	return &PostgresTagsRepository{db: db}
}

var _ TagsRepository = (*PostgresTagsRepository)(nil)

const tagColumns = `tag_id, b_id, tag_name, creator, tag_count, flagged_by, flag_count`

func (r *PostgresTagsRepository) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags ORDER BY tag_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func (r *PostgresTagsRepository) GetTagByName(ctx context.Context, tagName string) (*domain.Tag, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE tag_name = $1`, tagName)

	tag, err := scanTag(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %q: %w", tagName, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

func (r *PostgresTagsRepository) ListTagsForBuilding(ctx context.Context, bID string) ([]*domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE b_id = $1 ORDER BY tag_name`, bID)
	if err != nil {
		return nil, fmt.Errorf("failed to list building tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// AddOrIncrementTag leans on the (b_id, tag_name) unique constraint so the
// insert-or-bump is one atomic statement.
func (r *PostgresTagsRepository) AddOrIncrementTag(ctx context.Context, bID, tagName, actor string) (*domain.Tag, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO tags (b_id, tag_name, creator, tag_count, flagged_by, flag_count)
		VALUES ($1, $2, $3, 1, '[]'::jsonb, 0)
		ON CONFLICT (b_id, tag_name)
		DO UPDATE SET tag_count = tags.tag_count + 1
		RETURNING `+tagColumns,
		bID, tagName, actor)

	tag, err := scanTag(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}
	return tag, nil
}

// FlagTag is a single guarded UPDATE: the jsonb containment check keeps a
// repeat flag by the same actor from matching, so the statement is
// idempotent per actor with no read-check-write window.
func (r *PostgresTagsRepository) FlagTag(ctx context.Context, tagName, actor string) (*domain.Tag, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tags
		SET flag_count = flag_count + 1,
		    flagged_by = flagged_by || jsonb_build_array($2::text)
		WHERE tag_name = $1
		  AND NOT (flagged_by ? $2)`,
		tagName, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to flag tag: %w", err)
	}

	// Zero rows updated means either "already flagged by this actor" (return
	// the unchanged tag) or "no such tag" (GetTagByName reports not found).
	return r.GetTagByName(ctx, tagName)
}

func scanTag(row *sql.Row) (*domain.Tag, error) {
	var tag domain.Tag
	var flaggedBy []byte
	if err := row.Scan(
		&tag.TagID, &tag.BID, &tag.TagName, &tag.Creator,
		&tag.TagCount, &flaggedBy, &tag.FlagCount,
	); err != nil {
		return nil, err
	}
	if err := unmarshalFlaggedBy(flaggedBy, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func scanTags(rows *sql.Rows) ([]*domain.Tag, error) {
	tags := []*domain.Tag{}
	for rows.Next() {
		var tag domain.Tag
		var flaggedBy []byte
		if err := rows.Scan(
			&tag.TagID, &tag.BID, &tag.TagName, &tag.Creator,
			&tag.TagCount, &flaggedBy, &tag.FlagCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		if err := unmarshalFlaggedBy(flaggedBy, &tag); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

func unmarshalFlaggedBy(data []byte, tag *domain.Tag) error {
	tag.FlaggedBy = []string{}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &tag.FlaggedBy); err != nil {
		return fmt.Errorf("failed to decode flagged_by: %w", err)
	}
	return nil
}
