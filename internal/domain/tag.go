package domain

// Tag is a free-text searchable alias attached to a building.
//
// TagCount grows by one every time somebody re-tags the same
// (building, name) pair. FlaggedBy holds the users who reported the tag;
// a user appears at most once, so flagging is idempotent per actor.
type Tag struct {
	TagID     int64    `json:"tag_id"`
	BID       string   `json:"b_id"`
	TagName   string   `json:"tag_name"`
	Creator   string   `json:"creator"`
	TagCount  int      `json:"tag_count"`
	FlaggedBy []string `json:"flagged_by"`
	FlagCount int      `json:"flag_count"`
}
