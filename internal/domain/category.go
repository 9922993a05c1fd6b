package domain

// Category is a label buildings can be associated with (many-to-many).
type Category struct {
	CatID int64  `json:"cat_id"`
	Name  string `json:"category"`
}
