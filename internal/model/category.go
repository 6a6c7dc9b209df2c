package model

// Category is a user-defined label for records. Records reference
// categories by name, not by ID, so renames do not rewrite history.
type Category struct {
	ID   string     `json:"_id"`
	Name string     `json:"name"`
	Type RecordType `json:"type"`
}

// Tag is a free-form marker attached to records.
type Tag struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CategorySet is the combined payload returned by the categories-tags
// endpoint.
type CategorySet struct {
	Categories []Category `json:"categories"`
	Tags       []Tag      `json:"tags"`
}
