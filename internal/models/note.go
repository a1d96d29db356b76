package models

type Note struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Content         string   `json:"content,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ReadPermission  string   `json:"readPermission,omitempty"`
	WritePermission string   `json:"writePermission,omitempty"`
	PublishLink     string   `json:"publishLink,omitempty"`
	CreatedAt       int64    `json:"createdAt,omitempty"`     // unix millis
	LastChangedAt   int64    `json:"lastChangedAt,omitempty"` // unix millis
}

type NewNote struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	ReadPermission  string `json:"readPermission"`
	WritePermission string `json:"writePermission"`
}
