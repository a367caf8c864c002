package models

import (
	"time"
)

// Template is the persisted row for an authored message template. The full
// canonical document (header, body, interactive content, placeholders mirror)
// is stored as JSON in Document; the scalar columns exist for listing and
// filtering without parsing the blob.
type Template struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	Status    string    `gorm:"type:varchar(50)" json:"status"`
	Language  string    `gorm:"type:varchar(10)" json:"language"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	Tags      string    `gorm:"type:text" json:"tags"` // JSON array of tag names
	Document  string    `gorm:"type:text" json:"document"`
	IsDeleted bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}

// Media represents an uploaded header attachment
type Media struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Filename   string    `gorm:"type:varchar(255)" json:"filename"`
	StoredName string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"stored_name"`
	MimeType   string    `gorm:"type:varchar(100)" json:"mime_type"`
	FileSize   int64     `json:"file_size"`
	URL        string    `gorm:"type:text" json:"url"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Media) TableName() string {
	return "media"
}
