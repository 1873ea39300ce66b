package models

import "time"

// Project represents one portfolio entry with its tech stack and gallery
type Project struct {
	ID               uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title            string    `json:"title" db:"title" gorm:"type:text;not null"`
	ShortDescription string    `json:"short_description" db:"short_description" gorm:"size:300;not null"`
	Description      string    `json:"description" db:"description" gorm:"type:text;not null"`
	Thumbnail        string    `json:"thumbnail" db:"thumbnail" gorm:"type:text;not null"`
	GithubLink       *string   `json:"github_link,omitempty" db:"github_link" gorm:"type:text"`
	LiveDemoLink     *string   `json:"live_demo_link,omitempty" db:"live_demo_link" gorm:"type:text"`
	IsFeatured       bool      `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at" db:"created_at" gorm:"index"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`

	Tags   []TechTag      `json:"tags,omitempty" gorm:"many2many:project_tech_tags;"`
	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}
