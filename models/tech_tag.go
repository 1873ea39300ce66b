package models

// TechTag is a reusable technology label attached to projects (Django,
// Tailwind, ML, ...). Tags are created through the admin surface only and
// are never inferred from free text.
type TechTag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;unique"`

	Projects []Project `json:"-" gorm:"many2many:project_tech_tags;"`
}

func (TechTag) TableName() string {
	return "tech_tags"
}
