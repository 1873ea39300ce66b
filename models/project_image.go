package models

// ProjectImage is an extra screenshot belonging to one project. Images are
// returned in insertion order (ascending id).
type ProjectImage struct {
	ID        uint    `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID uint    `json:"project_id" db:"project_id" gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Image     string  `json:"image" db:"image" gorm:"type:text;not null"`
	Caption   *string `json:"caption,omitempty" db:"caption" gorm:"size:150"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}
