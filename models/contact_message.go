package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is one accepted contact-form submission. Rows are only
// created through the validated intake path; IsRead and Replied are only
// flipped by the admin surface.
type ContactMessage struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey"`
	Reference  uuid.UUID `json:"reference" db:"reference" gorm:"type:uuid;not null;uniqueIndex"`
	Name       string    `json:"name" db:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" db:"email" gorm:"type:text;not null;index"`
	Subject    *string   `json:"subject,omitempty" db:"subject" gorm:"size:150"`
	Message    string    `json:"message" db:"message" gorm:"type:text;not null"`
	SenderAddr string    `json:"-" db:"sender_addr" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"index"`
	IsRead     bool      `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	Replied    bool      `json:"replied" db:"replied" gorm:"not null;default:false"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.Reference == uuid.Nil {
		m.Reference = uuid.New()
	}
	return nil
}
