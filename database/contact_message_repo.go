package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ContactMessageRepo) GetDB() *gorm.DB {
	return r.db
}

// AddRateLimited counts the sender's accepted messages inside the trailing
// window and inserts the new row only when the count is under max. Count and
// insert run in one serializable transaction so two concurrent submissions
// cannot both observe count=max-1 and both pass. keyColumn must be one of
// the fixed column literals chosen by the caller, never user input.
func (r *ContactMessageRepo) AddRateLimited(msg *models.ContactMessage, keyColumn, keyValue string, since time.Time, max int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var recent int64
		err := tx.Model(&models.ContactMessage{}).
			Where(fmt.Sprintf("%s = ?", keyColumn), keyValue).
			Where("created_at >= ?", since).
			Count(&recent).Error
		if err != nil {
			return err
		}

		if recent >= int64(max) {
			return errs.ErrRateLimited
		}

		return tx.Create(msg).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// CountRecent returns how many messages the sender key has inside the
// trailing window. Read-only twin of the check inside AddRateLimited, for
// reporting the exhausted limit alongside field validation problems.
func (r *ContactMessageRepo) CountRecent(keyColumn, keyValue string, since time.Time) (int64, error) {
	var recent int64
	err := r.db.Model(&models.ContactMessage{}).
		Where(fmt.Sprintf("%s = ?", keyColumn), keyValue).
		Where("created_at >= ?", since).
		Count(&recent).Error
	return recent, err
}

// FindAll returns every message, newest first.
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}

// MarkRead flips the is_read flag on one message.
func (r *ContactMessageRepo) MarkRead(id uint) error {
	return r.setFlag(id, "is_read")
}

// MarkReplied flips the replied flag on one message.
func (r *ContactMessageRepo) MarkReplied(id uint) error {
	return r.setFlag(id, "replied")
}

func (r *ContactMessageRepo) setFlag(id uint, column string) error {
	res := r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update(column, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of stored messages.
func (r *ContactMessageRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.ContactMessage{}).Count(&total).Error
	return total, err
}
