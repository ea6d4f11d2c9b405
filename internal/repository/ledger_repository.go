package repository

import (
	"context"

	"github.com/ecosnap/ecosnap-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository is the per-user set of rewarded-image fingerprints.
// Add is idempotent; once the set exceeds its capacity the oldest inserted
// entries are evicted first (insertion order, not access order).
type LedgerRepository interface {
	Has(ctx context.Context, username, fingerprint string) (bool, error)
	Add(ctx context.Context, username, fingerprint string) error
}

type ledgerRepository struct {
	db  *gorm.DB
	cap int
}

func NewLedgerRepository(db *gorm.DB, capacity int) LedgerRepository {
	if capacity <= 0 {
		capacity = 500
	}
	return &ledgerRepository{db: db, cap: capacity}
}

func (r *ledgerRepository) Has(ctx context.Context, username, fingerprint string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UploadHash{}).
		Where("username = ? AND fingerprint = ?", username, fingerprint).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ledgerRepository) Add(ctx context.Context, username, fingerprint string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.UploadHash{Username: username, Fingerprint: fingerprint}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.UploadHash{}).
			Where("username = ?", username).Count(&n).Error; err != nil {
			return err
		}
		if int(n) <= r.cap {
			return nil
		}

		// Trim the oldest rows beyond the cap.
		var stale []uint64
		if err := tx.Model(&model.UploadHash{}).
			Where("username = ?", username).
			Order("id ASC").
			Limit(int(n) - r.cap).
			Pluck("id", &stale).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", stale).Delete(&model.UploadHash{}).Error
	})
}
