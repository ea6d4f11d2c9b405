package repository

import (
	"context"
	"errors"

	"github.com/ecosnap/ecosnap-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository reads and writes whole user records. Save replaces the
// record and its trees/counters in one transaction; there is no field-level
// update path.
type UserRepository interface {
	Get(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Trees", func(tx *gorm.DB) *gorm.DB { return tx.Order("tree_id ASC") }).
		Preload("CategoryCounts").
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("username = ?", user.Username).
			Updates(map[string]interface{}{
				"points":    user.Points,
				"tree_bank": user.TreeBank,
			}).Error; err != nil {
			return err
		}
		for i := range user.Trees {
			user.Trees[i].Username = user.Username
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "username"}, {Name: "tree_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"x", "z", "palette_id", "display_stage",
				}),
			}).Create(&user.Trees[i]).Error; err != nil {
				return err
			}
		}
		for i := range user.CategoryCounts {
			user.CategoryCounts[i].Username = user.Username
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "username"}, {Name: "category"}},
				DoUpdates: clause.AssignmentColumns([]string{"count"}),
			}).Create(&user.CategoryCounts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
