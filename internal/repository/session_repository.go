package repository

import (
	"context"
	"errors"

	"github.com/ecosnap/ecosnap-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNoSession = errors.New("no current session")

// SessionRepository stores the current-session pointer: at most one
// username, used to restore the session after a restart.
type SessionRepository interface {
	Current(ctx context.Context) (string, error)
	Set(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

const sessionRowID = 1

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Current(ctx context.Context) (string, error) {
	var s model.Session
	err := r.db.WithContext(ctx).Where("id = ?", sessionRowID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoSession
		}
		return "", err
	}
	return s.Username, nil
}

func (r *sessionRepository) Set(ctx context.Context, username string) error {
	s := model.Session{ID: sessionRowID, Username: username}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username"}),
	}).Create(&s).Error
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("id = ?", sessionRowID).Delete(&model.Session{}).Error
}
