package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartSession is the database row backing one session's cart when the
// GormStore is in use.
type CartSession struct {
	SessionID string `gorm:"primaryKey;size:64"`
	Data      []byte
	UpdatedAt time.Time
}

// GormStore persists carts in the main database, one JSON row per session.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, sessionID string) (map[string]Entry, error) {
	var row CartSession
	err := s.db.WithContext(ctx).First(&row, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries map[string]Entry
	if err := json.Unmarshal(row.Data, &entries); err != nil {
		logger.Warn().Err(err).Str("session_id", sessionID).Msg("discarding unreadable cart payload")
		return nil, nil
	}
	return entries, nil
}

func (s *GormStore) Set(ctx context.Context, sessionID string, entries map[string]Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	row := CartSession{SessionID: sessionID, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Delete(&CartSession{}, "session_id = ?", sessionID).Error
}
