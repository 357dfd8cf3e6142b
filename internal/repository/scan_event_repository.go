package repository

import (
	"fmt"

	"gorm.io/gorm"

	"plantcare-api/internal/model"
)

type ScanEventRepository struct {
	db *gorm.DB
}

func NewScanEventRepository(db *gorm.DB) *ScanEventRepository {
	return &ScanEventRepository{db: db}
}

func (r *ScanEventRepository) Create(event *model.ScanEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create scan event failed: %w", err)
	}
	return nil
}

func (r *ScanEventRepository) ListByUserID(userID string, limit int) ([]model.ScanEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var events []model.ScanEvent
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list scan events failed: %w", err)
	}
	return events, nil
}
