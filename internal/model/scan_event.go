package model

import "time"

// ScanEvent is an audit row written asynchronously for every completed
// prediction. It is consumed from the scan event queue by the persist
// worker and never read on the request path.
type ScanEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PredictionID string    `gorm:"size:36;not null;index" json:"prediction_id"`
	UserID       string    `gorm:"size:128;not null;index" json:"user_id"`
	PlantType    string    `gorm:"size:32;not null" json:"plant_type"`
	Disease      string    `gorm:"size:64;not null" json:"disease"`
	Probability  float64   `gorm:"not null" json:"probability"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ScanEvent) TableName() string {
	return "scan_events"
}
