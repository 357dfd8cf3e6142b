package model

// Prediction is one persisted scan result. IDs are server-generated UUIDs
// so the record can be created before the treatment advisory completes and
// updated in place afterwards.
//
// Treatment stays nil until the advisory step writes it; a reader between
// the two writes legitimately observes a nil treatment.
type Prediction struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	UserID      string  `gorm:"size:128;not null;index" json:"user_id"`
	PlantType   string  `gorm:"size:32;not null" json:"plant_type"`
	Disease     string  `gorm:"size:64;not null" json:"disease"`
	Probability float64 `gorm:"not null" json:"probability"`
	ImageURL    string  `gorm:"size:512;not null" json:"image_url"`
	Treatment   *string `gorm:"type:text" json:"treatment"`
	// ScannedData is the creation day in YYYY:MM:DD form, not a timestamp.
	ScannedData string `gorm:"size:10;not null" json:"scanned_data"`
}

func (Prediction) TableName() string {
	return "predictions"
}
