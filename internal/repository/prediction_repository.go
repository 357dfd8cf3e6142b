package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plantcare-api/internal/model"
)

type PredictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(prediction *model.Prediction) error {
	if err := r.db.Create(prediction).Error; err != nil {
		return fmt.Errorf("create prediction failed: %w", err)
	}
	return nil
}

// UpdateTreatment writes only the treatment column. There is no
// concurrency check; the record is otherwise immutable after create.
func (r *PredictionRepository) UpdateTreatment(id, treatment string) error {
	if err := r.db.Model(&model.Prediction{}).
		Where("id = ?", id).
		Update("treatment", treatment).Error; err != nil {
		return fmt.Errorf("update treatment failed: %w", err)
	}
	return nil
}

func (r *PredictionRepository) GetByID(id string) (*model.Prediction, error) {
	var prediction model.Prediction
	if err := r.db.First(&prediction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query prediction by id failed: %w", err)
	}
	return &prediction, nil
}

func (r *PredictionRepository) ListAll() ([]model.Prediction, error) {
	var predictions []model.Prediction
	if err := r.db.Order("scanned_data DESC").Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("list predictions failed: %w", err)
	}
	return predictions, nil
}

func (r *PredictionRepository) ListByUserID(userID string) ([]model.Prediction, error) {
	var predictions []model.Prediction
	if err := r.db.Where("user_id = ?", userID).Order("scanned_data DESC").Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("list predictions by user failed: %w", err)
	}
	return predictions, nil
}

// DeleteByUserID removes every prediction for the user and reports how
// many rows went away. Zero is a valid return, not an error; the caller
// decides whether that is a not-found condition.
func (r *PredictionRepository) DeleteByUserID(userID string) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&model.Prediction{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete predictions by user failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
