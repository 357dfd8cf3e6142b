package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"plantcare-api/internal/model"
	"plantcare-api/internal/repository"
)

var (
	ErrInvalidPlantType = errors.New("Invalid plant type")
	ErrNoPredictions    = errors.New("No prediction data found for this user ID.")
)

// BlobUploader stores raw image bytes durably and returns a public URL.
type BlobUploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// Classifier maps an image to a disease label and its raw probability
// for a given plant type.
type Classifier interface {
	Supports(plantType string) bool
	Classify(plantType string, imageData []byte) (string, float64, error)
}

// Advisor produces treatment text. It never fails; degraded output is a
// fallback string.
type Advisor interface {
	Advise(ctx context.Context, disease, plant string) string
}

// EventPublisher emits scan events for the audit worker.
type EventPublisher interface {
	Publish(ctx context.Context, event model.ScanEvent) error
}

// ScanCache caches per-user prediction lists.
type ScanCache interface {
	GetUserScans(ctx context.Context, userID string) ([]model.Prediction, bool, error)
	SetUserScans(ctx context.Context, userID string, predictions []model.Prediction) error
	Invalidate(ctx context.Context, userID string) error
}

// PredictionService runs the scan pipeline: validate, upload, classify,
// persist, advise, persist again. Collaborators are injected so the
// service owns only the control flow between them.
type PredictionService struct {
	repo       *repository.PredictionRepository
	uploader   BlobUploader
	classifier Classifier
	advisor    Advisor
	publisher  EventPublisher
	cache      ScanCache
}

type PredictInput struct {
	UserID    string
	PlantType string
	Filename  string
	ImageData []byte
}

func NewPredictionService(
	repo *repository.PredictionRepository,
	uploader BlobUploader,
	classifier Classifier,
	advisor Advisor,
	publisher EventPublisher,
	cache ScanCache,
) *PredictionService {
	return &PredictionService{
		repo:       repo,
		uploader:   uploader,
		classifier: classifier,
		advisor:    advisor,
		publisher:  publisher,
		cache:      cache,
	}
}

// Predict runs the full pipeline for one uploaded image. The plant type
// is checked before any side effect; every later stage failure leaves
// already-completed side effects (uploaded blob, created record) in
// place. An advisory failure is not a pipeline failure: the fallback
// string is persisted and the call still succeeds.
func (s *PredictionService) Predict(ctx context.Context, input PredictInput) (*model.Prediction, error) {
	if !s.classifier.Supports(input.PlantType) {
		return nil, ErrInvalidPlantType
	}

	imageURL, err := s.uploader.Upload(ctx, input.ImageData, input.Filename)
	if err != nil {
		return nil, fmt.Errorf("upload image failed: %w", err)
	}

	disease, probability, err := s.classifier.Classify(input.PlantType, input.ImageData)
	if err != nil {
		return nil, fmt.Errorf("classify image failed: %w", err)
	}

	prediction := &model.Prediction{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		PlantType:   input.PlantType,
		Disease:     disease,
		Probability: probability,
		ImageURL:    imageURL,
		Treatment:   nil,
		ScannedData: time.Now().Format("2006:01:02"),
	}
	if err := s.repo.Create(prediction); err != nil {
		return nil, err
	}

	treatment := s.advisor.Advise(ctx, disease, input.PlantType)
	if err := s.repo.UpdateTreatment(prediction.ID, treatment); err != nil {
		return nil, err
	}
	prediction.Treatment = &treatment

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, input.UserID); err != nil {
			log.Printf("invalidate scan cache failed: %v", err)
		}
	}
	if s.publisher != nil {
		event := model.ScanEvent{
			PredictionID: prediction.ID,
			UserID:       prediction.UserID,
			PlantType:    prediction.PlantType,
			Disease:      prediction.Disease,
			Probability:  prediction.Probability,
			CreatedAt:    time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("publish scan event failed: %v", err)
		}
	}

	return prediction, nil
}

func (s *PredictionService) ListAll() ([]model.Prediction, error) {
	return s.repo.ListAll()
}

// ListByUser returns the user's predictions, serving from cache when
// possible. An empty result is a not-found condition, not an empty
// success.
func (s *PredictionService) ListByUser(ctx context.Context, userID string) ([]model.Prediction, error) {
	if s.cache != nil {
		if cached, hit, err := s.cache.GetUserScans(ctx, userID); err == nil && hit {
			if len(cached) == 0 {
				return nil, ErrNoPredictions
			}
			return cached, nil
		}
	}

	predictions, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return nil, ErrNoPredictions
	}

	if s.cache != nil {
		if err := s.cache.SetUserScans(ctx, userID, predictions); err != nil {
			log.Printf("set scan cache failed: %v", err)
		}
	}
	return predictions, nil
}

// DeleteByUser removes all of the user's predictions and reports the
// count. Deleting for a user with no records is a not-found condition.
func (s *PredictionService) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.repo.DeleteByUserID(userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrNoPredictions
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			log.Printf("invalidate scan cache failed: %v", err)
		}
	}
	return deleted, nil
}
