package repository

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"plantcare-api/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Prediction{}, &model.ScanEvent{}))
	return db
}

func newPrediction(userID string) *model.Prediction {
	return &model.Prediction{
		ID:          uuid.New().String(),
		UserID:      userID,
		PlantType:   "mango",
		Disease:     "Anthracnose",
		Probability: 0.93,
		ImageURL:    "https://storage.googleapis.com/plantcare-api-bucket/abc_leaf.jpg",
		ScannedData: "2026:08:31",
	}
}

func TestCreateAndGetByID(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))

	created := newPrediction("user-1")
	require.NoError(t, repo.Create(created))

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.UserID, got.UserID)
	require.Equal(t, created.PlantType, got.PlantType)
	require.Equal(t, created.Disease, got.Disease)
	require.Equal(t, created.Probability, got.Probability)
	require.Equal(t, created.ImageURL, got.ImageURL)
	require.Equal(t, created.ScannedData, got.ScannedData)
	require.Nil(t, got.Treatment)
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))

	got, err := repo.GetByID(uuid.New().String())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUpdateTreatment(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))

	created := newPrediction("user-1")
	require.NoError(t, repo.Create(created))
	require.NoError(t, repo.UpdateTreatment(created.ID, "Pangkas bagian yang terinfeksi."))

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Treatment)
	require.Equal(t, "Pangkas bagian yang terinfeksi.", *got.Treatment)
	// Only the treatment column changes.
	require.Equal(t, created.Disease, got.Disease)
	require.Equal(t, created.Probability, got.Probability)
}

func TestListByUserID(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))

	require.NoError(t, repo.Create(newPrediction("user-1")))
	require.NoError(t, repo.Create(newPrediction("user-1")))
	require.NoError(t, repo.Create(newPrediction("user-2")))

	mine, err := repo.ListByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	none, err := repo.ListByUserID("ghost")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListAllIncludesEveryUser(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))

	require.NoError(t, repo.Create(newPrediction("user-1")))
	require.NoError(t, repo.Create(newPrediction("user-2")))

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		require.NotEmpty(t, p.ID)
	}
}

func TestDeleteByUserID(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))

	require.NoError(t, repo.Create(newPrediction("user-1")))
	require.NoError(t, repo.Create(newPrediction("user-1")))
	require.NoError(t, repo.Create(newPrediction("user-2")))

	deleted, err := repo.DeleteByUserID("user-1")
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	remaining, err := repo.ListByUserID("user-1")
	require.NoError(t, err)
	require.Empty(t, remaining)

	other, err := repo.ListByUserID("user-2")
	require.NoError(t, err)
	require.Len(t, other, 1)

	deleted, err = repo.DeleteByUserID("user-1")
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestScanEventRepository(t *testing.T) {
	repo := NewScanEventRepository(newTestDB(t))

	require.NoError(t, repo.Create(&model.ScanEvent{
		PredictionID: uuid.New().String(),
		UserID:       "user-1",
		PlantType:    "tomato",
		Disease:      "Early_blight",
		Probability:  0.81,
	}))

	events, err := repo.ListByUserID("user-1", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Early_blight", events[0].Disease)
}
