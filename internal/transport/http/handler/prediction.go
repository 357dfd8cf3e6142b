package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "plantcare-api/internal/app"
	"plantcare-api/internal/model"
	"plantcare-api/internal/transport/http/response"
)

const maxImageSize = 10 << 20 // 10 MB

// PredictionHandler exposes the scan pipeline and the stored results.
type PredictionHandler struct {
	service *appsvc.PredictionService
}

// PredictionResponse is the predict endpoint body; unlike the persisted
// record it carries no id.
type PredictionResponse struct {
	UserID      string  `json:"user_id"`
	PlantType   string  `json:"plant_type"`
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
	ImageURL    string  `json:"image_url"`
	Treatment   *string `json:"treatment"`
	ScannedData string  `json:"scanned_data"`
}

func NewPredictionHandler(service *appsvc.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

func (h *PredictionHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}

// Predict accepts a multipart form with "file", "plant_type" and
// "user_id", runs the scan pipeline and returns the full result. The
// plant type is validated before any upload happens.
func (h *PredictionHandler) Predict(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing image file (form field 'file')")
		return
	}
	plantType := c.PostForm("plant_type")
	userID := c.PostForm("user_id")
	if plantType == "" || userID == "" {
		response.Error(c, http.StatusBadRequest, "plant_type and user_id are required")
		return
	}

	if file.Size > maxImageSize {
		response.Error(c, http.StatusBadRequest, "image too large (max 10MB)")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read image")
		return
	}

	prediction, err := h.service.Predict(c.Request.Context(), appsvc.PredictInput{
		UserID:    userID,
		PlantType: plantType,
		Filename:  file.Filename,
		ImageData: data,
	})
	if err != nil {
		switch {
		case errors.Is(err, appsvc.ErrInvalidPlantType):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Error processing the image: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, toPredictionResponse(prediction))
}

// ListAll returns every stored prediction, id included.
func (h *PredictionHandler) ListAll(c *gin.Context) {
	predictions, err := h.service.ListAll()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching predictions: "+err.Error())
		return
	}
	if predictions == nil {
		predictions = []model.Prediction{}
	}
	c.JSON(http.StatusOK, predictions)
}

// ListByUser returns the user's predictions, 404 when there are none.
func (h *PredictionHandler) ListByUser(c *gin.Context) {
	userID := c.Param("user_id")

	predictions, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, appsvc.ErrNoPredictions):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Error fetching predictions: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, predictions)
}

// DeleteByUser removes the user's predictions, 404 when there were none.
func (h *PredictionHandler) DeleteByUser(c *gin.Context) {
	userID := c.Param("user_id")

	deleted, err := h.service.DeleteByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, appsvc.ErrNoPredictions):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Error deleting predictions: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Deleted %d prediction(s) successfully.", deleted),
	})
}

func toPredictionResponse(p *model.Prediction) PredictionResponse {
	return PredictionResponse{
		UserID:      p.UserID,
		PlantType:   p.PlantType,
		Disease:     p.Disease,
		Probability: p.Probability,
		ImageURL:    p.ImageURL,
		Treatment:   p.Treatment,
		ScannedData: p.ScannedData,
	}
}
