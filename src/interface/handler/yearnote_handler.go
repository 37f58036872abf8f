package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/middleware"
	"github.com/kertapati/horizon-sub000/src/usecase"
	"github.com/kertapati/horizon-sub000/src/validator"
)

// YearNoteHandler handles HTTP requests for per-year planning notes
type YearNoteHandler struct {
	noteUsecase usecase.YearNoteUsecase
	validator   *validator.CustomValidator
	logger      *logrus.Logger
}

// NewYearNoteHandler creates a new year note handler
func NewYearNoteHandler(noteUsecase usecase.YearNoteUsecase, logger *logrus.Logger) *YearNoteHandler {
	return &YearNoteHandler{
		noteUsecase: noteUsecase,
		validator:   validator.NewCustomValidator(),
		logger:      logger,
	}
}

// GetNote returns the planning note for a year, empty if none is saved
func (h *YearNoteHandler) GetNote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid year",
			Message: "Year must be a number",
		})
		return
	}

	note, err := h.noteUsecase.GetNote(c.Request.Context(), userID, year)
	if err != nil {
		h.logger.WithError(err).WithField("year", year).Error("failed to get year note")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to get year note",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, note)
}

// SaveNote creates or replaces the planning note for a year
func (h *YearNoteHandler) SaveNote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid year",
			Message: "Year must be a number",
		})
		return
	}

	var req SaveYearNoteRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	note, err := h.noteUsecase.SaveNote(c.Request.Context(), userID, year, req.Body)
	if err != nil {
		h.logger.WithError(err).WithField("year", year).Error("failed to save year note")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to save year note",
			Message: err.Error(),
		})
		return
	}

	h.logger.WithField("year", year).Info("year note saved")
	c.JSON(http.StatusOK, note)
}
