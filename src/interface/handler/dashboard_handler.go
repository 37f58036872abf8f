package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/middleware"
	"github.com/kertapati/horizon-sub000/src/usecase"
	"github.com/kertapati/horizon-sub000/src/validator"
	"github.com/kertapati/horizon-sub000/src/view"
)

// DashboardHandler handles HTTP requests for dashboard aggregations
type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
	logger           *logrus.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		validator:        validator.NewCustomValidator(),
		logger:           logger,
	}
}

// GetStats returns all precomputed dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	stats, err := h.dashboardUsecase.Stats(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to compute dashboard stats")
		c.JSON(statusForError(err), ErrorResponseDTO{Error: "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetView runs the view filter pipeline for the requested mode
func (h *DashboardHandler) GetView(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	var q ViewQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid query parameters",
			Message: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	query := view.Query{
		Search:         q.Search,
		Mode:           view.Mode(q.Mode),
		Category:       domain.Category(q.Category),
		Travel:         view.TravelBucket(q.Travel),
		Year:           q.Year,
		YearUnassigned: q.YearUnassigned,
		Owner:          domain.Owner(q.Owner),
	}

	result, err := h.dashboardUsecase.View(c.Request.Context(), userID, query)
	if err != nil {
		h.logger.WithError(err).WithField("mode", q.Mode).Error("failed to build view")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to build view",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGroups returns the micro-grouped items for a category
func (h *DashboardHandler) GetGroups(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	cat := domain.Category(c.Param("category"))
	if !cat.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid category",
			Message: "Unknown category: " + string(cat),
		})
		return
	}

	result, err := h.dashboardUsecase.Groups(c.Request.Context(), userID, cat)
	if err != nil {
		h.logger.WithError(err).WithField("category", cat).Error("failed to group items")
		c.JSON(statusForError(err), ErrorResponseDTO{Error: "Failed to group items"})
		return
	}

	c.JSON(http.StatusOK, result)
}
