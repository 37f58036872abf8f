package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/middleware"
	"github.com/kertapati/horizon-sub000/src/usecase"
	"github.com/kertapati/horizon-sub000/src/validator"
)

// ItemHandler handles HTTP requests for item operations
type ItemHandler struct {
	itemUsecase usecase.ItemUsecase
	validator   *validator.CustomValidator
	logger      *logrus.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemUsecase usecase.ItemUsecase, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{
		itemUsecase: itemUsecase,
		validator:   validator.NewCustomValidator(),
		logger:      logger,
	}
}

// CreateItem creates a new item
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	var req CreateItemRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind create item request")
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

	item, err := h.itemUsecase.CreateItem(c.Request.Context(), userID, toCreateRequest(req))
	if err != nil {
		h.logger.WithError(err).Error("failed to create item")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to create item",
			Message: err.Error(),
		})
		return
	}

	h.logger.WithField("item_id", item.ID).Info("item created")
	c.JSON(http.StatusCreated, item)
}

// GetItem retrieves an item by ID
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid item ID",
			Message: "Item ID must be a number",
		})
		return
	}

	item, err := h.itemUsecase.GetItem(c.Request.Context(), userID, id)
	if err != nil {
		h.logger.WithError(err).WithField("item_id", id).Error("failed to get item")
		c.JSON(statusForError(err), ErrorResponseDTO{Error: "Failed to get item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems retrieves the user's non-archived items with optional filtering
func (h *ItemHandler) ListItems(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	var filterDTO ItemListFilterDTO
	if err := c.ShouldBindQuery(&filterDTO); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid query parameters",
			Message: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(filterDTO); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	filter := domain.ItemFilter{
		Category: domain.Category(filterDTO.Category),
		Status:   domain.Status(filterDTO.Status),
		Owner:    domain.Owner(filterDTO.Owner),
		Search:   filterDTO.Search,
	}

	items, err := h.itemUsecase.ListItems(c.Request.Context(), userID, filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list items")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to list items",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// ListArchivedItems retrieves the archive view
func (h *ItemHandler) ListArchivedItems(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	items, err := h.itemUsecase.ListArchived(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list archived items")
		c.JSON(statusForError(err), ErrorResponseDTO{Error: "Failed to list archived items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// UpdateItem applies a partial update to an existing item
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid item ID",
			Message: "Item ID must be a number",
		})
		return
	}

	var req UpdateItemRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind update item request")
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

	item, err := h.itemUsecase.UpdateItem(c.Request.Context(), userID, id, toUpdateRequest(req))
	if err != nil {
		h.logger.WithError(err).WithField("item_id", id).Error("failed to update item")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to update item",
			Message: err.Error(),
		})
		return
	}

	h.logger.WithField("item_id", id).Info("item updated")
	c.JSON(http.StatusOK, item)
}

// SetStatus is the inline status quick toggle
func (h *ItemHandler) SetStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid item ID",
			Message: "Item ID must be a number",
		})
		return
	}

	var req SetStatusRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	item, err := h.itemUsecase.SetStatus(c.Request.Context(), userID, id, domain.Status(req.Status))
	if err != nil {
		h.logger.WithError(err).WithField("item_id", id).Error("failed to set status")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to set status",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// SetPriority is the favorite quick toggle
func (h *ItemHandler) SetPriority(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid item ID",
			Message: "Item ID must be a number",
		})
		return
	}

	var req SetPriorityRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	item, err := h.itemUsecase.SetPriority(c.Request.Context(), userID, id, *req.IsPriority)
	if err != nil {
		h.logger.WithError(err).WithField("item_id", id).Error("failed to set priority")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to set priority",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// BulkSetStatus changes the status of several items at once
func (h *ItemHandler) BulkSetStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	var req BulkStatusRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	err := h.itemUsecase.BulkSetStatus(c.Request.Context(), userID, req.IDs, domain.Status(req.Status))
	if err != nil {
		h.logger.WithError(err).Error("failed to bulk set status")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to bulk set status",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// ArchiveItem archives (soft deletes) an item
func (h *ItemHandler) ArchiveItem(c *gin.Context) {
	h.lifecycleAction(c, "archive", h.itemUsecase.ArchiveItem)
}

// RestoreItem restores an archived item
func (h *ItemHandler) RestoreItem(c *gin.Context) {
	h.lifecycleAction(c, "restore", h.itemUsecase.RestoreItem)
}

// DeleteItem permanently deletes an archived item
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	h.lifecycleAction(c, "delete", h.itemUsecase.DeleteItem)
}

func (h *ItemHandler) lifecycleAction(c *gin.Context, op string, action func(ctx context.Context, userID, id int) error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponseDTO{Error: "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid item ID",
			Message: "Item ID must be a number",
		})
		return
	}

	if err := action(c.Request.Context(), userID, id); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"item_id":   id,
			"operation": op,
		}).Error("item lifecycle operation failed")
		c.JSON(statusForError(err), ErrorResponseDTO{
			Error:   "Failed to " + op + " item",
			Message: err.Error(),
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"item_id":   id,
		"operation": op,
	}).Info("item lifecycle operation completed")
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// statusForError maps usecase errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrItemNotArchived):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrEmptyCategories),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidOwner),
		errors.Is(err, usecase.ErrInvalidLocation),
		errors.Is(err, usecase.ErrInvalidRegion),
		errors.Is(err, usecase.ErrInvalidSeason),
		errors.Is(err, usecase.ErrInvalidTimeframe),
		errors.Is(err, usecase.ErrInvalidAction),
		errors.Is(err, usecase.ErrInvalidFoodType),
		errors.Is(err, usecase.ErrInvalidPriceLevel),
		errors.Is(err, usecase.ErrInvalidDifficulty),
		errors.Is(err, usecase.ErrUnsupportedYear),
		errors.Is(err, usecase.ErrEmptyBulkSelection),
		errors.Is(err, usecase.ErrInvalidViewMode),
		errors.Is(err, usecase.ErrInvalidNoteYear),
		errors.Is(err, usecase.ErrNoteTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
