package handlers

import (
	"net/http"

	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/service"

	"github.com/gin-gonic/gin"
)

// OutingHandler handles HTTP requests for field-service outing operations
type OutingHandler struct {
	outingService service.OutingServiceInterface
}

// NewOutingHandler creates a new outing handler
func NewOutingHandler(outingService service.OutingServiceInterface) *OutingHandler {
	return &OutingHandler{
		outingService: outingService,
	}
}

// CreateOuting handles POST /saidas_campo
// @Summary Create a new outing
// @Description Create an outing with a name and a weekday; the (name, weekday) pair must be unique
// @Tags outings
// @Accept json
// @Produce json
// @Param outing body service.CreateOutingRequest true "Outing data"
// @Success 201 {object} map[string]interface{} "id of the created outing"
// @Failure 400 {object} map[string]interface{} "Invalid request body or weekday"
// @Failure 409 {object} map[string]interface{} "Outing pair already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /saidas_campo [post]
func (h *OutingHandler) CreateOuting(c *gin.Context) {
	var req service.CreateOutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outing, err := h.outingService.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": outing.ID})
}

// ListOutings handles GET /saidas_campo
// @Summary List all outings
// @Tags outings
// @Produce json
// @Success 200 {array} models.Outing "All outings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /saidas_campo [get]
func (h *OutingHandler) ListOutings(c *gin.Context) {
	outings, err := h.outingService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outings)
}

// UpdateOuting handles PUT /saidas_campo/:id
// @Summary Update an outing
// @Description Full replace of an outing's name and weekday. A successful update fires the notification mail.
// @Tags outings
// @Accept json
// @Produce json
// @Param id path int true "Outing ID"
// @Param outing body service.UpdateOutingRequest true "Outing data"
// @Success 200 {object} map[string]interface{} "updated row count"
// @Failure 400 {object} map[string]interface{} "Invalid id, body or weekday"
// @Failure 409 {object} map[string]interface{} "Outing pair already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /saidas_campo/{id} [put]
func (h *OutingHandler) UpdateOuting(c *gin.Context) {
	id, ok := parseID(c, "outing")
	if !ok {
		return
	}

	var req service.UpdateOutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.outingService.Update(id, &req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteOuting handles DELETE /saidas_campo/:id
// @Summary Delete an outing
// @Description Physical delete; cascades to referencing assignments. A missing id reports deleted: 0.
// @Tags outings
// @Produce json
// @Param id path int true "Outing ID"
// @Success 200 {object} map[string]interface{} "deleted row count"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /saidas_campo/{id} [delete]
func (h *OutingHandler) DeleteOuting(c *gin.Context) {
	id, ok := parseID(c, "outing")
	if !ok {
		return
	}

	deleted, err := h.outingService.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
