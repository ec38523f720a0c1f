package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TerritoryHandler handles HTTP requests for territory operations
type TerritoryHandler struct {
	territoryService service.TerritoryServiceInterface
}

// NewTerritoryHandler creates a new territory handler
func NewTerritoryHandler(territoryService service.TerritoryServiceInterface) *TerritoryHandler {
	return &TerritoryHandler{
		territoryService: territoryService,
	}
}

// parseID parses an integer path id, answering 400 itself when invalid
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return 0, false
	}
	return uint(id), true
}

// isValidationFailure reports whether an error came from request validation
func isValidationFailure(err error) bool {
	var validationErrs validator.ValidationErrors
	return apperrors.IsValidation(err) || errors.As(err, &validationErrs)
}

// CreateTerritory handles POST /territorios
// @Summary Create a new territory
// @Description Create a territory with a unique (case-insensitive) name and an optional do-not-knock address
// @Tags territories
// @Accept json
// @Produce json
// @Param territory body service.CreateTerritoryRequest true "Territory data"
// @Success 201 {object} map[string]interface{} "id of the created territory"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Territory name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /territorios [post]
func (h *TerritoryHandler) CreateTerritory(c *gin.Context) {
	var req service.CreateTerritoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	territory, err := h.territoryService.Create(&req)
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

	c.JSON(http.StatusCreated, gin.H{"id": territory.ID})
}

// ListTerritories handles GET /territorios
// @Summary List all territories
// @Tags territories
// @Produce json
// @Success 200 {array} models.Territory "All territories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /territorios [get]
func (h *TerritoryHandler) ListTerritories(c *gin.Context) {
	territories, err := h.territoryService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, territories)
}

// UpdateTerritory handles PUT /territorios/:id
// @Summary Update a territory
// @Description Full replace of a territory's name and do-not-knock address. A missing id reports updated: 0.
// @Tags territories
// @Accept json
// @Produce json
// @Param id path int true "Territory ID"
// @Param territory body service.UpdateTerritoryRequest true "Territory data"
// @Success 200 {object} map[string]interface{} "updated row count"
// @Failure 400 {object} map[string]interface{} "Invalid id or body"
// @Failure 409 {object} map[string]interface{} "Territory name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /territorios/{id} [put]
func (h *TerritoryHandler) UpdateTerritory(c *gin.Context) {
	id, ok := parseID(c, "territory")
	if !ok {
		return
	}

	var req service.UpdateTerritoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.territoryService.Update(id, &req)
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

// DeleteTerritory handles DELETE /territorios/:id
// @Summary Delete a territory
// @Description Physical delete; cascades to referencing assignments. A missing id reports deleted: 0.
// @Tags territories
// @Produce json
// @Param id path int true "Territory ID"
// @Success 200 {object} map[string]interface{} "deleted row count"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /territorios/{id} [delete]
func (h *TerritoryHandler) DeleteTerritory(c *gin.Context) {
	id, ok := parseID(c, "territory")
	if !ok {
		return
	}

	deleted, err := h.territoryService.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
