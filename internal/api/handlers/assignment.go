package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rafasilverio93/designar/internal/database/models"
	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/repository"
	"github.com/rafasilverio93/designar/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for assignment operations
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// parseIDList parses a comma-joined id list query parameter
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// parseISODate validates an optional yyyy-mm-dd query parameter
func parseISODate(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", err
	}
	return raw, nil
}

// CreateAssignment handles POST /designacoes
// @Summary Create a new assignment
// @Description Bind a territory to an outing for a date range. Both referenced rows must exist and the return date may not precede the assignment date.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} map[string]interface{} "id of the created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Territory or outing not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /designacoes [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": assignment.ID})
}

// ListAssignments handles GET /designacoes
// @Summary List assignments joined with territory and outing names
// @Description Optional filters are ANDed: territorios and saidas take comma-joined id lists, dataInicial/dataFinal take inclusive ISO dates.
// @Tags assignments
// @Produce json
// @Param territorios query string false "Comma-joined territory ids"
// @Param saidas query string false "Comma-joined outing ids"
// @Param dataInicial query string false "Lower bound on data_designacao (yyyy-mm-dd)"
// @Param dataFinal query string false "Upper bound on data_devolucao (yyyy-mm-dd)"
// @Success 200 {array} models.AssignmentView "Matching assignments"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /designacoes [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	territorioIDs, err := parseIDList(c.Query("territorios"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid territorios parameter"})
		return
	}

	saidaIDs, err := parseIDList(c.Query("saidas"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saidas parameter"})
		return
	}

	dataInicial, err := parseISODate(c.Query("dataInicial"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataInicial parameter"})
		return
	}

	dataFinal, err := parseISODate(c.Query("dataFinal"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataFinal parameter"})
		return
	}

	views, err := h.assignmentService.List(repository.AssignmentFilter{
		TerritorioIDs: territorioIDs,
		SaidaIDs:      saidaIDs,
		DataInicial:   dataInicial,
		DataFinal:     dataFinal,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if views == nil {
		views = []models.AssignmentView{}
	}

	c.JSON(http.StatusOK, views)
}

// UpdateAssignment handles PUT /designacoes/:id
// @Summary Update an assignment
// @Description Full replace of all four assignment fields. A missing id reports updated: 0.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param assignment body service.UpdateAssignmentRequest true "Assignment data"
// @Success 200 {object} map[string]interface{} "updated row count"
// @Failure 400 {object} map[string]interface{} "Invalid id, body or date range"
// @Failure 404 {object} map[string]interface{} "Territory or outing not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /designacoes/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := parseID(c, "assignment")
	if !ok {
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.assignmentService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
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

// DeleteAssignment handles DELETE /designacoes/:id
// @Summary Delete an assignment
// @Description Physical delete. A missing id reports deleted: 0.
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} map[string]interface{} "deleted row count"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /designacoes/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseID(c, "assignment")
	if !ok {
		return
	}

	deleted, err := h.assignmentService.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
