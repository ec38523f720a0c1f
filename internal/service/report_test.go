package service_test

import (
	"testing"

	"github.com/rafasilverio93/designar/internal/database/models"
	"github.com/rafasilverio93/designar/internal/service"

	"github.com/stretchr/testify/assert"
)

func sampleViews() []models.AssignmentView {
	return []models.AssignmentView{
		{ID: 1, TerritorioNome: "quadra B", SaidaNome: "Grupo 2", DataDesignacao: "2024-03-01", DataDevolucao: "2024-03-10"},
		{ID: 2, TerritorioNome: "Quadra A", SaidaNome: "Grupo 1", DataDesignacao: "2024-01-01", DataDevolucao: "2024-01-10"},
		{ID: 3, TerritorioNome: "quadra a", SaidaNome: "Grupo 3", DataDesignacao: "2024-02-01", DataDevolucao: "2024-02-10"},
	}
}

func viewIDs(views []models.AssignmentView) []uint {
	ids := make([]uint, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func TestSortAssignmentViews(t *testing.T) {
	t.Run("text column sorts case-insensitively", func(t *testing.T) {
		views := sampleViews()
		service.SortAssignmentViews(views, service.SortByTerritorioNome, false)
		assert.Equal(t, []uint{2, 3, 1}, viewIDs(views))
	})

	t.Run("equal keys keep their relative order", func(t *testing.T) {
		views := sampleViews()
		service.SortAssignmentViews(views, service.SortByTerritorioNome, false)
		// "Quadra A" (id 2) and "quadra a" (id 3) compare equal; input order wins.
		assert.Equal(t, uint(2), views[0].ID)
		assert.Equal(t, uint(3), views[1].ID)
	})

	t.Run("date column ascending", func(t *testing.T) {
		views := sampleViews()
		service.SortAssignmentViews(views, service.SortByDataDesignacao, false)
		assert.Equal(t, []uint{2, 3, 1}, viewIDs(views))
	})

	t.Run("date column descending", func(t *testing.T) {
		views := sampleViews()
		service.SortAssignmentViews(views, service.SortByDataDevolucao, true)
		assert.Equal(t, []uint{1, 3, 2}, viewIDs(views))
	})

	t.Run("outing name column", func(t *testing.T) {
		views := sampleViews()
		service.SortAssignmentViews(views, service.SortBySaidaNome, false)
		assert.Equal(t, []uint{2, 1, 3}, viewIDs(views))
	})

	t.Run("unknown column leaves order untouched", func(t *testing.T) {
		views := sampleViews()
		service.SortAssignmentViews(views, "territorio_id", false)
		assert.Equal(t, []uint{1, 2, 3}, viewIDs(views))
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		var views []models.AssignmentView
		service.SortAssignmentViews(views, service.SortByDataDesignacao, false)
		assert.Empty(t, views)
	})
}
