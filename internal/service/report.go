package service

import (
	"sort"
	"strings"

	"github.com/rafasilverio93/designar/internal/database/models"
)

// Report sort columns recognized by SortAssignmentViews
const (
	SortByTerritorioNome = "territorio_nome"
	SortBySaidaNome      = "saida_nome"
	SortByDataDesignacao = "data_designacao"
	SortByDataDevolucao  = "data_devolucao"
)

// SortAssignmentViews orders a listing by one column for report rendering.
// Text columns compare case-insensitively, date columns chronologically
// (lexical order on ISO yyyy-mm-dd). The sort is stable: rows with equal keys
// keep their relative order. Unknown columns leave the slice untouched.
func SortAssignmentViews(views []models.AssignmentView, column string, descending bool) {
	var key func(v *models.AssignmentView) string

	switch column {
	case SortByTerritorioNome:
		key = func(v *models.AssignmentView) string { return strings.ToLower(v.TerritorioNome) }
	case SortBySaidaNome:
		key = func(v *models.AssignmentView) string { return strings.ToLower(v.SaidaNome) }
	case SortByDataDesignacao:
		key = func(v *models.AssignmentView) string { return v.DataDesignacao }
	case SortByDataDevolucao:
		key = func(v *models.AssignmentView) string { return v.DataDevolucao }
	default:
		return
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := key(&views[i]), key(&views[j])
		if descending {
			return a > b
		}
		return a < b
	})
}
