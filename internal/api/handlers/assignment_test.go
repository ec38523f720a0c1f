package handlers_test

import (
	"net/http"
	"testing"

	"github.com/rafasilverio93/designar/internal/api/handlers"
	"github.com/rafasilverio93/designar/internal/database/models"
	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/mocks"
	"github.com/rafasilverio93/designar/internal/repository"
	"github.com/rafasilverio93/designar/internal/service"
	"github.com/rafasilverio93/designar/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockAssignmentServiceInterface
}

func TestAssignmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}

func (s *AssignmentHandlerTestSuite) SetupTest() {
	s.HTTPTestSuite = testutils.SetupHTTPTest()
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = mocks.NewMockAssignmentServiceInterface(s.ctrl)

	handler := handlers.NewAssignmentHandler(s.mockSvc)
	s.Router.POST("/designacoes", handler.CreateAssignment)
	s.Router.GET("/designacoes", handler.ListAssignments)
	s.Router.PUT("/designacoes/:id", handler.UpdateAssignment)
	s.Router.DELETE("/designacoes/:id", handler.DeleteAssignment)
}

func (s *AssignmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AssignmentHandlerTestSuite) TestCreateAssignment() {
	body := map[string]interface{}{
		"territorioId":   1,
		"saidaCampoId":   2,
		"dataDesignacao": "2024-01-01",
		"dataDevolucao":  "2024-01-21",
	}

	s.mockSvc.EXPECT().
		Create(&service.CreateAssignmentRequest{
			TerritorioID:   1,
			SaidaCampoID:   2,
			DataDesignacao: "2024-01-01",
			DataDevolucao:  "2024-01-21",
		}).
		Return(&models.Assignment{ID: 10, TerritorioID: 1, SaidaID: 2}, nil)

	recorder := s.MakeRequest(http.MethodPost, "/designacoes", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &response)
	s.Equal(float64(10), response["id"])
}

func (s *AssignmentHandlerTestSuite) TestCreateAssignmentTerritoryNotFound() {
	body := map[string]interface{}{
		"territorioId":   99,
		"saidaCampoId":   2,
		"dataDesignacao": "2024-01-01",
		"dataDevolucao":  "2024-01-21",
	}

	s.mockSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTerritoryNotFound)

	recorder := s.MakeRequest(http.MethodPost, "/designacoes", body)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "territory not found")
}

func (s *AssignmentHandlerTestSuite) TestCreateAssignmentBadDateRange() {
	body := map[string]interface{}{
		"territorioId":   1,
		"saidaCampoId":   2,
		"dataDesignacao": "2024-01-21",
		"dataDevolucao":  "2024-01-01",
	}

	s.mockSvc.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("dataDevolucao", apperrors.ErrInvalidDateRange.Error()))

	recorder := s.MakeRequest(http.MethodPost, "/designacoes", body)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "must not be before")
}

func (s *AssignmentHandlerTestSuite) TestListAssignments() {
	expected := []models.AssignmentView{
		{
			ID:               1,
			TerritorioID:     1,
			SaidaID:          2,
			DataDesignacao:   "2024-01-01",
			DataDevolucao:    "2024-01-21",
			TerritorioNome:   "T1",
			SaidaNome:        "Tue AM",
			EnderecoNaoBater: "Rua X, 10",
		},
	}

	s.mockSvc.EXPECT().List(repository.AssignmentFilter{}).Return(expected, nil)

	recorder := s.MakeRequest(http.MethodGet, "/designacoes", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("T1", response[0]["territorio_nome"])
	s.Equal("Tue AM", response[0]["saida_nome"])
	s.Equal("Rua X, 10", response[0]["endereco_nao_bater"])
	s.Equal("2024-01-01", response[0]["data_designacao"])
}

func (s *AssignmentHandlerTestSuite) TestListAssignmentsWithFilters() {
	s.mockSvc.EXPECT().
		List(repository.AssignmentFilter{
			TerritorioIDs: []uint{1, 2},
			SaidaIDs:      []uint{3},
			DataInicial:   "2024-01-01",
			DataFinal:     "2024-12-31",
		}).
		Return([]models.AssignmentView{}, nil)

	recorder := s.MakeRequest(http.MethodGet,
		"/designacoes?territorios=1,2&saidas=3&dataInicial=2024-01-01&dataFinal=2024-12-31", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Empty(response)
}

func (s *AssignmentHandlerTestSuite) TestListAssignmentsEmptyResultIsArray() {
	s.mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

	recorder := s.MakeRequest(http.MethodGet, "/designacoes", nil)

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq("[]", recorder.Body.String())
}

func (s *AssignmentHandlerTestSuite) TestListAssignmentsBadIDList() {
	recorder := s.MakeRequest(http.MethodGet, "/designacoes?territorios=1,abc", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid territorios parameter")
}

func (s *AssignmentHandlerTestSuite) TestListAssignmentsBadDate() {
	recorder := s.MakeRequest(http.MethodGet, "/designacoes?dataInicial=01-01-2024", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid dataInicial parameter")
}

func (s *AssignmentHandlerTestSuite) TestUpdateAssignment() {
	body := map[string]interface{}{
		"territorioId":   3,
		"saidaCampoId":   4,
		"dataDesignacao": "2024-02-01",
		"dataDevolucao":  "2024-02-15",
	}

	s.mockSvc.EXPECT().
		Update(uint(7), &service.UpdateAssignmentRequest{
			TerritorioID:   3,
			SaidaCampoID:   4,
			DataDesignacao: "2024-02-01",
			DataDevolucao:  "2024-02-15",
		}).
		Return(int64(1), nil)

	recorder := s.MakeRequest(http.MethodPut, "/designacoes/7", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(1), response["updated"])
}

func (s *AssignmentHandlerTestSuite) TestUpdateAssignmentInvalidID() {
	recorder := s.MakeRequest(http.MethodPut, "/designacoes/abc", map[string]interface{}{})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid assignment ID")
}

func (s *AssignmentHandlerTestSuite) TestDeleteAssignment() {
	s.mockSvc.EXPECT().Delete(uint(7)).Return(int64(1), nil)

	recorder := s.MakeRequest(http.MethodDelete, "/designacoes/7", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(1), response["deleted"])
}

func (s *AssignmentHandlerTestSuite) TestDeleteAssignmentMissingReportsZero() {
	s.mockSvc.EXPECT().Delete(uint(99)).Return(int64(0), nil)

	recorder := s.MakeRequest(http.MethodDelete, "/designacoes/99", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(0), response["deleted"])
}
