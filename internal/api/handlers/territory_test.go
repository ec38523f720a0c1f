package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/rafasilverio93/designar/internal/api/handlers"
	"github.com/rafasilverio93/designar/internal/database/models"
	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/mocks"
	"github.com/rafasilverio93/designar/internal/service"
	"github.com/rafasilverio93/designar/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TerritoryHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockTerritoryServiceInterface
}

func TestTerritoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(TerritoryHandlerTestSuite))
}

func (s *TerritoryHandlerTestSuite) SetupTest() {
	s.HTTPTestSuite = testutils.SetupHTTPTest()
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = mocks.NewMockTerritoryServiceInterface(s.ctrl)

	handler := handlers.NewTerritoryHandler(s.mockSvc)
	s.Router.POST("/territorios", handler.CreateTerritory)
	s.Router.GET("/territorios", handler.ListTerritories)
	s.Router.PUT("/territorios/:id", handler.UpdateTerritory)
	s.Router.DELETE("/territorios/:id", handler.DeleteTerritory)
}

func (s *TerritoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TerritoryHandlerTestSuite) TestCreateTerritory() {
	body := map[string]string{
		"nome":               "Quadra 12 - Centro",
		"endereco_nao_bater": "Rua das Flores, 45",
	}

	s.mockSvc.EXPECT().
		Create(&service.CreateTerritoryRequest{
			Nome:             "Quadra 12 - Centro",
			EnderecoNaoBater: "Rua das Flores, 45",
		}).
		Return(&models.Territory{ID: 1, Nome: "Quadra 12 - Centro"}, nil)

	recorder := s.MakeRequest(http.MethodPost, "/territorios", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &response)
	s.Equal(float64(1), response["id"])
}

func (s *TerritoryHandlerTestSuite) TestCreateTerritoryDuplicateName() {
	body := map[string]string{"nome": "Quadra 12 - Centro"}

	s.mockSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTerritoryExists)

	recorder := s.MakeRequest(http.MethodPost, "/territorios", body)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusConflict, "already exists")
}

func (s *TerritoryHandlerTestSuite) TestCreateTerritoryInvalidJSON() {
	recorder := s.MakeRequest(http.MethodPost, "/territorios", "not an object")
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *TerritoryHandlerTestSuite) TestListTerritories() {
	s.mockSvc.EXPECT().List().Return([]models.Territory{
		{ID: 1, Nome: "Quadra 1"},
		{ID: 2, Nome: "Quadra 2", EnderecoNaoBater: "Rua X, 10"},
	}, nil)

	recorder := s.MakeRequest(http.MethodGet, "/territorios", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("Quadra 1", response[0]["nome"])
	s.Equal("Rua X, 10", response[1]["endereco_nao_bater"])
}

func (s *TerritoryHandlerTestSuite) TestListTerritoriesServiceError() {
	s.mockSvc.EXPECT().List().Return(nil, errors.New("db down"))

	recorder := s.MakeRequest(http.MethodGet, "/territorios", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusInternalServerError, "db down")
}

func (s *TerritoryHandlerTestSuite) TestUpdateTerritory() {
	body := map[string]string{"nome": "Quadra Renomeada"}

	s.mockSvc.EXPECT().
		Update(uint(5), &service.UpdateTerritoryRequest{Nome: "Quadra Renomeada"}).
		Return(int64(1), nil)

	recorder := s.MakeRequest(http.MethodPut, "/territorios/5", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(1), response["updated"])
}

func (s *TerritoryHandlerTestSuite) TestUpdateTerritoryMissingReportsZero() {
	body := map[string]string{"nome": "Quadra X"}

	s.mockSvc.EXPECT().Update(uint(99), gomock.Any()).Return(int64(0), nil)

	recorder := s.MakeRequest(http.MethodPut, "/territorios/99", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(0), response["updated"])
}

func (s *TerritoryHandlerTestSuite) TestUpdateTerritoryInvalidID() {
	recorder := s.MakeRequest(http.MethodPut, "/territorios/abc", map[string]string{"nome": "X"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid territory ID")
}

func (s *TerritoryHandlerTestSuite) TestDeleteTerritory() {
	s.mockSvc.EXPECT().Delete(uint(3)).Return(int64(1), nil)

	recorder := s.MakeRequest(http.MethodDelete, "/territorios/3", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(1), response["deleted"])
}

func (s *TerritoryHandlerTestSuite) TestDeleteTerritoryMissingReportsZero() {
	s.mockSvc.EXPECT().Delete(uint(99)).Return(int64(0), nil)

	recorder := s.MakeRequest(http.MethodDelete, "/territorios/99", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(0), response["deleted"])
}
