package handlers_test

import (
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

type OutingHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockOutingServiceInterface
}

func TestOutingHandlerSuite(t *testing.T) {
	suite.Run(t, new(OutingHandlerTestSuite))
}

func (s *OutingHandlerTestSuite) SetupTest() {
	s.HTTPTestSuite = testutils.SetupHTTPTest()
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = mocks.NewMockOutingServiceInterface(s.ctrl)

	handler := handlers.NewOutingHandler(s.mockSvc)
	s.Router.POST("/saidas_campo", handler.CreateOuting)
	s.Router.GET("/saidas_campo", handler.ListOutings)
	s.Router.PUT("/saidas_campo/:id", handler.UpdateOuting)
	s.Router.DELETE("/saidas_campo/:id", handler.DeleteOuting)
}

func (s *OutingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OutingHandlerTestSuite) TestCreateOuting() {
	body := map[string]string{
		"nome":       "Grupo da Manhã",
		"dia_semana": "Terça-feira",
	}

	s.mockSvc.EXPECT().
		Create(&service.CreateOutingRequest{Nome: "Grupo da Manhã", DiaSemana: models.WeekdayTerca}).
		Return(&models.Outing{ID: 1, Nome: "Grupo da Manhã", DiaSemana: models.WeekdayTerca}, nil)

	recorder := s.MakeRequest(http.MethodPost, "/saidas_campo", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &response)
	s.Equal(float64(1), response["id"])
}

func (s *OutingHandlerTestSuite) TestCreateOutingInvalidWeekday() {
	body := map[string]string{
		"nome":       "Grupo da Manhã",
		"dia_semana": "Mondayish",
	}

	s.mockSvc.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("dia_semana", `"Mondayish" is not a weekday name`))

	recorder := s.MakeRequest(http.MethodPost, "/saidas_campo", body)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "not a weekday name")
}

func (s *OutingHandlerTestSuite) TestCreateOutingDuplicatePair() {
	body := map[string]string{
		"nome":       "Grupo da Manhã",
		"dia_semana": "Terça-feira",
	}

	s.mockSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrOutingExists)

	recorder := s.MakeRequest(http.MethodPost, "/saidas_campo", body)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusConflict, "already exists")
}

func (s *OutingHandlerTestSuite) TestListOutings() {
	s.mockSvc.EXPECT().List().Return([]models.Outing{
		{ID: 1, Nome: "Grupo da Manhã", DiaSemana: models.WeekdayTerca},
		{ID: 2, Nome: "Grupo da Tarde", DiaSemana: models.WeekdaySabado},
	}, nil)

	recorder := s.MakeRequest(http.MethodGet, "/saidas_campo", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("Terça-feira", response[0]["dia_semana"])
	s.Equal("Grupo da Tarde", response[1]["nome"])
}

func (s *OutingHandlerTestSuite) TestUpdateOuting() {
	body := map[string]string{
		"nome":       "Grupo da Tarde",
		"dia_semana": "Quinta-feira",
	}

	s.mockSvc.EXPECT().
		Update(uint(2), &service.UpdateOutingRequest{Nome: "Grupo da Tarde", DiaSemana: models.WeekdayQuinta}).
		Return(int64(1), nil)

	recorder := s.MakeRequest(http.MethodPut, "/saidas_campo/2", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(1), response["updated"])
}

func (s *OutingHandlerTestSuite) TestUpdateOutingInvalidID() {
	recorder := s.MakeRequest(http.MethodPut, "/saidas_campo/abc", map[string]string{"nome": "X", "dia_semana": "Domingo"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid outing ID")
}

func (s *OutingHandlerTestSuite) TestDeleteOuting() {
	s.mockSvc.EXPECT().Delete(uint(4)).Return(int64(1), nil)

	recorder := s.MakeRequest(http.MethodDelete, "/saidas_campo/4", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(1), response["deleted"])
}

func (s *OutingHandlerTestSuite) TestDeleteOutingMissingReportsZero() {
	s.mockSvc.EXPECT().Delete(uint(99)).Return(int64(0), nil)

	recorder := s.MakeRequest(http.MethodDelete, "/saidas_campo/99", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(0), response["deleted"])
}
