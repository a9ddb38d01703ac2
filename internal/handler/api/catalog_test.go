//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"cafe-reservation/internal/handler/api"
	resdto "cafe-reservation/internal/handler/dto/response"
	"cafe-reservation/internal/usecase/queries"
	"cafe-reservation/tests/common/httptest"
	queriesmock "cafe-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/cafes", s.handler.ListCafes)
	s.router.GET("/cafes/:id/slots", s.handler.ListSlots)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListCafes() {
	url := "/cafes"

	cafes := []*queries.CafeView{
		{ID: uuid.New(), Name: "North Cafe", Active: true},
		{ID: uuid.New(), Name: "South Cafe", Active: true},
	}

	s.Run("success: returns 200 OK with cafe list", func() {
		s.mockQueries.EXPECT().ListCafes(gomock.Any()).Return(cafes, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CafeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(cafes))
		s.Equal("North Cafe", response[0].Name)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListCafes(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestListSlots() {
	cafeID := uuid.New()
	url := "/cafes/" + cafeID.String() + "/slots"

	slots := []*queries.SlotView{
		{ID: uuid.New(), CafeID: cafeID, StartTime: "10:00", EndTime: "12:00", Active: true},
		{ID: uuid.New(), CafeID: cafeID, StartTime: "14:00", EndTime: "16:00", Active: true},
	}

	s.Run("success: returns 200 OK with slot list", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), cafeID).Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(slots))
		s.Equal("10:00", response[0].StartTime)
		s.Equal("12:00", response[0].EndTime)
	})

	s.Run("error: 400 Bad Request for invalid cafe UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cafes/invalid-uuid/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cafe ID")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), cafeID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
