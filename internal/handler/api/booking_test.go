//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"cafe-reservation/internal/domain/user"
	"cafe-reservation/internal/handler/api"
	resdto "cafe-reservation/internal/handler/dto/response"
	"cafe-reservation/internal/usecase/commands"
	"cafe-reservation/internal/usecase/queries"
	"cafe-reservation/tests/common/builder"
	"cafe-reservation/tests/common/httptest"
	"cafe-reservation/tests/common/testutil"
	commandsmock "cafe-reservation/tests/mock/commands"
	queriesmock "cafe-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.UpdateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseBooking{
			{name: "missing field: cafeId (required)", mutate: testutil.Field("cafeId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: bookingDate (required)", mutate: testutil.Field("bookingDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guestNumber (required)", mutate: testutil.Field("guestNumber", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: tableSlots (required)", mutate: testutil.Field("tableSlots", nil), expectCode: http.StatusBadRequest},
			{name: "guest number below minimum (0)", mutate: testutil.Field("guestNumber", 0), expectCode: http.StatusBadRequest},
			{name: "empty tableSlots array", mutate: testutil.Field("tableSlots", []any{}), expectCode: http.StatusBadRequest},
			{name: "malformed booking date", mutate: testutil.Field("bookingDate", "01-09-2026"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "cafe not found",
				commandsError:  commands.ErrCafeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Cafe not found",
			},
			{
				name:           "table not found",
				commandsError:  commands.ErrTableNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Table not found",
			},
			{
				name:           "table already booked",
				commandsError:  commands.ErrTableAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "user already booked",
				commandsError:  commands.ErrUserAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already have a booking",
			},
			{
				name:           "not enough seats",
				commandsError:  commands.ErrNotEnoughSeats,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not enough seats",
			},
			{
				name:           "past booking date",
				commandsError:  commands.ErrBookingPastDate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "inactive cafe",
				commandsError:  commands.ErrCafeInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "invalid guest number",
				commandsError:  commands.ErrInvalidGuestNumber,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking data",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	reqBody := builder.NewBookingBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewBookingBuilder().WithID(bookingID).BuildView()

	s.Run("success: returns 200 OK with updated booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/bookings/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request for unknown status value", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("status", "archived"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrInsufficientPermissions,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "inactive booking",
				commandsError:  commands.ErrBookingInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "forbidden status transition",
				commandsError:  commands.ErrInvalidStatusTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "cannot activate terminal status",
				commandsError:  commands.ErrCannotActivateStatus,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "table already booked",
				commandsError:  commands.ErrTableAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().WithID(bookingID).BuildView()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.GuestNumber, response.GuestNumber)
		s.Equal(returnView.BookingDate.Format("2006-01-02"), response.BookingDate)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/bookings/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, queries.ErrPermissionDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	baseURL := "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().AsConfirmed().BuildView(),
	}

	s.Run("success: returns booking list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ListBookingsParams{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(views))
	})

	s.Run("success: passes cafe filter and showAll through", func() {
		cafeID := uuid.New()
		url := baseURL + "?cafeId=" + cafeID.String() + "&showAll=true"

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ user.Actor, params queries.ListBookingsParams) ([]*queries.BookingView, error) {
				s.Require().NotNil(params.CafeID)
				s.Equal(cafeID, *params.CafeID)
				s.True(params.ShowAll)
				return views, nil
			},
		).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid cafeId filter", func() {
		url := baseURL + "?cafeId=invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cafeId")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
