package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-api/internal/middleware"
	"booking-api/internal/models"
	"booking-api/internal/repositories"
	"booking-api/internal/services"
	"booking-api/pkg/lambda"
)

const validID = "550e8400-e29b-41d4-a716-446655440000"

type stubRepo struct {
	booking *models.Booking
	err     error
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.booking == nil || s.booking.ID != id {
		return nil, repositories.NotFoundError("booking", id)
	}
	return s.booking, nil
}

func (s *stubRepo) Put(ctx context.Context, booking *models.Booking) error {
	return errors.New("not implemented")
}

func newService(t *testing.T, repo repositories.BookingRepository) *services.BookingService {
	t.Helper()
	svc, err := services.NewBookingService(repo, nil)
	require.NoError(t, err)
	return svc
}

func setupRouter(svc *services.BookingService, identity models.RequestIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(func(c *gin.Context) {
		// Plays the authorizer: the trusted context is populated before the
		// handler runs.
		if identity.UserID != "" {
			c.Set(middleware.UserIDKey, identity.UserID)
			c.Set(middleware.RoleKey, identity.Role)
		}
	})

	handler := NewBookingHandler(svc)
	router.GET("/bookings/:id", handler.GetBooking)
	return router
}

func doGet(router *gin.Engine, id string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func ownedBooking() *models.Booking {
	return &models.Booking{
		ID:   validID,
		Date: "2026-09-01",
		Owner: &models.BookingOwner{
			ID:    "user-123",
			Name:  "Jordan Smith",
			Email: "jordan@example.com",
		},
	}
}

func TestGetBookingSuccess(t *testing.T) {
	svc := newService(t, &stubRepo{booking: ownedBooking()})
	router := setupRouter(svc, models.RequestIdentity{UserID: "user-123", Role: "USER"})

	w := doGet(router, validID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	body := decodeBody(t, w)
	assert.Equal(t, validID, body["id"])
	assert.Equal(t, "2026-09-01", body["date"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "success body must carry a user object")
	assert.Equal(t, "user-123", user["id"])
	assert.Equal(t, "Jordan Smith", user["name"])
	assert.Equal(t, "jordan@example.com", user["email"])
	assert.Len(t, body, 3, "success body carries exactly id, date and user")
}

func TestGetBookingSuccessPartialOwner(t *testing.T) {
	booking := &models.Booking{
		ID:    validID,
		Date:  "2026-09-01",
		Owner: &models.BookingOwner{ID: "user-123"},
	}
	svc := newService(t, &stubRepo{booking: booking})
	router := setupRouter(svc, models.RequestIdentity{UserID: "user-123", Role: "USER"})

	w := doGet(router, validID)

	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	// Missing owner sub-fields render as empty strings, never null or omitted.
	assert.Equal(t, "", user["name"])
	assert.Equal(t, "", user["email"])
	assert.Len(t, user, 3)
}

func TestGetBookingAdminSeesOwnerUnchanged(t *testing.T) {
	svc := newService(t, &stubRepo{booking: ownedBooking()})
	router := setupRouter(svc, models.RequestIdentity{UserID: "admin-1", Role: "ADMIN"})

	w := doGet(router, validID)

	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "user-123", user["id"], "body reflects the stored owner, not the requester")
}

func TestGetBookingFailureResponses(t *testing.T) {
	tests := []struct {
		name        string
		repo        *stubRepo
		identity    models.RequestIdentity
		id          string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid id format",
			repo:        &stubRepo{},
			identity:    models.RequestIdentity{UserID: "user-123"},
			id:          "not-a-uuid",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid booking ID format",
		},
		{
			name:        "unauthenticated",
			repo:        &stubRepo{booking: ownedBooking()},
			identity:    models.RequestIdentity{},
			id:          validID,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "not found",
			repo:        &stubRepo{},
			identity:    models.RequestIdentity{UserID: "user-123"},
			id:          validID,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Booking not found",
		},
		{
			name:        "forbidden",
			repo:        &stubRepo{booking: ownedBooking()},
			identity:    models.RequestIdentity{UserID: "user-999", Role: "USER"},
			id:          validID,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not authorized to view this booking",
		},
		{
			name:        "storage failure",
			repo:        &stubRepo{err: repositories.UnavailableError("get_by_id", "booking", validID, errors.New("throttled"))},
			identity:    models.RequestIdentity{UserID: "user-123"},
			id:          validID,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error retrieving booking",
		},
		{
			name:        "store not configured",
			repo:        &stubRepo{err: repositories.NotConfiguredError("booking")},
			identity:    models.RequestIdentity{UserID: "user-123"},
			id:          validID,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(newService(t, tt.repo), tt.identity)
			w := doGet(router, tt.id)

			assert.Equal(t, tt.wantStatus, w.Code)

			body := decodeBody(t, w)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Len(t, body, 1, "failure bodies carry only the message field")
		})
	}
}

func TestHandleGetLambdaPath(t *testing.T) {
	svc := newService(t, &stubRepo{booking: ownedBooking()})
	handler := NewBookingHandler(svc)

	resp, err := handler.HandleGet(context.Background(), &lambda.Request{
		Method:     http.MethodGet,
		Path:       "/bookings/" + validID,
		PathParams: map[string]string{"id": validID},
		Identity:   models.RequestIdentity{UserID: "user-123", Role: "USER"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "true", resp.Headers["Access-Control-Allow-Credentials"])

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, validID, body["id"])
}

func TestHandleGetMissingPathParam(t *testing.T) {
	svc := newService(t, &stubRepo{})
	handler := NewBookingHandler(svc)

	resp, err := handler.HandleGet(context.Background(), &lambda.Request{
		Method:   http.MethodGet,
		Path:     "/bookings",
		Identity: models.RequestIdentity{UserID: "user-123"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, "Booking ID is required", body["message"])
}
