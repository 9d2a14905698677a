package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/services"
)

type recordingNotifier struct {
	mu            sync.Mutex
	events        []string
	notifications []services.Notification
}

func (n *recordingNotifier) Dispatch(event string, notifications ...services.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	n.notifications = append(n.notifications, notifications...)
}

type testEnv struct {
	router   *gin.Engine
	mock     sqlmock.Sqlmock
	notifier *recordingNotifier
	logs     *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	notifier := &recordingNotifier{}
	packageRepo := database.NewPackageRepository(db)

	bookingHandler := NewBookingHandler(services.NewBookingService(
		database.NewBookingRepository(db), packageRepo, notifier, "staff@example.com", logger), logger)
	inquiryHandler := NewInquiryHandler(services.NewInquiryService(
		database.NewInquiryRepository(db), packageRepo, notifier, "staff@example.com", logger), logger)
	reviewHandler := NewReviewHandler(services.NewReviewService(database.NewReviewRepository(db)), logger)
	newsletterHandler := NewNewsletterHandler(services.NewNewsletterService(database.NewNewsletterRepository(db)), logger)
	packageHandler := NewPackageHandler(services.NewPackageService(packageRepo, nil), logger)
	healthHandler := NewHealthHandler(db, nil, "test")

	router := gin.New()
	router.GET("/health", healthHandler.Check)
	api := router.Group("/api/v1")
	api.GET("/packages/:id", packageHandler.GetPublic)
	api.PUT("/admin/packages/:id", packageHandler.Update)
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/admin/bookings", bookingHandler.List)
	api.PUT("/admin/bookings/:id", bookingHandler.UpdateStatus)
	api.POST("/inquiries", inquiryHandler.Create)
	api.POST("/contact", inquiryHandler.CreateContact)
	api.GET("/admin/inquiries", inquiryHandler.List)
	api.PUT("/admin/inquiries/:id", inquiryHandler.UpdateStatus)
	api.POST("/reviews", reviewHandler.Create)
	api.GET("/reviews", reviewHandler.ListPublic)
	api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)

	return &testEnv{router: router, mock: mock, notifier: notifier, logs: &logs}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

var packageRowColumns = []string{
	"id", "name", "destination", "duration", "price", "description",
	"itinerary", "inclusions", "exclusions", "images", "featured", "active", "category",
	"created_at", "updated_at",
}

var inquiryRowColumns = []string{
	"id", "name", "email", "phone", "package_id", "message", "status", "created_at", "updated_at",
}

func baliRow(active bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(packageRowColumns).AddRow(
		"p-1", "Bali Escape", "Bali", 7, 900.0, "Beaches and temples",
		"{}", "{}", "{}", "{}", false, active, nil, now, now,
	)
}

func bookingBody() map[string]interface{} {
	return map[string]interface{}{
		"packageId":         "p-1",
		"customerName":      "Ada Lovelace",
		"email":             "ada@example.com",
		"phone":             "+44 20 7946 0000",
		"travelDate":        time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"numberOfTravelers": 2,
		"totalPrice":        1800,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	env := newTestEnv(t)

	env.mock.ExpectQuery(`SELECT (.+) FROM packages WHERE id = \$1`).WithArgs("p-1").WillReturnRows(baliRow(true))
	env.mock.ExpectExec(`INSERT INTO bookings`).WillReturnResult(sqlmock.NewResult(0, 1))

	w, resp := env.do(t, http.MethodPost, "/api/v1/bookings", bookingBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "p-1", data["packageId"])

	assert.Equal(t, []string{services.EventBookingCreated}, env.notifier.events)
	require.Len(t, env.notifier.notifications, 2)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestCreateBooking_UnknownPackage(t *testing.T) {
	env := newTestEnv(t)

	env.mock.ExpectQuery(`SELECT (.+) FROM packages WHERE id = \$1`).WithArgs("p-1").WillReturnError(sql.ErrNoRows)

	w, resp := env.do(t, http.MethodPost, "/api/v1/bookings", bookingBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Package not found", resp["message"])
	assert.Empty(t, env.notifier.events)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestCreateBooking_Validation(t *testing.T) {
	t.Run("Pre-check failures are a flat list", func(t *testing.T) {
		env := newTestEnv(t)

		body := bookingBody()
		delete(body, "customerName")
		body["travelDate"] = "2001-01-01"

		w, resp := env.do(t, http.MethodPost, "/api/v1/bookings", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []interface{}{"Customer name is required", "Travel date must be in the future"}, resp["errors"])
	})

	t.Run("Field failures carry field names", func(t *testing.T) {
		env := newTestEnv(t)

		body := bookingBody()
		body["email"] = "not-an-email"
		body["numberOfTravelers"] = 0

		w, resp := env.do(t, http.MethodPost, "/api/v1/bookings", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := resp["errors"].([]interface{})
		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].(map[string]interface{})["field"])
		assert.Equal(t, "numberOfTravelers", errs[1].(map[string]interface{})["field"])
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		env := newTestEnv(t)

		w, resp := env.do(t, http.MethodPost, "/api/v1/bookings", "just a string")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", resp["message"])
	})
}

func TestUpdatePackage_BindingTags(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPut, "/api/v1/admin/packages/p-1", map[string]interface{}{
		"name":  "   ",
		"price": -3,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"field": "name", "message": "Name is required"},
		map[string]interface{}{"field": "price", "message": "Price cannot be negative"},
	}, resp["errors"])
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("Out of vocabulary", func(t *testing.T) {
		env := newTestEnv(t)

		w, resp := env.do(t, http.MethodPut, "/api/v1/admin/bookings/b-1", map[string]string{"status": "archived"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := resp["errors"].([]interface{})
		assert.Equal(t, "status", errs[0].(map[string]interface{})["field"])
		assert.NoError(t, env.mock.ExpectationsWereMet())
	})

	t.Run("Unknown booking", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery(`UPDATE bookings SET status`).WithArgs("confirmed", "b-404").WillReturnError(sql.ErrNoRows)

		w, resp := env.do(t, http.MethodPut, "/api/v1/admin/bookings/b-404", map[string]string{"status": "confirmed"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Booking not found", resp["message"])
		assert.NoError(t, env.mock.ExpectationsWereMet())
	})
}

func TestListBookings_UnexpectedError(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`SELECT (.+) FROM bookings`).WillReturnError(errors.New("connection refused"))

	w, resp := env.do(t, http.MethodGet, "/api/v1/admin/bookings?status=pending", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp["message"])
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, env.logs.String(), "connection refused")
	assert.Contains(t, env.logs.String(), "/api/v1/admin/bookings")
}

func TestListBookings_PagePastTheEnd(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`SELECT (.+) FROM bookings ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, math.MaxInt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	env.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	w, resp := env.do(t, http.MethodGet, "/api/v1/admin/bookings?page="+strconv.Itoa(math.MaxInt), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, resp["data"])
	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"name":    "Lin",
		"email":   "lin@example.com",
		"rating":  6,
		"comment": "Too good",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["message"], "Rating must be between 1 and 5")
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestListPublicReviews_HidesEmail(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	env.mock.ExpectQuery(`SELECT (.+) FROM reviews WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("approved", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "rating", "comment", "destination", "status", "created_at", "updated_at",
		}).AddRow("r-1", "Lin", "lin@example.com", 5, "Wonderful", "Bali", "approved", now, now))

	w, resp := env.do(t, http.MethodGet, "/api/v1/reviews?page=3&limit=100", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "email")
	assert.Nil(t, resp["pagination"])
	assert.Len(t, resp["data"], 1)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestInquiryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	for i := 0; i < 3; i++ {
		env.mock.ExpectExec(`INSERT INTO inquiries`).
			WithArgs(sqlmock.AnyArg(), "Sam", "sam@example.com", nil, nil, "Do you do group tours?", "new",
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	env.mock.ExpectQuery(`UPDATE inquiries SET status = \$1`).
		WithArgs("responded", "i-2").
		WillReturnRows(sqlmock.NewRows(inquiryRowColumns).
			AddRow("i-2", "Sam", "sam@example.com", nil, nil, "Do you do group tours?", "responded", now, now))
	env.mock.ExpectQuery(`SELECT (.+) FROM inquiries WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("new", 20, 0).
		WillReturnRows(sqlmock.NewRows(inquiryRowColumns).
			AddRow("i-1", "Sam", "sam@example.com", nil, nil, "Do you do group tours?", "new", now, now).
			AddRow("i-3", "Sam", "sam@example.com", nil, nil, "Do you do group tours?", "new", now, now))
	env.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM inquiries WHERE status = \$1`).
		WithArgs("new").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	for i := 0; i < 3; i++ {
		w, _ := env.do(t, http.MethodPost, "/api/v1/inquiries", map[string]string{
			"name":    "Sam",
			"email":   "sam@example.com",
			"message": "Do you do group tours?",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := env.do(t, http.MethodPut, "/api/v1/admin/inquiries/i-2", map[string]string{"status": "responded"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "responded", resp["data"].(map[string]interface{})["status"])

	w, resp = env.do(t, http.MethodGet, "/api/v1/admin/inquiries?status=new", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 2)
	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["total"])
	assert.Equal(t, float64(1), pagination["pages"])
	assert.Equal(t, float64(20), pagination["limit"])

	assert.Len(t, env.notifier.events, 3)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestCreateInquiry_UnknownPackage(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`SELECT (.+) FROM packages WHERE id = \$1`).WithArgs("p-404").WillReturnError(sql.ErrNoRows)

	w, resp := env.do(t, http.MethodPost, "/api/v1/inquiries", map[string]string{
		"name":      "Sam",
		"email":     "sam@example.com",
		"message":   "Is this available in May?",
		"packageId": "p-404",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Package not found", resp["message"])
	assert.Empty(t, env.notifier.events)
}

func TestCreateContact_IgnoresPackage(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectExec(`INSERT INTO inquiries`).
		WithArgs(sqlmock.AnyArg(), "Sam", "sam@example.com", nil, nil, "Call me back", "new",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w, _ := env.do(t, http.MethodPost, "/api/v1/contact", map[string]string{
		"name":      "Sam",
		"email":     "sam@example.com",
		"message":   "Call me back",
		"packageId": "p-1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{services.EventInquiryCreated}, env.notifier.events)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestSubscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectExec(`INSERT INTO newsletter_subscriptions`).
			WithArgs(sqlmock.AnyArg(), "reader@example.com", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w, _ := env.do(t, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]string{"email": "Reader@Example.com"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectExec(`INSERT INTO newsletter_subscriptions`).
			WillReturnError(&pq.Error{Code: "23505"})

		w, resp := env.do(t, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]string{"email": "reader@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already subscribed", resp["message"])
	})

	t.Run("Invalid email", func(t *testing.T) {
		env := newTestEnv(t)

		w, resp := env.do(t, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]string{"email": "reader"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide a valid email", resp["message"])
	})
}

func TestGetPublicPackage_Inactive(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`SELECT (.+) FROM packages WHERE id = \$1`).WithArgs("p-1").WillReturnRows(baliRow(false))

	w, resp := env.do(t, http.MethodGet, "/api/v1/packages/p-1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Package not found", resp["message"])
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])
	assert.Nil(t, resp["cache"])
}
