package booking

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bookingModel "museum-booking/models/booking"
	"museum-booking/repository"
	"museum-booking/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var submittedAt = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return submittedAt }

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, repo repository.BookingRepository) *fiber.App {
	t.Helper()

	bc := NewBookingController(repo, fixedClock)
	app := fiber.New()
	app.Post("/api/bookings", bc.Store)
	app.Get("/api/bookings", bc.Index)
	app.Get("/api/bookings/:id", bc.Show)
	app.Get("/api/admin/bookings/stats", bc.Stats)
	return app
}

func newSqliteRepo(t *testing.T) repository.BookingRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: fixedClock,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&bookingModel.Booking{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return repository.NewGormBookingRepository(db)
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer res.Body.Close()

	var out response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return res.StatusCode, out
}

const validPayload = `{
	"visitorName": "Jane Doe",
	"email": "Jane@Example.com",
	"phone": "555-0100",
	"visitDate": "2999-01-01",
	"numberOfVisitors": "3",
	"tourType": "guided"
}`

func TestStore_Created(t *testing.T) {
	app := newTestApp(t, newSqliteRepo(t))

	status, res := do(t, app, "POST", "/api/bookings", validPayload)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", status, res.Message)
	}
	if !res.Success || res.Message != "Booking created successfully!" {
		t.Fatalf("unexpected envelope: %+v", res)
	}

	var created map[string]interface{}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created["numberOfVisitors"] != float64(3) {
		t.Errorf("numberOfVisitors = %v, want integer 3", created["numberOfVisitors"])
	}
	if created["email"] != "jane@example.com" {
		t.Errorf("email = %v, want lower-cased", created["email"])
	}
	if created["visitDate"] != "2999-01-01" {
		t.Errorf("visitDate = %v", created["visitDate"])
	}
	if _, err := uuid.Parse(created["id"].(string)); err != nil {
		t.Errorf("id = %v, want uuid", created["id"])
	}

	status, res = do(t, app, "GET", "/api/bookings/"+created["id"].(string), "")
	if status != fiber.StatusOK || !res.Success {
		t.Fatalf("get created booking: status %d", status)
	}
}

func TestStore_NumericTextFields(t *testing.T) {
	app := newTestApp(t, newSqliteRepo(t))

	body := `{"visitorName":123,"email":"jo@x.io","phone":5550100,"visitDate":"2999-01-01","numberOfVisitors":2,"tourType":"private"}`
	status, res := do(t, app, "POST", "/api/bookings", body)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", status, res.Message)
	}

	var created map[string]interface{}
	if err := json.Unmarshal(res.Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created["visitorName"] != "123" || created["phone"] != "5550100" {
		t.Errorf("unexpected text fields: %v, %v", created["visitorName"], created["phone"])
	}
}

func TestStore_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "too many visitors",
			body:    strings.Replace(validPayload, `"3"`, `25`, 1),
			message: "Maximum 20 visitors per booking",
		},
		{
			name:    "exponent visitor count",
			body:    strings.Replace(validPayload, `"3"`, `"1e1"`, 1),
			message: "Number of visitors must be a whole number",
		},
		{
			name:    "empty object",
			body:    `{}`,
			message: "Please fill in all required fields",
		},
		{
			name:    "malformed json",
			body:    `{"visitorName": `,
			message: "Please fill in all required fields",
		},
		{
			name:    "no body",
			body:    "",
			message: "Please fill in all required fields",
		},
		{
			name:    "past date and bad tour",
			body:    strings.Replace(strings.Replace(validPayload, "2999-01-01", "2026-03-09", 1), `"guided"`, `"bus"`, 1),
			message: "Visit date cannot be in the past, Tour type must be one of: guided, self-guided, private",
		},
		{
			name:    "missing phone",
			body:    strings.Replace(validPayload, `"555-0100"`, `""`, 1),
			message: "Phone number is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, newSqliteRepo(t))

			status, res := do(t, app, "POST", "/api/bookings", tt.body)
			if status != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400", status)
			}
			if res.Success {
				t.Fatal("expected success false")
			}
			if res.Message != tt.message {
				t.Errorf("message = %q, want %q", res.Message, tt.message)
			}

			_, list := do(t, app, "GET", "/api/bookings", "")
			if list.Count == nil || *list.Count != 0 {
				t.Errorf("expected nothing stored, count = %v", list.Count)
			}
		})
	}
}

func TestIndex_Empty(t *testing.T) {
	app := newTestApp(t, newSqliteRepo(t))

	status, res := do(t, app, "GET", "/api/bookings", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !res.Success || res.Count == nil || *res.Count != 0 {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if string(res.Data) != "[]" {
		t.Errorf("data = %s, want []", res.Data)
	}
}

func TestIndex_Filters(t *testing.T) {
	app := newTestApp(t, newSqliteRepo(t))
	do(t, app, "POST", "/api/bookings", validPayload)
	do(t, app, "POST", "/api/bookings", strings.Replace(validPayload, `"guided"`, `"private"`, 1))

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", fiber.StatusOK, 2},
		{"?tourType=all", fiber.StatusOK, 2},
		{"?tourType=private", fiber.StatusOK, 1},
		{"?visitDate=2999-01-01", fiber.StatusOK, 2},
		{"?visitDate=2999-01-02", fiber.StatusOK, 0},
		{"?tourType=bus", fiber.StatusBadRequest, 0},
		{"?visitDate=tomorrow", fiber.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			status, res := do(t, app, "GET", "/api/bookings"+tt.query, "")
			if status != tt.status {
				t.Fatalf("status = %d, want %d", status, tt.status)
			}
			if status == fiber.StatusOK && (res.Count == nil || *res.Count != tt.count) {
				t.Errorf("count = %v, want %d", res.Count, tt.count)
			}
		})
	}
}

func TestShow_Errors(t *testing.T) {
	app := newTestApp(t, newSqliteRepo(t))

	status, res := do(t, app, "GET", "/api/bookings/"+uuid.NewString(), "")
	if status != fiber.StatusNotFound || res.Message != "Booking not found" {
		t.Errorf("unknown id: status %d message %q", status, res.Message)
	}

	status, res = do(t, app, "GET", "/api/bookings/not-an-id", "")
	if status != fiber.StatusBadRequest || res.Message != "Invalid booking id" {
		t.Errorf("malformed id: status %d message %q", status, res.Message)
	}
}

type failingRepo struct{}

var errStoreDown = errors.New("connection refused")

func (failingRepo) Create(context.Context, validation.Booking) (*bookingModel.Booking, error) {
	return nil, &repository.PersistenceError{Op: "create", Err: errStoreDown}
}

func (failingRepo) List(context.Context, repository.ListFilter) ([]bookingModel.Booking, error) {
	return nil, &repository.PersistenceError{Op: "list", Err: errStoreDown}
}

func (failingRepo) GetByID(context.Context, string) (*bookingModel.Booking, error) {
	return nil, &repository.PersistenceError{Op: "get", Err: errStoreDown}
}

func (failingRepo) Ping(context.Context) error { return errStoreDown }

func TestStoreUnavailable(t *testing.T) {
	app := newTestApp(t, failingRepo{})

	status, res := do(t, app, "POST", "/api/bookings", validPayload)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if res.Message != "Server error. Please try again later." {
		t.Errorf("message = %q", res.Message)
	}
	if strings.Contains(res.Message, "connection refused") {
		t.Error("internal error leaked into response")
	}

	for _, target := range []string{"/api/bookings", "/api/bookings/" + uuid.NewString(), "/api/admin/bookings/stats"} {
		status, res := do(t, app, "GET", target, "")
		if status != fiber.StatusInternalServerError || res.Success {
			t.Errorf("GET %s: status %d success %v", target, status, res.Success)
		}
	}
}

func TestStats(t *testing.T) {
	app := newTestApp(t, newSqliteRepo(t))
	do(t, app, "POST", "/api/bookings", validPayload)
	do(t, app, "POST", "/api/bookings", strings.Replace(validPayload, `"guided"`, `"private"`, 1))

	status, res := do(t, app, "GET", "/api/admin/bookings/stats", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var stats struct {
		TotalBookings int            `json:"totalBookings"`
		TodayBookings int            `json:"todayBookings"`
		TotalVisitors int            `json:"totalVisitors"`
		ByTourType    map[string]int `json:"byTourType"`
	}
	if err := json.Unmarshal(res.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalBookings != 2 || stats.TodayBookings != 2 || stats.TotalVisitors != 6 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.ByTourType["guided"] != 1 || stats.ByTourType["private"] != 1 || stats.ByTourType["self-guided"] != 0 {
		t.Errorf("unexpected tour type counts: %v", stats.ByTourType)
	}
}
