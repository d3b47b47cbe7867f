package httpServices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"museum-booking/validation"
)

// ErrNotFound is returned when the API has no booking with the given id.
var ErrNotFound = errors.New("booking not found")

// APIError is a failure envelope returned by the booking API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking API returned %d: %s", e.StatusCode, e.Message)
}

// BookingClient is the visit form's view of the booking API. Its pre-flight
// validation only spares a round trip; the server re-validates everything.
type BookingClient struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

// NewClient builds a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func NewClient(baseURL string) *BookingClient {
	return &BookingClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// SubmitBooking validates form locally and, when it passes, posts it.
// Local violations are returned as validation.Violations without a request.
func (c *BookingClient) SubmitBooking(ctx context.Context, form BookingForm) (*Booking, error) {
	_, violations := validation.ValidateBooking(validation.Input{
		VisitorName:      form.VisitorName,
		Email:            form.Email,
		Phone:            form.Phone,
		VisitDate:        form.VisitDate,
		NumberOfVisitors: form.NumberOfVisitors,
		TourType:         form.TourType,
		SpecialRequests:  form.SpecialRequests,
	}, c.now())
	if len(violations) > 0 {
		return nil, violations
	}

	form.VisitorName = strings.TrimSpace(form.VisitorName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.SpecialRequests = strings.TrimSpace(form.SpecialRequests)

	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}

	var apiResp bookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", bytes.NewReader(body), &apiResp); err != nil {
		return nil, err
	}
	return apiResp.Data, nil
}

// ListBookings fetches bookings newest first. Empty filters are omitted.
func (c *BookingClient) ListBookings(ctx context.Context, tourType, visitDate string) ([]Booking, error) {
	query := url.Values{}
	if tourType != "" {
		query.Set("tourType", tourType)
	}
	if visitDate != "" {
		query.Set("visitDate", visitDate)
	}
	path := "/bookings"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var apiResp bookingListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.Data, nil
}

func (c *BookingClient) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var apiResp bookingResponse
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.Data, nil
}

func (c *BookingClient) Health(ctx context.Context) (*Health, error) {
	var apiResp Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

func (c *BookingClient) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusNotFound && strings.HasPrefix(path, "/bookings/") {
			return ErrNotFound
		}
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(bodyBytes, &failure)
		if failure.Message == "" {
			failure.Message = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: failure.Message}
	}

	return json.Unmarshal(bodyBytes, out)
}
