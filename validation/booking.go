package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"museum-booking/constants"
	"museum-booking/types"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/now"
)

// emailPattern only checks the shape local@domain.tld.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("lax_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// Limits live in constants; aliases carry them into the struct tags.
	v.RegisterAlias("visitor_name", fmt.Sprintf("min=%d", constants.MinVisitorNameRune))
	v.RegisterAlias("visitor_count", fmt.Sprintf("min=%d,max=%d", constants.MinVisitors, constants.MaxVisitors))
	v.RegisterAlias("tour_type", "oneof="+strings.Join(constants.TourTypes(), " "))
	v.RegisterAlias("special_requests", fmt.Sprintf("max=%d", constants.MaxSpecialRequestsRune))
	return v
}

// Input is an untrusted booking request as it arrives on the wire.
// NumberOfVisitors holds whatever the JSON decoder produced for it.
type Input struct {
	VisitorName      string
	Email            string
	Phone            string
	VisitDate        string
	NumberOfVisitors interface{}
	TourType         string
	SpecialRequests  string
}

// Fields is the normalized shape of a booking checked against the schema.
type Fields struct {
	VisitorName      string    `validate:"required,visitor_name"`
	Email            string    `validate:"required,lax_email"`
	Phone            string    `validate:"required"`
	VisitDate        time.Time `validate:"gtefield=Today"`
	NumberOfVisitors int       `validate:"visitor_count"`
	TourType         string    `validate:"required,tour_type"`
	SpecialRequests  string    `validate:"special_requests"`

	Today time.Time `validate:"-"`
}

// fieldOrder is the declaration order violations are reported in.
var fieldOrder = []string{
	"VisitorName",
	"Email",
	"Phone",
	"VisitDate",
	"NumberOfVisitors",
	"TourType",
	"SpecialRequests",
}

var messages = map[string]string{
	"VisitorName.required":      "Visitor name is required",
	"VisitorName.min":           fmt.Sprintf("Name must be at least %d characters", constants.MinVisitorNameRune),
	"Email.required":            "Email is required",
	"Email.lax_email":           "Please enter a valid email address",
	"Phone.required":            "Phone number is required",
	"VisitDate.required":        "Visit date is required",
	"VisitDate.parse":           "Please enter a valid visit date",
	"VisitDate.gtefield":        "Visit date cannot be in the past",
	"NumberOfVisitors.required": "Number of visitors is required",
	"NumberOfVisitors.integer":  "Number of visitors must be a whole number",
	"NumberOfVisitors.min":      fmt.Sprintf("At least %d visitor required", constants.MinVisitors),
	"NumberOfVisitors.max":      fmt.Sprintf("Maximum %d visitors per booking", constants.MaxVisitors),
	"TourType.required":         "Tour type is required",
	"TourType.oneof":            "Tour type must be one of: " + strings.Join(constants.TourTypes(), ", "),
	"SpecialRequests.max":       fmt.Sprintf("Special requests cannot exceed %d characters", constants.MaxSpecialRequestsRune),
}

// Violations is an ordered list of human-readable rule failures.
type Violations []string

func (v Violations) Error() string {
	return strings.Join(v, ", ")
}

// Booking is a booking request that passed every rule. Only ValidateBooking
// can produce one.
type Booking struct {
	fields Fields
}

func (b Booking) VisitorName() string     { return b.fields.VisitorName }
func (b Booking) Email() string           { return b.fields.Email }
func (b Booking) Phone() string           { return b.fields.Phone }
func (b Booking) VisitDate() types.Date   { return types.DateOf(b.fields.VisitDate) }
func (b Booking) NumberOfVisitors() int   { return b.fields.NumberOfVisitors }
func (b Booking) TourType() string        { return b.fields.TourType }
func (b Booking) SpecialRequests() string { return b.fields.SpecialRequests }

// Today returns the calendar day of clock in clock's location.
func Today(clock time.Time) time.Time {
	return types.DateOf(now.With(clock).BeginningOfDay()).Time
}

// ValidateBooking normalizes in and applies every booking rule with clock
// as the moment of submission. The Booking result is only meaningful when
// the returned Violations is empty.
func ValidateBooking(in Input, clock time.Time) (Booking, Violations) {
	failed := map[string]string{}

	f := Fields{
		VisitorName:     strings.TrimSpace(in.VisitorName),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:           strings.TrimSpace(in.Phone),
		TourType:        strings.TrimSpace(in.TourType),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		Today:           Today(clock),
	}

	if f.VisitorName == "" {
		failed["VisitorName"] = messages["VisitorName.required"]
	}
	if f.Email == "" {
		failed["Email"] = messages["Email.required"]
	}
	if f.Phone == "" {
		failed["Phone"] = messages["Phone.required"]
	}
	if f.TourType == "" {
		failed["TourType"] = messages["TourType.required"]
	}

	visitDate, rule := coerceDate(in.VisitDate, clock.Location())
	if rule != "" {
		failed["VisitDate"] = messages["VisitDate."+rule]
	}
	f.VisitDate = visitDate

	visitors, rule := coerceVisitors(in.NumberOfVisitors)
	if rule != "" {
		failed["NumberOfVisitors"] = messages["NumberOfVisitors."+rule]
	}
	f.NumberOfVisitors = visitors

	violations := collect(f, failed)
	if len(violations) > 0 {
		return Booking{}, violations
	}
	return Booking{fields: f}, nil
}

// Check applies the schema to already-normalized fields. Storage layers
// call it before writing so a direct caller cannot bypass the rules.
func Check(f Fields, clock time.Time) Violations {
	f.Today = Today(clock)
	f.VisitDate = types.DateOf(f.VisitDate).Time
	return collect(f, map[string]string{})
}

func collect(f Fields, failed map[string]string) Violations {
	if err := validate.Struct(f); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			failed["_"] = err.Error()
		}
		for _, fe := range errs {
			if _, ok := failed[fe.StructField()]; ok {
				continue
			}
			msg, ok := messages[fe.StructField()+"."+fe.ActualTag()]
			if !ok {
				msg = fe.Error()
			}
			failed[fe.StructField()] = msg
		}
	}

	var violations Violations
	for _, name := range fieldOrder {
		if msg, ok := failed[name]; ok {
			violations = append(violations, msg)
		}
	}
	if msg, ok := failed["_"]; ok {
		violations = append(violations, msg)
	}
	return violations
}

// coerceDate parses a calendar date. It returns the failed rule name, if any.
func coerceDate(value string, loc *time.Location) (time.Time, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, "required"
	}
	if d, err := types.ParseDate(value); err == nil {
		return d.Time, ""
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, "parse"
	}
	return types.DateOf(t.In(loc)).Time, ""
}

// coerceVisitors turns the decoded JSON value into a visitor count. It
// returns the failed rule name, if any.
func coerceVisitors(value interface{}) (int, string) {
	switch v := value.(type) {
	case nil:
		return 0, "required"
	case float64:
		return wholeNumber(v)
	case int:
		return v, ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, "required"
		}
		// decimal integers only: "1e1" or "2.0" are not visitor counts
		n, err := strconv.Atoi(s)
		if err != nil {
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
				return 0, "integer"
			}
			if strings.HasPrefix(s, "-") {
				return constants.MinVisitors - 1, ""
			}
			return constants.MaxVisitors + 1, ""
		}
		return n, ""
	default:
		return 0, "integer"
	}
}

func wholeNumber(f float64) (int, string) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, "integer"
	}
	switch {
	case f > constants.MaxVisitors:
		return constants.MaxVisitors + 1, ""
	case f < constants.MinVisitors:
		return constants.MinVisitors - 1, ""
	}
	return int(f), ""
}
