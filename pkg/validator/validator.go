package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// emailRegex accepts local@domain.tld with a 2-3 letter TLD.
// It is a syntactic filter only.
var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.[A-Za-z]{2,3})+$`)

// dateLayouts are the accepted travel date formats
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ErrInvalidDate indicates a date string in none of the accepted layouts
var ErrInvalidDate = errors.New("invalid date format")

// Importing the package registers the agency rules on gin's validator, so
// `binding` tags work for ShouldBindJSON and for Struct alike.
//
//	notblank     string is not empty after trimming whitespace
//	agencyemail  local@domain.tld with a 2-3 letter TLD
func init() {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		panic("validator: gin binding engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("agencyemail", agencyEmail); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(jsonName)
}

func notBlank(fl playground.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return !IsBlank(fl.Field().String())
}

func agencyEmail(fl playground.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return IsEmail(strings.TrimSpace(fl.Field().String()))
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// FieldError describes one offending field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a list of field errors
type Errors []FieldError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), ", ")
}

// Messages returns the message of every field error in order
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

// Struct runs the `binding` tags of obj. Tag failures are returned as Errors
// in struct field order.
func Struct(obj interface{}) error {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return nil
	}
	if fields, ok := FromBinding(err, obj); ok {
		return fields
	}
	return err
}

// FromBinding converts a bind error into field errors when it came from tag
// validation. Decode failures such as malformed JSON report false.
func FromBinding(err error, obj interface{}) (Errors, bool) {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		var sf reflect.StructField
		if t != nil && t.Kind() == reflect.Struct {
			sf, _ = t.FieldByName(fe.StructField())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe, sf)})
	}
	return out, true
}

func message(fe playground.FieldError, sf reflect.StructField) string {
	label := sf.Tag.Get("label")
	if label == "" {
		label = humanize(fe.Field())
	}

	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "agencyemail", "email":
		return "Please provide a valid email"
	case "url":
		return label + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		if lo, hi, ok := bounds(sf.Tag.Get("binding")); ok {
			return fmt.Sprintf("%s must be between %s and %s", label, lo, hi)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		if fe.Param() == "0" {
			return label + " cannot be negative"
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max", "lte":
		if lo, hi, ok := bounds(sf.Tag.Get("binding")); ok {
			return fmt.Sprintf("%s must be between %s and %s", label, lo, hi)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// bounds reports the lower and upper limit of a tag carrying both
func bounds(tag string) (string, string, bool) {
	var lo, hi string
	for _, part := range strings.Split(tag, ",") {
		name, param, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch name {
		case "min", "gte":
			lo = param
		case "max", "lte":
			hi = param
		}
	}
	return lo, hi, lo != "" && hi != ""
}

// humanize turns a json field name into a label: numberOfTravelers -> Number of travelers
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmail reports whether s has the local@domain.tld shape
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsFuture reports whether t is strictly after now. An instant equal to now is not in the future.
func IsFuture(t, now time.Time) bool {
	return t.After(now)
}

// ParseDate parses a date or timestamp in one of the accepted layouts
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Collector accumulates the hand-written pre-check failures of one payload
type Collector struct {
	errs Errors
}

// Add records an error for field
func (c *Collector) Add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

// Required flags a blank string field
func (c *Collector) Required(field, label, value string) bool {
	if IsBlank(value) {
		c.Add(field, label+" is required")
		return false
	}
	return true
}

// Present flags a field that was absent from the payload
func (c *Collector) Present(field, label string, present bool) bool {
	if !present {
		c.Add(field, label+" is required")
	}
	return present
}

// FutureDate parses value and flags it unless strictly after now
func (c *Collector) FutureDate(field, label, value string, now time.Time) time.Time {
	if IsBlank(value) {
		c.Add(field, label+" is required")
		return time.Time{}
	}
	t, err := ParseDate(value)
	if err != nil {
		c.Add(field, label+" must be a valid date")
		return time.Time{}
	}
	if !IsFuture(t, now) {
		c.Add(field, label+" must be in the future")
	}
	return t
}

// Err returns the collected errors, or nil if there are none
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
