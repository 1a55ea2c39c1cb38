package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsValidDate parses a "YYYY-MM-DD" date string.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth parses a "YYYY-MM" year-month string and returns the first day
// of that month in UTC.
func IsValidMonth(monthStr string) (time.Time, bool) {
	month, err := time.Parse("2006-01", monthStr)
	return month, err == nil
}

// IsValidTimeOfDay parses a "HH:MM" clock string (shift start/end times).
func IsValidTimeOfDay(timeStr string) bool {
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

// CIN validation (Tunisian national ID, 8 digits)
func IsValidCIN(cin string) bool {
	return len(cin) == 8 && IsNumeric(cin)
}

// Phone number validation
func IsValidPhoneNumber(phone string) bool {
	// Remove spaces and dashes
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if len(phone) < 8 || len(phone) > 13 {
		return false
	}

	// Local 8-digit numbers, or international with 216 / +216 prefix
	if strings.HasPrefix(phone, "216") || strings.HasPrefix(phone, "+216") {
		cleanPhone := strings.TrimPrefix(strings.TrimPrefix(phone, "+"), "216")
		return len(cleanPhone) == 8 && IsNumeric(cleanPhone)
	}

	return len(phone) == 8 && IsNumeric(phone)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
