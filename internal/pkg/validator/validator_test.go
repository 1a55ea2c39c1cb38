package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2024-06", true},
		{"2024-01", true},
		{"2024-12", true},
		{"2024-13", false},
		{"2024-00", false},
		{"2024", false},
		{"2024-6", false},
		{"06-2024", false},
		{"", false},
	}
	for _, c := range cases {
		parsed, ok := IsValidMonth(c.input)
		if ok != c.want {
			t.Errorf("IsValidMonth(%q) = %v, want %v", c.input, ok, c.want)
		}
		if ok && parsed.Day() != 1 {
			t.Errorf("IsValidMonth(%q) day = %d, want 1", c.input, parsed.Day())
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-06-03", "2024-02-29", "2000-01-01"}
	invalid := []string{"2024-06-31", "2023-02-29", "2024/06/03", "03-06-2024", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:00", "18:05", "00:00", "23:59"}
	invalid := []string{"24:00", "9:00:00", "09h00", "09:60", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidCIN(t *testing.T) {
	valid := []string{"01234567", "99999999"}
	invalid := []string{"1234567", "012345678", "0123456a", ""}
	for _, cin := range valid {
		if !IsValidCIN(cin) {
			t.Errorf("IsValidCIN(%q) = false, want true", cin)
		}
	}
	for _, cin := range invalid {
		if IsValidCIN(cin) {
			t.Errorf("IsValidCIN(%q) = true, want false", cin)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"20123456", "216 20 123 456", "+21620123456", "20-123-456"}
	invalid := []string{"2012345", "201234567", "+2162012345", "abcdefgh", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}
