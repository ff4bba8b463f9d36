package pages

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"home", true},
		{"about", true},
		{"programs", true},
		{"membership", true},
		{"camps", true},
		{"contact", true},
		{"not-a-real-page", false},
		{"", false},
		{"HOME", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.key); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestFormAllowList(t *testing.T) {
	for _, k := range FormAllowed() {
		if !IsValid(k) {
			t.Errorf("form-allowed key %q is not a known page", k)
		}
	}

	if IsFormAllowed("home") {
		t.Error("home must not be form-allowed")
	}
	if !IsFormAllowed("membership") {
		t.Error("membership must be form-allowed")
	}
	if IsFormAllowed("not-a-real-page") {
		t.Error("unknown page must not be form-allowed")
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"hy", "hy"},
		{"", "en"},
		{"fr", "en"},
		{"EN", "en"},
	}
	for _, tt := range tests {
		if got := NormalizeLocale(tt.in); got != tt.want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
