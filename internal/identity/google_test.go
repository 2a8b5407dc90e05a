package identity

import "testing"

func TestDomainAllowed(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		allowed []string
		want    bool
	}{
		{"empty list allows all", "a@anything.com", nil, true},
		{"matching domain", "a@corp.com", []string{"corp.com"}, true},
		{"case-insensitive match", "a@Corp.COM", []string{"corp.com"}, true},
		{"non-matching domain", "a@other.com", []string{"corp.com"}, false},
		{"second domain matches", "a@edu.org", []string{"corp.com", "edu.org"}, true},
		{"missing at sign", "not-an-email", []string{"corp.com"}, false},
		{"trailing at sign", "a@", []string{"corp.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainAllowed(tt.email, tt.allowed); got != tt.want {
				t.Errorf("DomainAllowed(%q, %v) = %v, want %v", tt.email, tt.allowed, got, tt.want)
			}
		})
	}
}
