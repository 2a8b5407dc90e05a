package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestTextValue(t *testing.T) {
	tests := []struct {
		name string
		in   pgtype.Text
		want string
	}{
		{name: "valid", in: pgtype.Text{String: "partial: 2 drives failed", Valid: true}, want: "partial: 2 drives failed"},
		{name: "null", in: pgtype.Text{}, want: ""},
		{name: "valid empty string", in: pgtype.Text{String: "", Valid: true}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textValue(tt.in); got != tt.want {
				t.Errorf("textValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeValue(t *testing.T) {
	stamp := time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   pgtype.Timestamptz
		want time.Time
	}{
		{name: "valid", in: pgtype.Timestamptz{Time: stamp, Valid: true}, want: stamp},
		{name: "null", in: pgtype.Timestamptz{}, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeValue(tt.in); !got.Equal(tt.want) {
				t.Errorf("timeValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
