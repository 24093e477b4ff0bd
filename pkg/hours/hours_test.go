package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffective(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		pause float64
		want  float64
	}{
		{"full day with pause", "09:00", "17:30", 0.5, 8.0},
		{"no pause", "09:00", "17:00", 0, 8.0},
		{"pause exceeds span", "09:00", "10:00", 2, 0},
		{"pause equals span", "09:00", "10:00", 1, 0},
		{"reversed span clamps to zero", "10:00", "09:00", 0, 0},
		{"reversed span never offsets pause", "10:00", "09:00", 1, 0},
		{"overnight is not wraparound", "22:00", "02:00", 0, 0},
		{"zero-length shift", "12:00", "12:00", 0, 0},
		{"fractional result", "09:15", "12:30", 0.25, 3.0},
		{"minutes only span", "09:00", "09:45", 0, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Effective(tt.start, tt.end, tt.pause), 1e-9)
		})
	}
}

func TestEffectiveMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"empty start", "", "17:00"},
		{"empty end", "09:00", ""},
		{"missing colon", "0900", "17:00"},
		{"non-numeric hour", "ab:00", "17:00"},
		{"non-numeric minute", "09:xx", "17:00"},
		{"too many parts", "09:00:00", "17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, Effective(tt.start, tt.end, 0.5))
		})
	}
}
