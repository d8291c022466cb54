package units

import (
	"errors"
	"testing"
)

func TestUnitString(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{Distance, "distance"},
		{Pixels, "pixels"},
		{Percent, "percent"},
		{Area, "area"},
		{Unit(99), "distance"},
	}
	for _, tt := range tests {
		if got := tt.unit.String(); got != tt.want {
			t.Errorf("Unit(%d).String() = %q, want %q", int(tt.unit), got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Unit
	}{
		{"Canonical", "distance", Distance},
		{"Short", "dist", Distance},
		{"Pixels", "pixels", Pixels},
		{"PixelsShort", "px", Pixels},
		{"UpperCase", "PX", Pixels},
		{"Percent", "percent", Percent},
		{"PercentSign", "%", Percent},
		{"Area", "area", Area},
		{"Padded", "  area  ", Area},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.in)
			if err != nil {
				t.Fatalf("ParseUnit(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "meters", "pixel s"} {
		if _, err := ParseUnit(bad); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("ParseUnit(%q) error = %v, want ErrUnknownUnit", bad, err)
		}
	}
}

func TestParseUnitRoundTrip(t *testing.T) {
	for _, u := range []Unit{Distance, Pixels, Percent, Area} {
		got, err := ParseUnit(u.String())
		if err != nil {
			t.Fatalf("ParseUnit(%q) error: %v", u.String(), err)
		}
		if got != u {
			t.Errorf("ParseUnit(%q) = %v, want %v", u.String(), got, u)
		}
	}
}
