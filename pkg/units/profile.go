package units

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// ErrInvalidProfile reports a display profile that decoded but failed
// validation in [ParseProfile].
var ErrInvalidProfile = errors.New("invalid display profile")

// Profile is a display configuration loaded from a TOML file. It bundles
// the metrics for this package with the layout direction for
// [geo.SetRightToLeft]; applying it to process state is left to the caller.
type Profile struct {
	Name        string
	Metrics     Metrics
	RightToLeft bool
}

// LoadProfile reads and parses a display profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a TOML display profile:
//
//	name = "tablet"
//	scale = 2.0
//	direction = "rtl"
//
//	[screen]
//	width = 390
//	height = 844
//
// Every field is optional. Omitted (or zero) scale and screen fall back to
// [DefaultMetrics]; omitted direction means left-to-right. Negative scale,
// negative or half-specified screen extents, and unrecognized direction
// names return [ErrInvalidProfile].
func ParseProfile(data []byte) (Profile, error) {
	var file profileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Profile{}, err
	}

	p := Profile{Name: file.Name, Metrics: DefaultMetrics()}

	if file.Scale != 0 {
		if file.Scale < 0 {
			return Profile{}, fmt.Errorf("%w: scale must be positive (got %g)", ErrInvalidProfile, file.Scale)
		}
		p.Metrics.Scale = file.Scale
	}

	if file.Screen.Width != 0 || file.Screen.Height != 0 {
		if file.Screen.Width <= 0 || file.Screen.Height <= 0 {
			return Profile{}, fmt.Errorf("%w: screen must be positive (got %g x %g)",
				ErrInvalidProfile, file.Screen.Width, file.Screen.Height)
		}
		p.Metrics.Screen = geo.Sz(file.Screen.Width, file.Screen.Height)
	}

	switch file.Direction {
	case "", "ltr":
	case "rtl":
		p.RightToLeft = true
	default:
		return Profile{}, fmt.Errorf("%w: direction must be %q or %q (got %q)",
			ErrInvalidProfile, "ltr", "rtl", file.Direction)
	}

	return p, nil
}

type profileFile struct {
	Name      string  `toml:"name"`
	Scale     float64 `toml:"scale"`
	Direction string  `toml:"direction"`
	Screen    struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"screen"`
}
