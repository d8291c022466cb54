package cli

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ericcole/ViewBox/pkg/geo"
	"github.com/ericcole/ViewBox/pkg/render"
)

// scalarEq compares scalars treating NaN as equal to NaN.
func scalarEq(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

func TestParsePieceSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    pieceSpec
		wantErr bool
	}{
		{
			name:  "labeled full spec",
			input: "badge=topright:4:4:20x20",
			want:  pieceSpec{label: "badge", anchor: geo.TopRight, x: 4, y: 4, size: geo.Sz(20, 20)},
		},
		{
			name:  "empty fields mean NaN",
			input: "topleading:::0.5",
			want:  pieceSpec{label: "topleading", anchor: geo.TopLeading, x: nan, y: nan, size: geo.Sz(0.5, 0.5)},
		},
		{
			name:  "header band",
			input: "header=top-center::0:1x24",
			want:  pieceSpec{label: "header", anchor: geo.TopCenter, x: nan, y: 0, size: geo.Sz(1, 24)},
		},
		{
			name:    "wrong arity",
			input:   "topleft:0:0",
			wantErr: true,
		},
		{
			name:    "bad anchor",
			input:   "middle:0:0:1x1",
			wantErr: true,
		},
		{
			name:    "bad scalar",
			input:   "topleft:q:0:1x1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePieceSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePieceSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errInvalidPiece) {
					t.Errorf("error should wrap errInvalidPiece, got %v", err)
				}
				return
			}
			if got.label != tt.want.label || got.anchor != tt.want.anchor {
				t.Errorf("parsePieceSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if !scalarEq(got.x, tt.want.x) || !scalarEq(got.y, tt.want.y) {
				t.Errorf("position = (%v, %v), want (%v, %v)", got.x, got.y, tt.want.x, tt.want.y)
			}
			if !scalarEq(got.size.Width, tt.want.size.Width) || !scalarEq(got.size.Height, tt.want.size.Height) {
				t.Errorf("size = %v, want %v", got.size, tt.want.size)
			}
		})
	}
}

func TestParseSpanSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    geo.Size
		wantErr bool
	}{
		{"empty means full parent", "", geo.Sz(nan, nan), false},
		{"bare scalar fills both", "0.5", geo.Sz(0.5, 0.5), false},
		{"width only", "20x", geo.Sz(20, nan), false},
		{"height only", "x24", geo.Sz(nan, 24), false},
		{"both extents", "1x24", geo.Sz(1, 24), false},
		{"bad width", "qx2", geo.Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSpanSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSpanSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !scalarEq(got.Width, tt.want.Width) || !scalarEq(got.Height, tt.want.Height) {
				t.Errorf("parseSpanSize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSceneFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		format  string
		want    string
		wantErr bool
	}{
		{"default is svg", "", "", formatSVG, false},
		{"png extension", "scene.PNG", "", formatPNG, false},
		{"svg extension", "scene.svg", "", formatSVG, false},
		{"no extension", "out", "", formatSVG, false},
		{"explicit format wins", "scene.svg", "png", formatPNG, false},
		{"unknown format", "x", "webp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sceneFormat(tt.path, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("sceneFormat(%q, %q) error = %v, wantErr %v", tt.path, tt.format, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errInvalidFormat) {
					t.Errorf("error should wrap errInvalidFormat, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("sceneFormat(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
			}
		})
	}
}

func TestWriteSceneSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	var scene render.Scene
	scene.Add("box", geo.BoxFromRect(geo.Rct(0, 0, 100, 60)))

	if err := writeScene(context.Background(), scene, renderOpts{output: path}); err != nil {
		t.Fatalf("writeScene() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output should contain an <svg> element")
	}
}

func TestWriteScenePNGNeedsOutput(t *testing.T) {
	var scene render.Scene
	scene.Add("box", geo.BoxFromRect(geo.Rct(0, 0, 10, 10)))

	err := writeScene(context.Background(), scene, renderOpts{format: formatPNG})
	if !errors.Is(err, errMissingOutput) {
		t.Fatalf("writeScene() error = %v, want errMissingOutput", err)
	}
}

func TestRunDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	opts := diagramOpts{
		box:    boxFlags{origin: "0,0", size: "200x120"},
		pieces: []string{"header=top-center::0:1x24"},
		render: renderOpts{output: path},
	}

	if err := runDiagram(context.Background(), opts); err != nil {
		t.Fatalf("runDiagram() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), ">header</text>") {
		t.Error("diagram should label the header piece")
	}
}
