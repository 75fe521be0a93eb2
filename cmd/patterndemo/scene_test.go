package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/native"
)

func checkLeaks(t *testing.T) {
	t.Helper()
	before := native.LiveObjects()
	t.Cleanup(func() {
		if after := native.LiveObjects(); after != before {
			t.Errorf("live objects: got %d, want %d", after, before)
		}
	})
}

func mustParse(t *testing.T, src string) *Scene {
	t.Helper()
	sc, err := ParseScene([]byte(src))
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	return sc
}

func TestParseSceneDefaults(t *testing.T) {
	sc := mustParse(t, "layers: []\n")
	if sc.Width != defaultWidth || sc.Height != defaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", sc.Width, sc.Height, defaultWidth, defaultHeight)
	}
}

func TestParseSceneInvalidYAML(t *testing.T) {
	if _, err := ParseScene([]byte("width: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestRenderSolidBackground(t *testing.T) {
	checkLeaks(t)

	sc := mustParse(t, `
width: 4
height: 4
background: "#ff0000"
`)
	surface, err := sc.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer surface.Release()

	img, err := surface.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	got := img.RGBAAt(2, 2)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("pixel = %v, want opaque red", got)
	}
}

func TestRenderLinearLayer(t *testing.T) {
	checkLeaks(t)

	sc := mustParse(t, `
width: 16
height: 2
layers:
  - type: linear
    points: [0, 0, 16, 0]
    stops:
      - {offset: 0, color: "#000000"}
      - {offset: 1, color: "#ffffff"}
`)
	surface, err := sc.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer surface.Release()

	img, _ := surface.Image()
	left, right := img.RGBAAt(0, 0), img.RGBAAt(15, 0)
	if left.R >= right.R {
		t.Errorf("gradient not increasing: left %v right %v", left, right)
	}
	if right.A != 255 {
		t.Errorf("right alpha = %d, want 255", right.A)
	}
}

func TestBuildLayerErrors(t *testing.T) {
	tests := []struct {
		name  string
		layer string
	}{
		{"unknown type", "type: conic"},
		{"bad color", `{type: solid, color: "#zz0000"}`},
		{"linear points", "{type: linear, points: [0, 0, 1]}"},
		{"radial circles", "{type: radial, circles: [0, 0, 1]}"},
		{"bad extend", "{type: linear, points: [0, 0, 1, 0], extend: sideways}"},
		{"surface without image", "type: surface"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkLeaks(t)
			sc := mustParse(t, "layers:\n  - "+tt.layer+"\n")
			if _, err := sc.Build(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBuildReleasesEarlierLayersOnError(t *testing.T) {
	checkLeaks(t)

	sc := mustParse(t, `
layers:
  - {type: solid, color: "#00ff00"}
  - {type: radial, circles: [0, 0, 1, 0, 0, 5]}
  - {type: conic}
`)
	if _, err := sc.Build(); err == nil {
		t.Fatal("expected error")
	}
}

func TestSingularTransform(t *testing.T) {
	checkLeaks(t)

	sc := mustParse(t, `
layers:
  - type: solid
    transform: {scale: [0, 1]}
`)
	_, err := sc.Build()
	if !errors.Is(err, paint.StatusInvalidMatrix) {
		t.Errorf("err = %v, want InvalidMatrix", err)
	}
}

func TestSurfaceLayer(t *testing.T) {
	checkLeaks(t)

	dir := t.TempDir()
	src, err := paint.NewImageSurface(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	blue, err := paint.NewSolidRGB(0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Paint(blue); err != nil {
		t.Fatal(err)
	}
	blue.Release()
	if err := src.WritePNG(filepath.Join(dir, "tile.png")); err != nil {
		t.Fatal(err)
	}
	src.Release()

	sc := mustParse(t, `
width: 6
height: 6
layers:
  - {type: surface, image: tile.png, extend: repeat, filter: nearest}
`)
	sc.dir = dir

	surface, err := sc.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer surface.Release()

	img, _ := surface.Image()
	if got := img.RGBAAt(5, 5); got.B != 255 || got.A != 255 {
		t.Errorf("repeated pixel = %v, want opaque blue", got)
	}
}

func TestInspect(t *testing.T) {
	checkLeaks(t)

	sc := mustParse(t, `
layers:
  - {type: solid, color: "#ff0000", opacity: 0.5, alpha: 0.25}
  - type: radial
    circles: [10, 10, 0, 10, 10, 20]
    extend: reflect
    stops:
      - {offset: 1, color: "#0000ff"}
      - {offset: 0, color: "#ff0000"}
`)
	infos, err := sc.Inspect()
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d infos, want 2", len(infos))
	}

	solid := infos[0]
	if solid.Type != paint.PatternTypeSolid {
		t.Errorf("type = %v, want solid", solid.Type)
	}
	if solid.Color == nil || solid.Color.R != 1 || solid.Color.A != 0.5 {
		t.Errorf("color = %v, want red at 0.5", solid.Color)
	}
	if solid.Alpha != 0.25 {
		t.Errorf("alpha = %v, want 0.25", solid.Alpha)
	}
	if solid.ReferenceCount != 1 {
		t.Errorf("reference count = %d, want 1", solid.ReferenceCount)
	}
	if !solid.Matrix.IsIdentity() {
		t.Errorf("matrix = %v, want identity", solid.Matrix)
	}

	radial := infos[1]
	if radial.Type != paint.PatternTypeRadial {
		t.Errorf("type = %v, want radial", radial.Type)
	}
	if len(radial.Stops) != 2 || radial.Stops[0].Offset != 0 || radial.Stops[1].Offset != 1 {
		t.Errorf("stops = %v, want sorted offsets 0 and 1", radial.Stops)
	}
	if radial.Extend == nil || *radial.Extend != paint.ExtendReflect {
		t.Errorf("extend = %v, want reflect", radial.Extend)
	}
	if len(radial.Circles) != 2 || radial.Circles[1].R != 20 {
		t.Errorf("circles = %v", radial.Circles)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := &Transform{Translate: []float64{10, 5}, Scale: []float64{2, 2}}
	m := tr.matrix()
	// user (10,5) is the pattern origin; user (12,5) is pattern (1,0).
	if x, y := m.TransformPoint(10, 5); x != 0 || y != 0 {
		t.Errorf("origin maps to (%v,%v), want (0,0)", x, y)
	}
	if x, y := m.TransformPoint(12, 5); x != 1 || y != 0 {
		t.Errorf("(12,5) maps to (%v,%v), want (1,0)", x, y)
	}
}
