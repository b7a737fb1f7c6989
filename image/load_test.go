package image

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := fill(3, 2, func(x, y int) color.RGBA {
		if x == 0 {
			return red
		}
		return blue
	})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, pngBytes(t), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
}

func TestLoadErrors(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"missing", filepath.Join(t.TempDir(), "missing.png")},
		{"not an image", garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(context.Background(), tt.src); err == nil {
				t.Error("Load() error = nil")
			}
		})
	}
}

func TestFetch(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/img.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	img, err := Load(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("Load(url) error = %v", err)
	}
	if c := ToRGBA(img).RGBAAt(0, 0); c != red {
		t.Errorf("pixel = %v, want %v", c, red)
	}

	if _, err := Load(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Error("Load(404) error = nil")
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"http://example.com/a.png":  true,
		"https://example.com/a.png": true,
		"/tmp/a.png":                false,
		"~/a.png":                   false,
	}
	for src, want := range tests {
		if got := IsURL(src); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", src, got, want)
		}
	}
}
