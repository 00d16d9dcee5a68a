package imageutil

import (
	"image"
	"image/color"
	"image/gif"
	"math"
	"path/filepath"
	"testing"
)

func TestNewNRGBAImage(t *testing.T) {
	img := NewNRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}

	empty := NewNRGBAImage(-3, 4)
	if empty.Width() != 0 || empty.Height() != 4 {
		t.Errorf("Negative width should clamp to 0, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestNRGBAImageGetSetRGB(t *testing.T) {
	img := NewNRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if a := img.NRGBAAt(5, 5).A; a != 255 {
		t.Errorf("SetRGB should write opaque pixels, alpha=%d", a)
	}
}

func TestNRGBAImageClone(t *testing.T) {
	img := NewNRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	for _, interp := range []Interpolation{
		InterpolationNearest, InterpolationApproxLinear,
		InterpolationLinear, InterpolationArea,
	} {
		resized := Resize(img, 10, 10, interp)
		if resized.Width() != 10 || resized.Height() != 10 {
			t.Errorf("%s: expected 10x10, got %dx%d", interp, resized.Width(), resized.Height())
		}
	}

	resized := Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeNonPositive(t *testing.T) {
	img := CreateGradientImage(20, 20)
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		r := Resize(img, dims[0], dims[1], InterpolationNearest)
		if r.Width() != 0 || r.Height() != 0 {
			t.Errorf("Resize(%d,%d) should be empty, got %dx%d",
				dims[0], dims[1], r.Width(), r.Height())
		}
	}
}

func TestResizeKeepsAlpha(t *testing.T) {
	img := CreateTransparentImage(8, 8, RGB{R: 200, G: 10, B: 10})
	r := Resize(img, 2, 2, InterpolationNearest)
	if a := r.NRGBAAt(1, 1).A; a != 0 {
		t.Errorf("Transparent source should stay transparent, alpha=%d", a)
	}
}

func TestResizeNearestSolid(t *testing.T) {
	c := RGB{R: 12, G: 34, B: 56}
	img := CreateSolidImage(40, 40, c)
	r := Resize(img, 3, 3, InterpolationNearest)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := r.GetRGB(x, y); got != c {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, c, got)
			}
		}
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, name := range []string{"nearest", "approx", "linear", "area"} {
		i, ok := ParseInterpolation(name)
		if !ok || i.String() != name {
			t.Errorf("ParseInterpolation(%q) = %v, %v", name, i, ok)
		}
	}
	if _, ok := ParseInterpolation("lanczos"); ok {
		t.Error("Unknown interpolation should not parse")
	}
}

func TestCropSquare(t *testing.T) {
	img := CreateSplitImage(30, 10, RGB{R: 255}, RGB{B: 255})
	sq := CropSquare(img)
	if sq.Bounds().Dx() != 10 || sq.Bounds().Dy() != 10 {
		t.Fatalf("Expected 10x10, got %v", sq.Bounds())
	}
}

func TestConvolveIdentity(t *testing.T) {
	field := NewField(5, 4)
	for y := range field {
		for x := range field[y] {
			field[y][x] = float64(x*10 + y)
		}
	}
	identity := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	out := ConvolveFloat(field, identity)
	for y := range field {
		for x := range field[y] {
			if out[y][x] != field[y][x] {
				t.Errorf("Identity kernel changed (%d,%d): %f != %f", x, y, out[y][x], field[y][x])
			}
		}
	}
}

func TestConvolveEmpty(t *testing.T) {
	if out := ConvolveFloat(nil, SobelXKernel()); out != nil {
		t.Errorf("Empty field should give nil, got %v", out)
	}
}

func TestSobelFlatFieldIsZero(t *testing.T) {
	field := NewField(6, 6)
	for y := range field {
		for x := range field[y] {
			field[y][x] = 0.42
		}
	}
	mag := SobelMagnitude(field)
	for y := range mag {
		for x := range mag[y] {
			if math.Abs(mag[y][x]) > 1e-12 {
				t.Errorf("Flat field gradient at (%d,%d) = %f", x, y, mag[y][x])
			}
		}
	}
}

func TestSobelStep(t *testing.T) {
	// Columns 0-1 are 0, columns 2-3 are 1.
	field := NewField(4, 3)
	for y := range field {
		field[y][2], field[y][3] = 1, 1
	}
	gx, gy := SobelGradients(field)

	// Border replication: row 0 taps row 0 twice, still a pure x step.
	if gx[1][1] != 4 || gx[1][2] != 4 {
		t.Errorf("Expected gx=4 on both sides of the step, got %f, %f", gx[1][1], gx[1][2])
	}
	if gx[1][0] != 0 || gx[1][3] != 0 {
		t.Errorf("Expected gx=0 away from the step, got %f, %f", gx[1][0], gx[1][3])
	}
	for y := range gy {
		for x := range gy[y] {
			if gy[y][x] != 0 {
				t.Errorf("Vertical gradient should be zero, got %f at (%d,%d)", gy[y][x], x, y)
			}
		}
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateCheckerboardImage(64, 64, 8)

	for _, name := range []string{"test.png", "test.bmp"} {
		path := filepath.Join(tmpDir, name)
		if err := SaveImage(img.NRGBA, path); err != nil {
			t.Fatalf("Failed to save %s: %v", name, err)
		}
		loaded, err := LoadImage(path)
		if err != nil {
			t.Fatalf("Failed to load %s: %v", name, err)
		}
		mse := CalculateMSE(img, Resize(loaded, 64, 64, InterpolationNearest))
		if mse > 0.01 {
			t.Errorf("%s should be lossless, MSE=%f", name, mse)
		}
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveLoadGIF(t *testing.T) {
	pal := color.Palette{color.Black, color.White}
	g := &gif.GIF{}
	for i := 0; i < 3; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
		frame.SetColorIndex(i, i, 1)
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10)
	}
	path := filepath.Join(t.TempDir(), "anim.gif")
	if err := SaveGIF(g, path); err != nil {
		t.Fatalf("SaveGIF: %v", err)
	}
	loaded, err := LoadGIF(path)
	if err != nil {
		t.Fatalf("LoadGIF: %v", err)
	}
	if len(loaded.Image) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(loaded.Image))
	}
}

func TestCalculateMSE(t *testing.T) {
	img1 := NewNRGBAImage(10, 10)
	img2 := NewNRGBAImage(10, 10)

	if mse := CalculateMSE(img1, img2); mse != 0 {
		t.Errorf("Identical images should have MSE=0, got %f", mse)
	}

	img1.Fill(RGB{R: 0, G: 0, B: 0}.ToColor())
	img2.Fill(RGB{R: 10, G: 10, B: 10}.ToColor())
	if mse := CalculateMSE(img1, img2); mse != 100.0 {
		t.Errorf("Expected MSE=100, got %f", mse)
	}
}
