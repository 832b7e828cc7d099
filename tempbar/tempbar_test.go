// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tempbar

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func isBlack(r, g, b uint32) bool {
	return r < 0x800 && g < 0x800 && b < 0x800
}

func TestBar(t *testing.T) {
	img := Bar(DefaultMaximum, 10, 1, DefaultMinimum, DefaultMaximum)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 1 {
		t.Fatalf("bounds %v", b)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if b <= r {
		t.Errorf("left of a full bar is not blue r=%x b=%x", r, b)
	}
	r, _, b, _ = img.At(9, 0).RGBA()
	if r <= b {
		t.Errorf("right of a full bar is not red r=%x b=%x", r, b)
	}

	img = Bar(DefaultMinimum, 10, 1, DefaultMinimum, DefaultMaximum)
	for x := 0; x < 10; x++ {
		if r, g, b, _ := img.At(x, 0).RGBA(); !isBlack(r, g, b) {
			t.Errorf("empty bar pixel %d not black", x)
		}
	}

	// 35°C is the middle of the default scale.
	img = Bar(physic.ZeroCelsius+35*physic.Kelvin, 10, 1, DefaultMinimum, DefaultMaximum)
	if r, g, b, _ := img.At(1, 0).RGBA(); isBlack(r, g, b) {
		t.Error("filled part of a half bar is black")
	}
	if r, g, b, _ := img.At(8, 0).RGBA(); !isBlack(r, g, b) {
		t.Error("unfilled part of a half bar is not black")
	}
}

func TestFractionClamps(t *testing.T) {
	if f := fraction(DefaultMinimum-physic.Kelvin, DefaultMinimum, DefaultMaximum); f != 0 {
		t.Errorf("fraction below scale = %v", f)
	}
	if f := fraction(DefaultMaximum+physic.Kelvin, DefaultMinimum, DefaultMaximum); f != 1 {
		t.Errorf("fraction above scale = %v", f)
	}
}

func TestGauge(t *testing.T) {
	img, err := Gauge(physic.ZeroCelsius+25*physic.Kelvin, 120, 40, DefaultMinimum, DefaultMaximum)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 40 {
		t.Errorf("bounds %v", b)
	}
	if _, err := Gauge(physic.ZeroCelsius, 0, 40, DefaultMinimum, DefaultMaximum); err == nil {
		t.Error("expected error for an empty gauge")
	}
}

func TestDisplay(t *testing.T) {
	buf := &bytes.Buffer{}
	if _, err := NewWriter(buf, &Opts{}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewWriter(buf, &Opts{X: 4, Minimum: DefaultMaximum, Maximum: DefaultMinimum}); err == nil {
		t.Error("expected error for an inverted scale")
	}
	d, err := NewWriter(buf, &Opts{X: 8})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Display(physic.ZeroCelsius + 100*physic.Kelvin); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "\r\033[0m") || !strings.HasSuffix(s, "\033[0m ") {
		t.Errorf("unexpected output %q", s)
	}
	if err := d.Halt(); err != nil {
		t.Error(err)
	}
	if len(d.String()) == 0 {
		t.Error("invalid String() result")
	}
}

func TestWrite(t *testing.T) {
	d, err := NewWriter(&bytes.Buffer{}, &Opts{X: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Write([]byte{1, 2}); err == nil {
		t.Error("expected error for a partial pixel")
	}
	if n, err := d.Write([]byte{0xff, 0, 0, 0, 0, 0xff}); err != nil || n != 6 {
		t.Errorf("Write() = %d, %v", n, err)
	}
}

func TestDrawFirstRowOnly(t *testing.T) {
	d, err := NewWriter(&bytes.Buffer{}, &Opts{X: 4})
	if err != nil {
		t.Fatal(err)
	}
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		src.Set(x, 0, color.NRGBA{0xff, 0, 0, 0xff})
		for y := 1; y < 3; y++ {
			src.Set(x, y, color.NRGBA{0, 0, 0xff, 0xff})
		}
	}
	if err := d.Draw(d.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if p := d.pixels[3*i : 3*i+3]; p[0] != 0xff || p[2] != 0 {
			t.Errorf("pixel %d = %x expected red", i, p)
		}
	}
}
