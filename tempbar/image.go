// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tempbar

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/physic"
)

var (
	cold = color.NRGBA{0x00, 0x40, 0xff, 0xff}
	mild = color.NRGBA{0x20, 0xc0, 0x20, 0xff}
	hot  = color.NRGBA{0xff, 0x20, 0x00, 0xff}
)

// fraction returns the position of t on the scale, clamped to [0, 1].
func fraction(t, min, max physic.Temperature) float64 {
	f := float64(t-min) / float64(max-min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Bar renders t as a w x h bar filled from the left with a blue to red
// gradient. The unfilled part is black.
func Bar(t physic.Temperature, w, h int, min, max physic.Temperature) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	grad := gg.NewLinearGradient(0, 0, float64(w), 0)
	grad.AddColorStop(0, cold)
	grad.AddColorStop(0.5, mild)
	grad.AddColorStop(1, hot)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, fraction(t, min, max)*float64(w), float64(h))
	dc.Fill()
	return dc.Image()
}

// Gauge renders t as a labelled bar on a white background, for a PNG file or
// an e-paper display.
func Gauge(t physic.Temperature, w, h int, min, max physic.Temperature) (image.Image, error) {
	if w <= 0 || h < 4 {
		return nil, fmt.Errorf("tempbar: gauge too small %dx%d", w, h)
	}
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("tempbar: %w", err)
	}
	face := truetype.NewFace(font, &truetype.Options{Size: float64(h) / 3})

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(Bar(t, w, h/2, min, max), 0, h-h/2)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, float64(h-h/2)+0.5, float64(w)-1, float64(h/2)-1)
	dc.Stroke()
	dc.SetFontFace(face)
	dc.DrawStringAnchored(t.String(), float64(w)/2, float64(h)/4, 0.5, 0.5)
	return dc.Image(), nil
}
