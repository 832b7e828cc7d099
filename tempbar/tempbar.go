// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tempbar shows a temperature as a 1D bar on the terminal (stdout)
// using ANSI color codes, and renders the same bar as an image.
//
// The bar spans the LM75 range by default, cold readings on the left in blue,
// hot readings on the right in red.
package tempbar

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
)

const (
	// Default scale, the LM75 measurement range.
	DefaultMinimum physic.Temperature = physic.ZeroCelsius - 55*physic.Kelvin
	DefaultMaximum physic.Temperature = physic.ZeroCelsius + 125*physic.Kelvin
)

// Opts represents the options available for this display.
type Opts struct {
	// Number of character cells of the bar.
	X       int
	Palette *ansi256.Palette
	// Scale of the bar. Both zero selects DefaultMinimum and DefaultMaximum.
	Minimum physic.Temperature
	Maximum physic.Temperature

	_ struct{}
}

// Dev is a temperature bar that outputs to the console.
type Dev struct {
	w        io.Writer
	l        int
	palette  ansi256.Palette
	min, max physic.Temperature

	pixels []byte
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes ANSI sequences to w.
func NewWriter(w io.Writer, opts *Opts) (*Dev, error) {
	if opts.X <= 0 {
		return nil, errors.New("tempbar: width must be positive")
	}
	min, max := opts.Minimum, opts.Maximum
	if min == 0 && max == 0 {
		min, max = DefaultMinimum, DefaultMaximum
	}
	if min >= max {
		return nil, fmt.Errorf("tempbar: invalid scale %s - %s", min, max)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:       w,
		l:       opts.X,
		palette: *p,
		min:     min,
		max:     max,
		pixels:  make([]byte, 3*opts.X),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TempBar{%s - %s}", d.min, d.max)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Display draws t on the bar.
func (d *Dev) Display(t physic.Temperature) error {
	return d.Draw(d.Bounds(), Bar(t, d.l, 1, d.min, d.max), image.Point{})
}

// Write accepts a stream of raw RGB pixels and writes it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errors.New("tempbar: invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: d.l, Y: 1}}
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	// Only the first row of src is shown.
	deltaX3 := 3 * (r.Min.X - srcR.Min.X)
	for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
		r16, g16, b16, _ := src.At(sX, srcR.Min.Y).RGBA()
		dX3 := 3*sX + deltaX3
		d.pixels[dX3] = byte(r16 >> 8)
		d.pixels[dX3+1] = byte(g16 >> 8)
		d.pixels[dX3+2] = byte(b16 >> 8)
	}
	_, err := d.refresh()
	return err
}

func (d *Dev) refresh() (int, error) {
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < len(d.pixels)/3; i++ {
		c := color.NRGBA{d.pixels[3*i], d.pixels[3*i+1], d.pixels[3*i+2], 255}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
