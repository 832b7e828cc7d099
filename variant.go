// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"math/bits"

	"periph.io/x/conn/v3/physic"
)

// Variant is the resolution capability of a member of the LM75 family.
//
// ResolutionMask returns the bits of the temperature register's least
// significant byte that carry data for this variant. The mask is left
// justified; the remaining low bits are don't care. Implementations must be
// zero sized value types and always return the same mask.
type Variant interface {
	ResolutionMask() byte
}

// LM75 is the base variant with a 9 bit ADC (0.5°C steps).
type LM75 struct{}

// PCT2075 is the NXP variant with an 11 bit ADC (0.125°C steps) and a
// programmable sample period.
type PCT2075 struct{}

const (
	_LM75_MASK    byte = 0b1000_0000
	_PCT2075_MASK byte = 0b1110_0000
)

func (LM75) ResolutionMask() byte {
	return _LM75_MASK
}

func (LM75) String() string {
	return "lm75"
}

func (PCT2075) ResolutionMask() byte {
	return _PCT2075_MASK
}

func (PCT2075) String() string {
	return "pct2075"
}

// fractionBits returns the number of fractional bits the mask keeps.
func fractionBits(mask byte) int {
	return bits.OnesCount8(mask)
}

// Resolution returns the smallest temperature step the variant V reports.
func Resolution[V Variant]() physic.Temperature {
	var v V
	return physic.Kelvin >> fractionBits(v.ResolutionMask())
}
