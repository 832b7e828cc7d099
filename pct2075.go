// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"time"

	"periph.io/x/conn/v3/i2c"
)

// PCT2075Dev is a PCT2075 sensor. It has every operation of Dev plus the
// programmable sample period.
type PCT2075Dev struct {
	*Dev[PCT2075]
}

// NewPCT2075 returns a new PCT2075 sensor using the specified bus and
// address. opts behaves as in NewI2C.
func NewPCT2075(b i2c.Bus, addr uint16, opts *Opts) (*PCT2075Dev, error) {
	dev, err := New[PCT2075](b, addr, opts)
	if err != nil {
		return nil, err
	}
	return &PCT2075Dev{Dev: dev}, nil
}

// SetSampleRate sets the period between two conversions. The period must be
// a multiple of 100ms in the range [100ms, 3100ms].
func (dev *PCT2075Dev) SetSampleRate(period time.Duration) error {
	b, err := EncodeSampleRate(period)
	if err != nil {
		return err
	}
	return dev.tx([]byte{_REGISTER_IDLE, b}, nil)
}

// SampleRate reads the period between two conversions from the device.
func (dev *PCT2075Dev) SampleRate() (time.Duration, error) {
	r := make([]byte, 1)
	if err := dev.tx([]byte{_REGISTER_IDLE}, r); err != nil {
		return 0, err
	}
	return DecodeSampleRate(r[0]), nil
}
