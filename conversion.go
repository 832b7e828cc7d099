// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"math"
	"time"

	"periph.io/x/conn/v3/physic"
)

const (
	minCelsius float64 = -55.0
	maxCelsius float64 = 125.0

	// The minimum temperature accepted for the OS and hysteresis thresholds.
	MinimumTemperature physic.Temperature = physic.ZeroCelsius - 55*physic.Kelvin
	// The maximum temperature accepted for the OS and hysteresis thresholds.
	MaximumTemperature physic.Temperature = physic.ZeroCelsius + 125*physic.Kelvin

	// Sample period limits of the PCT2075. The period must be a multiple of
	// SamplePeriodStep.
	MinimumSamplePeriod = 100 * time.Millisecond
	MaximumSamplePeriod = 3100 * time.Millisecond
	SamplePeriodStep    = 100 * time.Millisecond

	// One count of the 16 bit temperature word.
	_COUNT_RESOLUTION = physic.Kelvin / 256
)

// EncodeTemperature converts celsius to the two byte register format using
// the variant resolution mask.
//
// The value is rounded to the nearest step the mask can represent, with
// halves rounded away from zero. The most significant byte is the floor of the
// rounded value as a two's complement byte, the least significant byte holds
// the non-negative remainder left justified. -0.5°C is therefore 0xff, 0x80.
//
// Values outside [-55, 125] and NaN return ErrInvalidInputData.
func EncodeTemperature(celsius float64, mask byte) (msb, lsb byte, err error) {
	if !(celsius >= minCelsius && celsius <= maxCelsius) {
		return 0, 0, ErrInvalidInputData
	}
	n := fractionBits(mask)
	steps := math.Round(celsius * float64(int(1)<<n))
	count := int16(steps) << (8 - n)
	return byte(uint16(count) >> 8), byte(count) & mask, nil
}

// DecodeTemperature converts the two register bytes to celsius using the
// variant resolution mask. The msb is the signed integer part and the masked
// lsb is a non-negative fraction added to it.
func DecodeTemperature(msb, lsb, mask byte) float64 {
	return float64(int8(msb)) + float64(lsb&mask)/256
}

// temperatureToCount converts a temperature into the bytes that the device
// uses for the T_OS and T_HYST registers.
func temperatureToCount(temp physic.Temperature, mask byte) ([]byte, error) {
	if temp < MinimumTemperature || temp > MaximumTemperature {
		return nil, ErrInvalidInputData
	}
	msb, lsb, err := EncodeTemperature(temp.Celsius(), mask)
	if err != nil {
		return nil, err
	}
	return []byte{msb, lsb}, nil
}

// countToTemperature returns the temperature from the raw device bytes. The
// arithmetic is done on integers so the result is exact.
func countToTemperature(bytes []byte, mask byte) physic.Temperature {
	count := int16(uint16(bytes[0])<<8 | uint16(bytes[1]&mask))
	return physic.ZeroCelsius + physic.Temperature(count)*_COUNT_RESOLUTION
}

// EncodeSampleRate converts a PCT2075 sample period to its register byte,
// the period in units of 100ms.
func EncodeSampleRate(period time.Duration) (byte, error) {
	if period < MinimumSamplePeriod || period > MaximumSamplePeriod || period%SamplePeriodStep != 0 {
		return 0, ErrInvalidInputData
	}
	return byte(period / SamplePeriodStep), nil
}

// DecodeSampleRate converts the PCT2075 sample period register to a
// duration. Every byte decodes, including values the encoder never produces.
func DecodeSampleRate(b byte) time.Duration {
	return time.Duration(b) * SamplePeriodStep
}
