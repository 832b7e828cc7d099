// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import "fmt"

// Config is the value of the one byte configuration register.
type Config byte

// Flag is a single bit of the configuration register.
type Flag byte

// FaultQueue is the number of consecutive faults that trigger an OS
// condition. The values are the register encoding of the two bit field.
type FaultQueue byte

// OSPolarity is the active level of the OS output.
type OSPolarity byte

// OSMode selects how the OS output behaves.
type OSMode byte

const (
	// FlagShutdown puts the sensor in low power shutdown when set.
	FlagShutdown Flag = 1 << 0
	// FlagInterrupt selects interrupt mode for the OS output. Comparator when
	// clear.
	FlagInterrupt Flag = 1 << 1
	// FlagPolarityHigh makes the OS output active high. Active low when clear.
	FlagPolarityHigh Flag = 1 << 2

	_FAULT_QUEUE_POS         = 3
	_FAULT_QUEUE_MASK Config = 0x03 << _FAULT_QUEUE_POS
)

const (
	FaultQueue1 FaultQueue = iota
	FaultQueue2
	FaultQueue4
	FaultQueue6
)

const (
	PolarityActiveLow OSPolarity = iota
	PolarityActiveHigh
)

const (
	// ModeComparator keeps OS asserted while the temperature exceeds T_OS,
	// until it falls below T_HYST.
	ModeComparator OSMode = iota
	// ModeInterrupt asserts OS on threshold crossings until the device is
	// read.
	ModeInterrupt
)

// DefaultConfig is the configuration register value at power on.
const DefaultConfig Config = 0

// WithHigh returns c with flag f set.
func (c Config) WithHigh(f Flag) Config {
	return c | Config(f)
}

// WithLow returns c with flag f cleared.
func (c Config) WithLow(f Flag) Config {
	return c &^ Config(f)
}

// With returns c with flag f set when on is true, cleared otherwise.
func (c Config) With(f Flag, on bool) Config {
	if on {
		return c.WithHigh(f)
	}
	return c.WithLow(f)
}

// WithFaultQueue returns c with both fault queue bits replaced by fq.
func (c Config) WithFaultQueue(fq FaultQueue) Config {
	return c&^_FAULT_QUEUE_MASK | (Config(fq)<<_FAULT_QUEUE_POS)&_FAULT_QUEUE_MASK
}

// WithOSPolarity returns c with the OS polarity bit set for p.
func (c Config) WithOSPolarity(p OSPolarity) Config {
	return c.With(FlagPolarityHigh, p == PolarityActiveHigh)
}

// WithOSMode returns c with the comparator/interrupt bit set for m.
func (c Config) WithOSMode(m OSMode) Config {
	return c.With(FlagInterrupt, m == ModeInterrupt)
}

// Has reports whether flag f is set.
func (c Config) Has(f Flag) bool {
	return c&Config(f) != 0
}

func (c Config) Shutdown() bool {
	return c.Has(FlagShutdown)
}

func (c Config) FaultQueue() FaultQueue {
	return FaultQueue((c & _FAULT_QUEUE_MASK) >> _FAULT_QUEUE_POS)
}

func (c Config) OSPolarity() OSPolarity {
	if c.Has(FlagPolarityHigh) {
		return PolarityActiveHigh
	}
	return PolarityActiveLow
}

func (c Config) OSMode() OSMode {
	if c.Has(FlagInterrupt) {
		return ModeInterrupt
	}
	return ModeComparator
}

func (c Config) String() string {
	return fmt.Sprintf("Config{Shutdown: %t, Mode: %s, Polarity: %s, FaultQueue: %s}",
		c.Shutdown(), c.OSMode(), c.OSPolarity(), c.FaultQueue())
}

// Faults returns the number of consecutive faults fq stands for.
func (fq FaultQueue) Faults() int {
	switch fq & 0x03 {
	case FaultQueue2:
		return 2
	case FaultQueue4:
		return 4
	case FaultQueue6:
		return 6
	default:
		return 1
	}
}

func (fq FaultQueue) String() string {
	return fmt.Sprintf("%d", fq.Faults())
}

func (p OSPolarity) String() string {
	if p == PolarityActiveHigh {
		return "ActiveHigh"
	}
	return "ActiveLow"
}

func (m OSMode) String() string {
	if m == ModeInterrupt {
		return "Interrupt"
	}
	return "Comparator"
}
