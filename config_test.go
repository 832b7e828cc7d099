// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import "testing"

func TestWithFaultQueue(t *testing.T) {
	for start := 0; start < 256; start++ {
		c := Config(start)
		for fq := FaultQueue1; fq <= FaultQueue6; fq++ {
			got := c.WithFaultQueue(fq)
			if got&^_FAULT_QUEUE_MASK != c&^_FAULT_QUEUE_MASK {
				t.Errorf("0b%08b.WithFaultQueue(%s) = 0b%08b changed other bits", c, fq, got)
			}
			if bits := byte(got>>3) & 0x03; bits != byte(fq) {
				t.Errorf("0b%08b.WithFaultQueue(%s) fault bits 0b%02b", c, fq, bits)
			}
			if got.FaultQueue() != fq {
				t.Errorf("FaultQueue() = %s expected %s", got.FaultQueue(), fq)
			}
		}
	}
}

func TestFaultQueueFaults(t *testing.T) {
	expected := map[FaultQueue]int{FaultQueue1: 1, FaultQueue2: 2, FaultQueue4: 4, FaultQueue6: 6}
	for fq, n := range expected {
		if fq.Faults() != n {
			t.Errorf("%d.Faults() = %d expected %d", byte(fq), fq.Faults(), n)
		}
	}
}

func TestShutdownToggle(t *testing.T) {
	for start := 0; start < 256; start++ {
		c := Config(start)
		for _, seq := range [][2]bool{{true, false}, {false, true}, {true, true}, {false, false}} {
			first := c.With(FlagShutdown, seq[0])
			second := first.With(FlagShutdown, seq[1])
			if first&^Config(FlagShutdown) != c&^Config(FlagShutdown) ||
				second&^Config(FlagShutdown) != c&^Config(FlagShutdown) {
				t.Errorf("0b%08b: shutdown sequence %v touched other bits", c, seq)
			}
			if second.Shutdown() != seq[1] {
				t.Errorf("0b%08b: Shutdown() = %t expected %t", c, second.Shutdown(), seq[1])
			}
		}
		// Enabling then disabling restores a disabled configuration.
		if c.Shutdown() && c.WithLow(FlagShutdown).WithHigh(FlagShutdown) != c {
			t.Errorf("0b%08b not restored", c)
		}
		if !c.Shutdown() && c.WithHigh(FlagShutdown).WithLow(FlagShutdown) != c {
			t.Errorf("0b%08b not restored", c)
		}
	}
}

func TestSingleBitFlags(t *testing.T) {
	tests := []struct {
		name string
		set  func(Config) Config
		flag Flag
		on   bool
	}{
		{"ActiveHigh", func(c Config) Config { return c.WithOSPolarity(PolarityActiveHigh) }, FlagPolarityHigh, true},
		{"ActiveLow", func(c Config) Config { return c.WithOSPolarity(PolarityActiveLow) }, FlagPolarityHigh, false},
		{"Interrupt", func(c Config) Config { return c.WithOSMode(ModeInterrupt) }, FlagInterrupt, true},
		{"Comparator", func(c Config) Config { return c.WithOSMode(ModeComparator) }, FlagInterrupt, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for start := 0; start < 256; start++ {
				c := Config(start)
				got := test.set(c)
				if got&^Config(test.flag) != c&^Config(test.flag) {
					t.Errorf("0b%08b -> 0b%08b changed other bits", c, got)
				}
				if got.Has(test.flag) != test.on {
					t.Errorf("0b%08b -> 0b%08b flag not %t", c, got, test.on)
				}
			}
		})
	}
}

func TestConfigAccessors(t *testing.T) {
	c := DefaultConfig.
		WithHigh(FlagShutdown).
		WithOSMode(ModeInterrupt).
		WithOSPolarity(PolarityActiveHigh).
		WithFaultQueue(FaultQueue4)
	if c != 0b0001_0111 {
		t.Errorf("config = 0b%08b", c)
	}
	if !c.Shutdown() || c.OSMode() != ModeInterrupt || c.OSPolarity() != PolarityActiveHigh || c.FaultQueue() != FaultQueue4 {
		t.Errorf("accessors returned %s", c)
	}
	if s := c.String(); s != "Config{Shutdown: true, Mode: Interrupt, Polarity: ActiveHigh, FaultQueue: 4}" {
		t.Errorf("String() = %q", s)
	}
}
