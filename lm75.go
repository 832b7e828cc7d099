// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the bus address with all three address pins low.
	DefaultAddress uint16 = 0x48

	// Addresses of registers to read/write.
	_REGISTER_TEMPERATURE   byte = 0
	_REGISTER_CONFIGURATION byte = 1
	_REGISTER_HYSTERESIS    byte = 2
	_REGISTER_OS            byte = 3
	_REGISTER_IDLE          byte = 4

	minSenseInterval = 100 * time.Millisecond
)

var errHalted = errors.New("lm75: halted")

// Opts represents configurable options applied when the device is opened.
//
// Zero valued temperatures are left at the device's power on default.
type Opts struct {
	FaultQueue FaultQueue
	Polarity   OSPolarity
	Mode       OSMode
	// Over temperature shutdown threshold (T_OS).
	OSTemperature physic.Temperature
	// Hysteresis threshold (T_HYST).
	Hysteresis physic.Temperature
}

// Dev represents an LM75 family sensor. The variant V fixes the resolution
// used for every temperature conversion.
type Dev[V Variant] struct {
	d        *i2c.Dev
	mu       sync.Mutex
	config   Config
	shutdown chan struct{}
	halted   bool
}

// Address returns the bus address for the given state of the A2, A1 and A0
// pins.
func Address(a2, a1, a0 bool) uint16 {
	addr := DefaultAddress
	for i, pin := range []bool{a0, a1, a2} {
		if pin {
			addr |= 1 << i
		}
	}
	return addr
}

// NewI2C returns a new LM75 sensor using the specified bus and address.
//
// If opts is nil no transaction is issued and the configuration is assumed
// to be the power on default.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev[LM75], error) {
	return New[LM75](b, addr, opts)
}

// New returns a sensor of variant V using the specified bus and address.
func New[V Variant](b i2c.Bus, addr uint16, opts *Opts) (*Dev[V], error) {
	dev := &Dev[V]{d: &i2c.Dev{Bus: b, Addr: addr}, config: DefaultConfig}
	if opts == nil {
		return dev, nil
	}
	if err := dev.start(opts); err != nil {
		return nil, err
	}
	return dev, nil
}

// start writes opts to the device.
func (dev *Dev[V]) start(opts *Opts) error {
	config := dev.config.
		WithFaultQueue(opts.FaultQueue).
		WithOSPolarity(opts.Polarity).
		WithOSMode(opts.Mode)
	if err := dev.writeConfig(config); err != nil {
		return err
	}
	if opts.OSTemperature != 0 {
		if err := dev.SetOSTemperature(opts.OSTemperature); err != nil {
			return err
		}
	}
	if opts.Hysteresis != 0 {
		return dev.SetHysteresisTemperature(opts.Hysteresis)
	}
	return nil
}

func (dev *Dev[V]) mask() byte {
	var v V
	return v.ResolutionMask()
}

// tx performs one bus transaction. The first byte of w is the register.
func (dev *Dev[V]) tx(w, r []byte) error {
	if err := dev.d.Tx(w, r); err != nil {
		return &TransportError{Register: w[0], Err: err}
	}
	return nil
}

// writeConfig writes config and replaces the in-memory copy only once the
// device acknowledged it.
func (dev *Dev[V]) writeConfig(config Config) error {
	if err := dev.tx([]byte{_REGISTER_CONFIGURATION, byte(config)}, nil); err != nil {
		return err
	}
	dev.config = config
	return nil
}

func (dev *Dev[V]) updateConfig(f func(Config) Config) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.writeConfig(f(dev.config))
}

// Config returns the last configuration successfully written. The device is
// not read.
func (dev *Dev[V]) Config() Config {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.config
}

// Enable takes the sensor out of shutdown (default state).
func (dev *Dev[V]) Enable() error {
	return dev.updateConfig(func(c Config) Config { return c.WithLow(FlagShutdown) })
}

// Disable puts the sensor in shutdown.
func (dev *Dev[V]) Disable() error {
	return dev.updateConfig(func(c Config) Config { return c.WithHigh(FlagShutdown) })
}

// SetFaultQueue sets the number of consecutive faults that trigger an OS
// condition.
func (dev *Dev[V]) SetFaultQueue(fq FaultQueue) error {
	return dev.updateConfig(func(c Config) Config { return c.WithFaultQueue(fq) })
}

// SetOSPolarity sets the active level of the OS output.
func (dev *Dev[V]) SetOSPolarity(p OSPolarity) error {
	return dev.updateConfig(func(c Config) Config { return c.WithOSPolarity(p) })
}

// SetOSMode sets the OS output to comparator or interrupt mode.
func (dev *Dev[V]) SetOSMode(m OSMode) error {
	return dev.updateConfig(func(c Config) Config { return c.WithOSMode(m) })
}

// SetOSTemperature sets the over temperature shutdown threshold.
func (dev *Dev[V]) SetOSTemperature(t physic.Temperature) error {
	return dev.writeTemperature(_REGISTER_OS, t)
}

// SetHysteresisTemperature sets the hysteresis threshold.
func (dev *Dev[V]) SetHysteresisTemperature(t physic.Temperature) error {
	return dev.writeTemperature(_REGISTER_HYSTERESIS, t)
}

func (dev *Dev[V]) writeTemperature(reg byte, t physic.Temperature) error {
	bytes, err := temperatureToCount(t, dev.mask())
	if err != nil {
		return err
	}
	return dev.tx([]byte{reg, bytes[0], bytes[1]}, nil)
}

// ReadTemperature reads the temperature register.
func (dev *Dev[V]) ReadTemperature() (physic.Temperature, error) {
	r := make([]byte, 2)
	if err := dev.tx([]byte{_REGISTER_TEMPERATURE}, r); err != nil {
		return MinimumTemperature, err
	}
	return countToTemperature(r, dev.mask()), nil
}

// Halt stops a SenseContinuous operation in progress and puts the sensor in
// shutdown. The next Sense takes it out again. Implements conn.Resource.
func (dev *Dev[V]) Halt() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		close(dev.shutdown)
		dev.shutdown = nil
	}
	if dev.config.Shutdown() {
		return nil
	}
	if err := dev.writeConfig(dev.config.WithHigh(FlagShutdown)); err != nil {
		return err
	}
	dev.halted = true
	return nil
}

// Sense reads temperature from the device and writes the value to the
// specified env variable. Implements physic.SenseEnv.
func (dev *Dev[V]) Sense(env *physic.Env) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.sense(env)
}

// senseContinuous is Sense for the SenseContinuous goroutine. It does nothing
// once Halt closed shutdown, so a pending tick cannot wake the sensor up.
func (dev *Dev[V]) senseContinuous(env *physic.Env, shutdown chan struct{}) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != shutdown {
		return errHalted
	}
	return dev.sense(env)
}

// sense must be called with mu held.
func (dev *Dev[V]) sense(env *physic.Env) error {
	if dev.halted {
		if err := dev.writeConfig(dev.config.WithLow(FlagShutdown)); err != nil {
			return err
		}
		dev.halted = false
	}
	t, err := dev.ReadTemperature()
	if err == nil {
		env.Temperature = t
	}
	return err
}

// SenseContinuous continuously reads from the device and writes the value to
// the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
func (dev *Dev[V]) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSenseInterval {
		return nil, fmt.Errorf("lm75: invalid duration, minimum %s", minSenseInterval)
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		return nil, errors.New("lm75: SenseContinuous already running")
	}
	dev.shutdown = make(chan struct{})
	ch := make(chan physic.Env, 16)
	go func(ch chan<- physic.Env, shutdown chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := dev.senseContinuous(&e, shutdown); err != nil {
					continue
				}
				select {
				case ch <- e:
				default:
				}
			}
		}
	}(ch, dev.shutdown)
	return ch, nil
}

// Precision returns the sensor's resolution, the minimum step between two
// readings.
func (dev *Dev[V]) Precision(env *physic.Env) {
	env.Temperature = Resolution[V]()
	env.Pressure = 0
	env.Humidity = 0
}

func (dev *Dev[V]) String() string {
	var v V
	name := "lm75"
	if s, ok := any(v).(fmt.Stringer); ok {
		name = s.String()
	}
	return fmt.Sprintf("%s: %s", name, dev.d.String())
}

var _ conn.Resource = &Dev[LM75]{}
var _ physic.SenseEnv = &Dev[PCT2075]{}
