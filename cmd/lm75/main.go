// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lm75 configures an LM75 family sensor and prints its temperature.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/GermanBionicSystems/lm75"
	"github.com/GermanBionicSystems/lm75/tempbar"
	"github.com/fogleman/gg"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// sensor is the part of the driver surface shared by every variant.
type sensor interface {
	physic.SenseEnv
	Config() lm75.Config
}

func faultQueue(n int) (lm75.FaultQueue, error) {
	switch n {
	case 1:
		return lm75.FaultQueue1, nil
	case 2:
		return lm75.FaultQueue2, nil
	case 4:
		return lm75.FaultQueue4, nil
	case 6:
		return lm75.FaultQueue6, nil
	}
	return 0, fmt.Errorf("invalid fault queue %d, expected 1, 2, 4 or 6", n)
}

func celsius(c float64) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(c*float64(physic.Kelvin))
}

func open(b i2c.Bus, variant string, addr uint16, opts *lm75.Opts, rate time.Duration) (sensor, error) {
	switch strings.ToLower(variant) {
	case "lm75":
		if rate != 0 {
			return nil, fmt.Errorf("-rate is not supported by %s", variant)
		}
		return lm75.NewI2C(b, addr, opts)
	case "pct2075":
		dev, err := lm75.NewPCT2075(b, addr, opts)
		if err != nil {
			return nil, err
		}
		if rate != 0 {
			if err := dev.SetSampleRate(rate); err != nil {
				return nil, err
			}
		}
		rate, err = dev.SampleRate()
		if err != nil {
			return nil, err
		}
		log.Printf("sample period %s", rate)
		return dev, nil
	}
	return nil, fmt.Errorf("invalid variant %q", variant)
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use")
	addr := flag.Uint("addr", uint(lm75.DefaultAddress), "I²C address of the sensor")
	variant := flag.String("variant", "lm75", "Sensor variant (lm75 or pct2075)")
	fq := flag.Int("fault-queue", 1, "Consecutive faults before OS asserts (1, 2, 4 or 6)")
	tos := flag.Float64("os", 80, "Over temperature threshold in °C")
	thyst := flag.Float64("hyst", 75, "Hysteresis threshold in °C")
	activeHigh := flag.Bool("active-high", false, "OS output is active high")
	interrupt := flag.Bool("interrupt", false, "OS output in interrupt mode")
	rate := flag.Duration("rate", 0, "PCT2075 sample period (100ms steps)")
	interval := flag.Duration("interval", time.Second, "Interval between readings")
	count := flag.Int("n", 0, "Number of readings, 0 for unlimited")
	bar := flag.Bool("bar", isatty.IsTerminal(os.Stdout.Fd()), "Show a temperature bar")
	width := flag.Int("width", 40, "Width of the temperature bar")
	png := flag.String("png", "", "Write a gauge of the first reading to this PNG file")
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Args())
	}

	q, err := faultQueue(*fq)
	if err != nil {
		return err
	}
	opts := &lm75.Opts{
		FaultQueue:    q,
		OSTemperature: celsius(*tos),
		Hysteresis:    celsius(*thyst),
	}
	if *activeHigh {
		opts.Polarity = lm75.PolarityActiveHigh
	}
	if *interrupt {
		opts.Mode = lm75.ModeInterrupt
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	dev, err := open(b, *variant, uint16(*addr), opts, *rate)
	if err != nil {
		return err
	}
	log.Printf("%s %s", dev, dev.Config())
	defer dev.Halt()

	var display *tempbar.Dev
	if *bar {
		if display, err = tempbar.New(&tempbar.Opts{X: *width}); err != nil {
			return err
		}
		defer display.Halt()
	}

	ch, err := dev.SenseContinuous(*interval)
	if err != nil {
		return err
	}
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	for i := 0; *count == 0 || i < *count; i++ {
		select {
		case <-stop:
			return nil
		case env, ok := <-ch:
			if !ok {
				return nil
			}
			if i == 0 && *png != "" {
				img, err := tempbar.Gauge(env.Temperature, 240, 80, tempbar.DefaultMinimum, tempbar.DefaultMaximum)
				if err != nil {
					return err
				}
				if err := gg.SavePNG(*png, img); err != nil {
					return err
				}
			}
			if display != nil {
				if err := display.Display(env.Temperature); err != nil {
					return err
				}
				fmt.Print(env.Temperature)
			} else {
				fmt.Println(env.Temperature)
			}
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "lm75: %s.\n", err)
		os.Exit(1)
	}
}
