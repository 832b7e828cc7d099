// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// lm75 provides a package for interfacing the LM75 family of I2C temperature
// sensors. The family shares one register map but differs in ADC resolution.
//
// Supported variants:
//
//	LM75    resolution 0.5°C   (9 bit)
//	PCT2075 resolution 0.125°C (11 bit), programmable sample period
//
// Range: -55°C - 125°C
//
// The variant is a type parameter of Dev, so a driver never mixes resolution
// masks. Operations that only exist on one variant, like the PCT2075 sample
// period, are methods of that variant's handle only.
//
// The driver keeps the configuration register in memory and never reads it
// back from the device. The in-memory value changes only after a successful
// write.
//
// A command line example is available in cmd/lm75.
package lm75
