// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"errors"
	"fmt"
)

// ErrInvalidInputData is returned when a temperature or sample period is out
// of range. No bus transaction is issued in that case.
var ErrInvalidInputData = errors.New("lm75: invalid input data")

// TransportError wraps an error returned by the I2C bus. The bus error is
// never interpreted.
type TransportError struct {
	// Register the transaction targeted.
	Register byte
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lm75: register 0x%02x: %v", e.Register, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
