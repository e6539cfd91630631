package ft232h

import (
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// SetClockPin configures the given C-bus pin as the chip's PD_SCK
// line, an output driven low.
func (ft *FT232H) SetClockPin(pin uint) error {
	ft.clkPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.clkPin, ft232h.Output, false)
}

// SetDataPin configures the given C-bus pin as the chip's DOUT line,
// an input with pull-up.
func (ft *FT232H) SetDataPin(pin uint) error {
	ft.dataPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.dataPin, ft232h.Input, true)
}

// SetClock drives the clock line.
func (ft *FT232H) SetClock(high bool) error {
	if ft.clkPin == 0 {
		return fmt.Errorf("clock pin not set")
	}
	if err := ft.GPIO.Set(ft.clkPin, high); err != nil {
		return fmt.Errorf("failed to set clock pin: %w", err)
	}
	return nil
}

// Clock reads back the driven level of the clock line.
func (ft *FT232H) Clock() (bool, error) {
	if ft.clkPin == 0 {
		return false, fmt.Errorf("clock pin not set")
	}
	hl, err := ft.GPIO.Get(ft.clkPin)
	if err != nil {
		return false, fmt.Errorf("failed to read clock pin: %w", err)
	}
	return hl, nil
}

// Data reads the data line.
func (ft *FT232H) Data() (bool, error) {
	if ft.dataPin == 0 {
		return false, fmt.Errorf("data pin not set")
	}
	hl, err := ft.GPIO.Get(ft.dataPin)
	if err != nil {
		return false, fmt.Errorf("failed to read data pin: %w", err)
	}
	return hl, nil
}
