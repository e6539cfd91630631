// Package gpiocdev implements the two-wire chip connection over the
// Linux GPIO character device.
package gpiocdev

import (
	"errors"
	"fmt"

	"github.com/warthog618/gpiod"
)

// ErrClosed indicates the connection has been closed.
var ErrClosed = errors.New("closed")

// Pins holds the requested clock and data lines for one chip.
type Pins struct {
	chip *gpiod.Chip
	clk  *gpiod.Line
	data *gpiod.Line
}

// Open requests the clock line as an output driven low and the data
// line as an input with pull-up on the named gpiochip, e.g.
// Open("gpiochip0", 5, 6).
func Open(chip string, clkOffset, dataOffset int) (*Pins, error) {
	c, err := gpiod.NewChip(chip, gpiod.WithConsumer("hx711"))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", chip, err)
	}
	clk, err := c.RequestLine(clkOffset, gpiod.AsOutput(0))
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to request clock line %d: %w", clkOffset, err)
	}
	data, err := c.RequestLine(dataOffset, gpiod.AsInput, gpiod.WithPullUp)
	if err != nil {
		_ = clk.Close()
		_ = c.Close()
		return nil, fmt.Errorf("failed to request data line %d: %w", dataOffset, err)
	}
	return &Pins{chip: c, clk: clk, data: data}, nil
}

// SetClock drives the clock line.
func (p *Pins) SetClock(high bool) error {
	if p.clk == nil {
		return ErrClosed
	}
	v := 0
	if high {
		v = 1
	}
	return p.clk.SetValue(v)
}

// Clock reads back the driven level of the clock line.
func (p *Pins) Clock() (bool, error) {
	if p.clk == nil {
		return false, ErrClosed
	}
	v, err := p.clk.Value()
	return v != 0, err
}

// Data reads the data line.
func (p *Pins) Data() (bool, error) {
	if p.data == nil {
		return false, ErrClosed
	}
	v, err := p.data.Value()
	return v != 0, err
}

// Close releases the requested lines and the chip.
func (p *Pins) Close() error {
	if p.clk == nil {
		return ErrClosed
	}
	err := p.clk.Close()
	err = errors.Join(err, p.data.Close())
	err = errors.Join(err, p.chip.Close())
	p.clk, p.data, p.chip = nil, nil, nil
	return err
}
