// Package hx711 provides polled, non-blocking control over an Avia
// Semiconductor HX711 24-bit bridge-sensor ADC.
//
// The chip speaks a two-wire bit-serial protocol: the driver owns one
// clock line (PD_SCK) and reads one data line (DOUT). There is no
// addressing and no acknowledgement; "conversion ready" is signalled
// purely by DOUT dropping low. Poll drives the whole exchange and never
// blocks the caller.
package hx711

import (
	"fmt"
	"sync"
)

// Conn is the two-wire hardware boundary between the driver and the
// chip. Implementations live in pkg/ft232h and pkg/gpiocdev; tests use
// an in-memory double.
type Conn interface {
	// SetClock drives the PD_SCK line.
	SetClock(high bool) error

	// Clock reads back the level the driver last drove on PD_SCK.
	Clock() (bool, error)

	// Data reads the DOUT line. The line is expected to be pulled up.
	Data() (bool, error)
}

// conversionTimeout is the elapsed-time limit in milliseconds before a
// conversion is declared failed. Worst case conversion time at the
// chip's 10 Hz output rate is ~400 ms.
const conversionTimeout = 500

// dataBits is the width of one conversion result.
const dataBits = 24

// Config holds the user-level driver parameters.
type Config struct {
	// Gain selects the input channel and amplifier gain applied to
	// the next conversion. See Gain128, Gain64 and Gain32.
	Gain Gain

	// ReadsUntilValid is the number of consecutive successful reads
	// required after power-up, a gain change or a timeout before the
	// output is reported Valid. It absorbs the chip's settling time.
	ReadsUntilValid uint8

	// Alpha is the exponential smoothing factor; an input of 128
	// gives an alpha of 128/256 = 0.5.
	Alpha uint8

	// Millis supplies a monotonic millisecond counter. Elapsed time
	// is computed with unsigned subtraction, so wraparound is fine.
	// Leave nil to use a wall-clock derived counter.
	Millis func() uint32
}

// DefaultConfig returns the SimpleHX711 defaults: channel A at gain
// 128, three reads until valid, alpha 200 and an adjuster of 256.
func DefaultConfig() Config {
	return Config{
		Gain:            Gain128,
		ReadsUntilValid: 3,
		Alpha:           200,
	}
}

// HX711 drives a single chip. All exported methods serialize on an
// internal mutex, but the driver itself owns no goroutine: every line
// toggle happens inside the caller's Poll.
type HX711 struct {
	mu     sync.Mutex
	conn   Conn
	millis func() uint32

	gain            Gain
	readsUntilValid uint8
	alpha           uint8

	raw       int32
	smoothed  int32
	tare      int32
	adjuster  int32
	timestamp uint32
	convStart uint32
	readCount uint8
	status    Status
}

// New constructs a driver over conn. The clock pin must already be
// configured as an output and the data pin as a pulled-up input.
func New(conn Conn, cfg Config) *HX711 {
	ms := cfg.Millis
	if ms == nil {
		ms = wallMillis()
	}
	return &HX711{
		conn:            conn,
		millis:          ms,
		gain:            cfg.Gain,
		readsUntilValid: cfg.ReadsUntilValid,
		alpha:           cfg.Alpha,
		adjuster:        256,
		convStart:       ms(),
		status:          StatusInit,
	}
}

// Poll advances the conversion exchange by at most one sample and
// returns immediately. It reports true when this call is terminal for
// the current conversion: a sample was read and accepted, or the
// status is PoweredDown or TimedOut. It reports false while the chip
// is still converting, or while the driver is still accumulating reads
// toward the validity threshold.
//
// The error return carries pin I/O failures from the Conn only;
// protocol conditions are always communicated through Status.
func (d *HX711) Poll() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// PD_SCK held high means power-down was asserted and never
	// released. The chip latches it after 60 µs.
	clk, err := d.conn.Clock()
	if err != nil {
		return false, fmt.Errorf("failed to read clock line: %w", err)
	}
	if clk {
		d.status = StatusPoweredDown
		return true, nil
	}

	// DOUT high means the chip is still converting.
	busy, err := d.conn.Data()
	if err != nil {
		return false, fmt.Errorf("failed to read data line: %w", err)
	}
	if busy {
		if d.millis()-d.convStart >= conversionTimeout {
			d.status = StatusTimedOut
			return true, nil
		}
		return false, nil
	}

	// A timeout forces a fresh init cycle on the next exchange.
	if d.status == StatusTimedOut {
		d.status = StatusInit
		d.readCount = 0
	}

	// The sample's timestamp is the start of the conversion that
	// produced it, captured when the previous exchange finished.
	d.timestamp = d.convStart

	var v uint32
	for i := 0; i < dataBits; i++ {
		bit, err := d.pulse()
		if err != nil {
			return false, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	d.raw = Scale24To32(v)

	// Extra pulses select the channel and gain of the next
	// conversion and re-arm the chip.
	for i := 0; i < d.gain.pulses(); i++ {
		if _, err := d.pulse(); err != nil {
			return false, err
		}
	}
	d.convStart = d.millis()

	if d.readCount < d.readsUntilValid {
		d.readCount++
		if d.readCount < d.readsUntilValid {
			return false, nil
		}
		// The threshold read seeds the filter directly.
		d.smoothed = d.raw
	} else {
		d.smoothed += (d.raw - d.smoothed) / 256 * int32(d.alpha)
	}

	d.status = StatusValid
	return true, nil
}

// pulse issues one clock pulse and samples the data line while the
// clock is high.
func (d *HX711) pulse() (bool, error) {
	if err := d.conn.SetClock(true); err != nil {
		return false, fmt.Errorf("failed to raise clock line: %w", err)
	}
	bit, err := d.conn.Data()
	if err != nil {
		return false, fmt.Errorf("failed to read data line: %w", err)
	}
	if err := d.conn.SetClock(false); err != nil {
		return false, fmt.Errorf("failed to lower clock line: %w", err)
	}
	return bit, nil
}

// PowerDown holds the clock line high, which the chip latches as
// power-down. Poll reports PoweredDown until PowerUp is called.
func (d *HX711) PowerDown() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conn.SetClock(true)
}

// PowerUp releases the clock line, resetting the chip, and starts a
// fresh init cycle.
func (d *HX711) PowerUp() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.conn.SetClock(false); err != nil {
		return err
	}
	d.status = StatusInit
	d.readCount = 0
	// restart the timeout window
	d.convStart = d.millis()
	return nil
}

// Timestamp returns the millisecond counter value at the start of the
// conversion that produced the current sample, not when it was read
// out.
func (d *HX711) Timestamp() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timestamp
}

// Raw returns the current sample: the 24-bit two's complement reading
// scaled by 256. Pass smoothed to read the filtered value instead.
func (d *HX711) Raw(smoothed bool) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sample(smoothed)
}

// sample returns the raw or smoothed value. Callers hold d.mu.
func (d *HX711) sample(smoothed bool) int32 {
	if smoothed {
		return d.smoothed
	}
	return d.raw
}
