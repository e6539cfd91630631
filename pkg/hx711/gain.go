package hx711

import "fmt"

// Gain selects the input channel and amplifier gain. The chip has no
// configuration register; the selection is made by the number of extra
// clock pulses issued after each 24-bit transfer.
type Gain byte

const (
	// Gain128 selects channel A with a gain of 128.
	Gain128 Gain = iota
	// Gain64 selects channel A with a gain of 64.
	Gain64
	// Gain32 selects channel B with a gain of 32.
	Gain32
)

// gainPulses maps each gain to the extra clock pulses that select it.
var gainPulses = [...]int{
	Gain128: 1,
	Gain64:  2,
	Gain32:  3,
}

func (g Gain) pulses() int {
	if int(g) < len(gainPulses) {
		return gainPulses[g]
	}
	return gainPulses[Gain128]
}

func (g Gain) String() string {
	switch g {
	case Gain128:
		return "128 (channel A)"
	case Gain64:
		return "64 (channel A)"
	case Gain32:
		return "32 (channel B)"
	default:
		return "(invalid gain)"
	}
}

// GainFor maps an amplifier gain value as found in configuration files
// (128, 64 or 32) to the corresponding Gain.
func GainFor(gain int) (Gain, error) {
	switch gain {
	case 128:
		return Gain128, nil
	case 64:
		return Gain64, nil
	case 32:
		return Gain32, nil
	default:
		return Gain128, fmt.Errorf("unsupported gain %d, want 128, 64 or 32", gain)
	}
}

// SetGain selects the channel and gain applied from the next
// conversion onward and starts a fresh init cycle. Expect up to
// 1400 ms before valid output data is available again.
func (d *HX711) SetGain(g Gain) {
	d.mu.Lock()
	d.gain = g
	d.status = StatusInit
	d.readCount = 0
	d.mu.Unlock()
}

// Gain returns the configured channel and gain.
func (d *HX711) Gain() Gain {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gain
}
