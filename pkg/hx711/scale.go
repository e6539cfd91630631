package hx711

// SetAlpha sets the exponential smoothing factor. An input of 128
// gives an alpha of 128/256 = 0.5; 0 freezes the filter.
func (d *HX711) SetAlpha(alpha uint8) {
	d.mu.Lock()
	d.alpha = alpha
	d.mu.Unlock()
}

// Alpha returns the smoothing factor.
func (d *HX711) Alpha() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alpha
}

// Tare records the current raw (or smoothed) value as the offset
// subtracted by RawMinusTare and Adjusted. The samples themselves are
// not modified.
func (d *HX711) Tare(smoothed bool) {
	d.mu.Lock()
	d.tare = d.sample(smoothed)
	d.mu.Unlock()
}

// SetTare sets the tare offset directly.
func (d *HX711) SetTare(tare int32) {
	d.mu.Lock()
	d.tare = tare
	d.mu.Unlock()
}

// TareOffset returns the tare offset.
func (d *HX711) TareOffset() int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tare
}

// RawMinusTare returns the current raw (or smoothed) value minus the
// tare offset.
func (d *HX711) RawMinusTare(smoothed bool) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sample(smoothed) - d.tare
}

// AdjustTo calibrates the adjuster so that Adjusted returns value for
// the current raw (or smoothed) reading. A value of zero is coerced to
// 1 to prevent a divide by zero; no error is reported.
func (d *HX711) AdjustTo(value int32, smoothed bool) {
	if value == 0 {
		value = 1
	}
	d.mu.Lock()
	d.adjuster = (d.sample(smoothed) - d.tare) / value
	d.mu.Unlock()
}

// Adjuster returns the scale divisor used by Adjusted.
func (d *HX711) Adjuster() int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.adjuster
}

// SetAdjuster sets the scale divisor used by Adjusted. It must not be
// zero; the precondition is not checked.
func (d *HX711) SetAdjuster(adjuster int32) {
	d.mu.Lock()
	d.adjuster = adjuster
	d.mu.Unlock()
}

// Adjusted returns the tared raw (or smoothed) value divided by the
// adjuster, converting offset-corrected counts to the caller's unit.
func (d *HX711) Adjusted(smoothed bool) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return (d.sample(smoothed) - d.tare) / d.adjuster
}

// SetReadsUntilValid sets the number of consecutive successful reads
// required before the output is considered valid after a reset of the
// chip.
func (d *HX711) SetReadsUntilValid(n uint8) {
	d.mu.Lock()
	d.readsUntilValid = n
	d.mu.Unlock()
}

// ReadsUntilValid returns the validity threshold.
func (d *HX711) ReadsUntilValid() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readsUntilValid
}
