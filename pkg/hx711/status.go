package hx711

// Status describes the outcome of the last Poll.
type Status int

const (
	// StatusInit means the chip is initializing and has not yet
	// produced ReadsUntilValid consecutive successful reads.
	StatusInit Status = iota
	// StatusValid means the last reading is trustworthy. Valid is
	// sticky: it persists across successful reads until a power-down,
	// timeout or gain change.
	StatusValid
	// StatusPoweredDown means the driver is holding the chip in
	// power-down mode; call PowerUp to resume.
	StatusPoweredDown
	// StatusTimedOut means no conversion completed within 500 ms;
	// the chip is probably disconnected. The next Poll starts a
	// fresh init cycle automatically.
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusInit:
		return "init"
	case StatusValid:
		return "valid"
	case StatusPoweredDown:
		return "powered down"
	case StatusTimedOut:
		return "timed out"
	default:
		return "(invalid status)"
	}
}

// Status returns the status of the last Poll.
func (d *HX711) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}
