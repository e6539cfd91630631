// Package ft232h implements the two-wire chip connection on top of an
// FTDI FT232H breakout, using its C-bus pins as GPIO. The clock line
// is driven as an output and the data line is read as a pulled-up
// input.
package ft232h

import (
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// DeviceInfo represents a snapshot of the device information for the [FT232H] device.
type DeviceInfo struct {
	Index       int
	Serial      string
	Description string
	ProductID   string
	VendorID    string
	IsOpen      bool
	IsHighSpeed bool
}

// String returns a string representation of the device information.
func (ft DeviceInfo) String() string {
	return fmt.Sprintf(
		"DeviceInfo{Index:%d, Serial:%s, Description:%s, ProductID:%s, VendorID:%s, IsOpen:%t, IsHighSpeed:%t}",
		ft.Index, ft.Serial, ft.Description, ft.ProductID, ft.VendorID, ft.IsOpen, ft.IsHighSpeed,
	)
}

// FT232H represents an FT232H device wired to the chip's PD_SCK and
// DOUT lines. Configure the pins with [FT232H.SetClockPin] and
// [FT232H.SetDataPin] before handing the connection to the driver.
type FT232H struct {
	*ft232h.FT232H
	info    DeviceInfo
	clkPin  ft232h.CPin
	dataPin ft232h.CPin
}

// Info returns a snapshot of the device information for the FT232H device. Read-only.
func (ft *FT232H) Info() DeviceInfo {
	vid, pid := ft.vidPid()
	return DeviceInfo{
		Index:       ft.Index(),
		Serial:      ft.Serial(),
		Description: ft.Desc(),
		ProductID:   pid,
		VendorID:    vid,
		IsOpen:      ft.IsOpen(),
		IsHighSpeed: ft.IsHiSpeed(),
	}
}

// String returns a string representation of the FT232H device. It includes the vendor ID, product ID, and description.
func (ft *FT232H) String() string {
	return fmt.Sprintf("FT232H[%s:%s]: %s", ft.Info().VendorID, ft.Info().ProductID, ft.Desc())
}

// Connect opens an FT232H device. With no arguments the first device
// found is used; otherwise the single [Descriptor] selects it.
func Connect(choice ...Descriptor) (ft *FT232H, err error) {
	ft = &FT232H{}

	switch len(choice) {
	case 0:
		ft.FT232H, err = ft232h.New()
		return ft, err
	case 1:
		desc := choice[0]
		if err = desc.Validate(); err != nil {
			return nil, ErrBadDescriptor
		}
		ft.FT232H, err = ft232h.OpenMask(desc.Mask())
		if err != nil {
			return nil, err
		}
		ft.info = ft.Info()
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}

	return ft, err
}
