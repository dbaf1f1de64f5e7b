//go:build linux

package libre

import (
	"github.com/google/gousb"
)

// detectUSBViaLibusb checks for the FreeStyle Libre reader using libusb via
// gousb. It returns true if a device with the expected VID/PID is present.
func detectUSBViaLibusb() bool {
	ctx := gousb.NewContext()
	defer ctx.Close()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(abbottVendorID), gousb.ID(libreProductID))
	if err != nil {
		return false
	}
	if dev == nil {
		return false
	}
	_ = dev.Close()
	return true
}
