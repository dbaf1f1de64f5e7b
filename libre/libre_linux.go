//go:build linux

package libre

import (
	"fmt"

	"github.com/google/gousb"
)

// FindDevice (Linux) uses libusb first, then falls back to serial enumeration.
func FindDevice() (*DeviceInfo, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(abbottVendorID), gousb.ID(libreProductID))
	if err == nil && dev != nil {
		name, _ := dev.Product()
		_ = dev.Close()
		return &DeviceInfo{
			DevicePath:   fmt.Sprintf("usb:%04x:%04x", abbottVendorID, libreProductID),
			HardwareIDs:  hardwareIDs(),
			FriendlyName: name,
		}, nil
	}

	// Fallback to the non-Linux impl (serial enumeration)
	return findDeviceSerialFallback()
}

// EnumerateDevices (Linux) via libusb with serial fallback for richer info.
func EnumerateDevices() ([]DeviceInfo, error) {
	var out []DeviceInfo
	ctx := gousb.NewContext()
	defer ctx.Close()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == gousb.ID(abbottVendorID) && desc.Product == gousb.ID(libreProductID)
	})
	if err == nil {
		for _, d := range devs {
			name, _ := d.Product()
			out = append(out, DeviceInfo{
				DevicePath:   fmt.Sprintf("usb:%04x:%04x", abbottVendorID, libreProductID),
				HardwareIDs:  hardwareIDs(),
				FriendlyName: name,
			})
			_ = d.Close()
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	// Fallback
	return enumerateDevicesSerialFallback()
}
