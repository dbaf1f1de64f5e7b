// Package libre detects an Abbott FreeStyle Libre reader attached over USB.
// Detection prefers libusb (via gousb) where available and falls back to
// serial-port enumeration for meters attached through a USB-serial bridge.
package libre

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"

	"github.com/Thiagojm/gluco_cli_linux/hidraw"
)

// Abbott vendor/product for the FreeStyle Libre reader.
const (
	abbottVendorID = 0x1a61 // Abbott Diabetes Care
	libreProductID = 0x3650 // FreeStyle Libre / Libre 2 reader
)

// DeviceInfo contains key metadata for a detected FreeStyle Libre reader.
type DeviceInfo struct {
	// DevicePath is the system path to the device interface
	DevicePath string
	// HardwareIDs is the list of hardware IDs from the device
	HardwareIDs []string
	// FriendlyName is a human-friendly device label if present
	FriendlyName string
}

// MatchesHID reports whether a HID vendor/product pair belongs to the
// FreeStyle Libre reader.
func MatchesHID(vendor, product uint32) bool {
	return vendor == abbottVendorID && product == libreProductID
}

// MatchesNode reports whether an enumerated hidraw node is the Libre reader.
func MatchesNode(n hidraw.NodeInfo) bool {
	return MatchesHID(n.Vendor, n.Product)
}

// Detect checks if a FreeStyle Libre reader (VID 0x1a61, PID 0x3650) is
// present. Prefers libusb detection, then falls back to serial enumeration.
func Detect() (bool, error) {
	if detectUSBViaLibusb() {
		return true, nil
	}

	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return false, fmt.Errorf("enumerating ports: %w", err)
	}

	for _, p := range ports {
		if p == nil {
			continue
		}
		if hasLibreVIDPID(p) {
			return true, nil
		}
	}
	return false, nil
}

// hasLibreVIDPID checks if a serial port belongs to an Abbott FreeStyle
// meter. Some FreeStyle models expose a TI USB-serial bridge instead of a
// HID interface, so the vendor match alone is meaningful here.
func hasLibreVIDPID(p *enumerator.PortDetails) bool {
	if p == nil {
		return false
	}

	if p.IsUSB {
		vid := strings.ToUpper(p.VID)
		pid := strings.ToUpper(p.PID)

		if vid == "1A61" && pid == "3650" {
			return true
		}
		// Any Abbott device on a serial bridge is worth reporting.
		if vid == "1A61" {
			return true
		}
	}

	if p.IsUSB && p.Product != "" {
		productUpper := strings.ToUpper(p.Product)
		if strings.Contains(productUpper, "FREESTYLE") ||
			strings.Contains(productUpper, "LIBRE") {
			return true
		}
	}

	return false
}

func hardwareIDs() []string {
	return []string{fmt.Sprintf("USB\\VID_%04X&PID_%04X", abbottVendorID, libreProductID)}
}
