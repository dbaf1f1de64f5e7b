package libre

import (
	"errors"
	"fmt"

	"go.bug.st/serial/enumerator"
)

// findDeviceSerialFallback locates a FreeStyle meter through serial-port
// enumeration, for hardware attached via a USB-serial bridge.
func findDeviceSerialFallback() (*DeviceInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerating ports: %w", err)
	}
	for _, p := range ports {
		if p == nil {
			continue
		}
		if hasLibreVIDPID(p) {
			return &DeviceInfo{
				DevicePath:   p.Name,
				HardwareIDs:  hardwareIDs(),
				FriendlyName: p.Product,
			}, nil
		}
	}
	return nil, errors.New("FreeStyle Libre device not found")
}

func enumerateDevicesSerialFallback() ([]DeviceInfo, error) {
	var devices []DeviceInfo
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerating ports: %w", err)
	}
	for _, p := range ports {
		if p == nil {
			continue
		}
		if hasLibreVIDPID(p) {
			devices = append(devices, DeviceInfo{
				DevicePath:   p.Name,
				HardwareIDs:  hardwareIDs(),
				FriendlyName: p.Product,
			})
		}
	}
	return devices, nil
}
