//go:build !linux

package libre

func FindDevice() (*DeviceInfo, error) {
	return findDeviceSerialFallback()
}

func EnumerateDevices() ([]DeviceInfo, error) {
	return enumerateDevicesSerialFallback()
}
