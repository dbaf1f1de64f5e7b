package hidraw

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSysDir is where the kernel exposes hidraw class devices.
const DefaultSysDir = "/sys/class/hidraw"

// DefaultDevDir is where udev creates the hidraw device nodes.
const DefaultDevDir = "/dev"

// NodeInfo describes one hidraw device node and the HID device behind it.
type NodeInfo struct {
	// Index is the numeric suffix N of hidrawN.
	Index int
	// Path is the device node path, e.g. /dev/hidraw0.
	Path string
	// Name is the HID device name from sysfs (HID_NAME), if available.
	Name string
	// Bus, Vendor and Product come from the sysfs HID_ID triple.
	Bus     uint32
	Vendor  uint32
	Product uint32
}

// DevicePath returns the device node path for a candidate index,
// e.g. DevicePath(3) == "/dev/hidraw3".
func DevicePath(index int) string {
	return fmt.Sprintf("%s/hidraw%d", DefaultDevDir, index)
}

// ParseIndex extracts N from a name of the form "hidrawN".
func ParseIndex(name string) (int, error) {
	rest, ok := strings.CutPrefix(name, "hidraw")
	if !ok || rest == "" {
		return 0, fmt.Errorf("not a hidraw node name: %s", name)
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("not a hidraw node name: %s", name)
	}
	return idx, nil
}

// parseHIDID parses the sysfs HID_ID value, a colon-separated triple of
// hex bus type, vendor ID, and product ID, e.g. "0003:00001A61:00003650".
func parseHIDID(s string) (bus, vendor, product uint32, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed HID_ID: %q", s)
	}
	vals := make([]uint32, 3)
	for i, p := range parts {
		v, perr := strconv.ParseUint(p, 16, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("malformed HID_ID: %q", s)
		}
		vals[i] = uint32(v)
	}
	return vals[0], vals[1], vals[2], nil
}

// parseUevent extracts the HID identity fields from a sysfs uevent blob of
// KEY=value lines. Missing keys leave the corresponding fields zeroed.
func parseUevent(data string) (name string, bus, vendor, product uint32) {
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "HID_NAME":
			name = strings.TrimSpace(val)
		case "HID_ID":
			if b, v, p, err := parseHIDID(val); err == nil {
				bus, vendor, product = b, v, p
			}
		}
	}
	return name, bus, vendor, product
}
