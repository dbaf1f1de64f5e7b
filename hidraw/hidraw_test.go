package hidraw

import "testing"

func TestDevicePath(t *testing.T) {
	if got := DevicePath(0); got != "/dev/hidraw0" {
		t.Errorf("DevicePath(0) = %q", got)
	}
	if got := DevicePath(12); got != "/dev/hidraw12" {
		t.Errorf("DevicePath(12) = %q", got)
	}
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("hidraw4")
	if err != nil || idx != 4 {
		t.Errorf("ParseIndex(hidraw4) = %d, %v", idx, err)
	}
	for _, bad := range []string{"hidraw", "hidrawX", "ttyUSB0", "hidraw-1", ""} {
		if _, err := ParseIndex(bad); err == nil {
			t.Errorf("ParseIndex(%q) accepted", bad)
		}
	}
}

func TestParseHIDID(t *testing.T) {
	bus, vendor, product, err := parseHIDID("0003:00001A61:00003650")
	if err != nil {
		t.Fatalf("parseHIDID error: %v", err)
	}
	if bus != 0x3 || vendor != 0x1a61 || product != 0x3650 {
		t.Errorf("parseHIDID = %04x:%04x:%04x", bus, vendor, product)
	}
	for _, bad := range []string{"", "0003:00001A61", "0003:zzzz:0001", "1:2:3:4"} {
		if _, _, _, err := parseHIDID(bad); err == nil {
			t.Errorf("parseHIDID(%q) accepted", bad)
		}
	}
}

func TestParseUevent(t *testing.T) {
	data := "DRIVER=hid-generic\n" +
		"HID_ID=0003:00001A61:00003650\n" +
		"HID_NAME=FreeStyle Libre\n" +
		"HID_PHYS=usb-0000:00:14.0-2/input0\n" +
		"MODALIAS=hid:b0003g0001v00001A61p00003650\n"
	name, bus, vendor, product := parseUevent(data)
	if name != "FreeStyle Libre" {
		t.Errorf("name = %q", name)
	}
	if bus != 0x3 || vendor != 0x1a61 || product != 0x3650 {
		t.Errorf("id = %04x:%04x:%04x", bus, vendor, product)
	}

	// Missing keys leave zero values.
	name, bus, vendor, product = parseUevent("DRIVER=hid-generic\n")
	if name != "" || bus != 0 || vendor != 0 || product != 0 {
		t.Errorf("empty uevent parsed to %q %x %x %x", name, bus, vendor, product)
	}
}
