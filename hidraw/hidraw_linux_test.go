//go:build linux

package hidraw

import (
	"os"
	"path/filepath"
	"testing"
)

func writeUevent(t *testing.T, sysDir, node, content string) {
	t.Helper()
	dir := filepath.Join(sysDir, node, "device")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "uevent"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerateAt(t *testing.T) {
	sysDir := t.TempDir()
	writeUevent(t, sysDir, "hidraw2",
		"HID_ID=0003:00001A61:00003650\nHID_NAME=FreeStyle Libre\n")
	writeUevent(t, sysDir, "hidraw0",
		"HID_ID=0003:0000046D:0000C31C\nHID_NAME=Logitech USB Keyboard\n")
	// A stray non-hidraw entry must be ignored.
	if err := os.MkdirAll(filepath.Join(sysDir, "unrelated"), 0o755); err != nil {
		t.Fatal(err)
	}

	nodes, err := EnumerateAt(sysDir, "/dev")
	if err != nil {
		t.Fatalf("EnumerateAt() error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].Index != 0 || nodes[1].Index != 2 {
		t.Errorf("nodes not sorted by index: %+v", nodes)
	}
	libre := nodes[1]
	if libre.Path != "/dev/hidraw2" {
		t.Errorf("Path = %q", libre.Path)
	}
	if libre.Name != "FreeStyle Libre" || libre.Vendor != 0x1a61 || libre.Product != 0x3650 {
		t.Errorf("libre node = %+v", libre)
	}
}

func TestEnumerateAtMissingSysDir(t *testing.T) {
	nodes, err := EnumerateAt(filepath.Join(t.TempDir(), "nope"), "/dev")
	if err != nil {
		t.Fatalf("EnumerateAt() error: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("got %d nodes, want 0", len(nodes))
	}
}

func TestCheckNode(t *testing.T) {
	if err := CheckNode(filepath.Join(t.TempDir(), "hidraw0")); err == nil {
		t.Error("CheckNode accepted a missing node")
	}

	// A regular file is not a character device.
	f := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckNode(f); err == nil {
		t.Error("CheckNode accepted a regular file")
	}

	if err := CheckNode("/dev/null"); err != nil {
		t.Errorf("CheckNode(/dev/null) = %v, want nil", err)
	}
}
