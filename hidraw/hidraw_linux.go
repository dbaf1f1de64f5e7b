//go:build linux

package hidraw

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sys/unix"
)

// Enumerate lists all hidraw nodes present on the system, sorted by index.
func Enumerate() ([]NodeInfo, error) {
	return EnumerateAt(DefaultSysDir, DefaultDevDir)
}

// EnumerateAt is Enumerate with configurable sysfs and /dev roots.
func EnumerateAt(sysDir, devDir string) ([]NodeInfo, error) {
	entries, err := os.ReadDir(sysDir)
	if err != nil {
		if os.IsNotExist(err) {
			// No hidraw class at all means no devices, not a failure.
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", sysDir, err)
	}

	var nodes []NodeInfo
	for _, e := range entries {
		idx, err := ParseIndex(e.Name())
		if err != nil {
			continue
		}
		n := NodeInfo{
			Index: idx,
			Path:  filepath.Join(devDir, e.Name()),
		}
		// The uevent of the backing HID device carries name and IDs.
		// A node without readable uevent is still reported.
		data, err := os.ReadFile(filepath.Join(sysDir, e.Name(), "device", "uevent"))
		if err == nil {
			n.Name, n.Bus, n.Vendor, n.Product = parseUevent(string(data))
		}
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Index < nodes[j].Index })
	return nodes, nil
}

// CheckNode verifies that path exists, is a character device, and is readable
// and writable by the current process. It returns nil when the node looks
// usable, and a descriptive error otherwise.
func CheckNode(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFCHR {
		return fmt.Errorf("%s is not a character device", path)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}
	return nil
}
