// Package hidraw enumerates and inspects the kernel's raw HID device nodes
// (/dev/hidraw0, /dev/hidraw1, ...). It identifies each node through the
// sysfs uevent of its backing HID device, without speaking any HID protocol
// itself. Enumeration is Linux-only; other platforms get stub implementations
// that return an error.
package hidraw
