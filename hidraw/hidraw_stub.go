//go:build !linux

package hidraw

import "errors"

var errUnsupported = errors.New("hidraw enumeration is only supported on Linux")

func Enumerate() ([]NodeInfo, error) { return nil, errUnsupported }

func EnumerateAt(sysDir, devDir string) ([]NodeInfo, error) { return nil, errUnsupported }

func CheckNode(path string) error { return errUnsupported }
