package main

import (
	"fmt"
	"os"

	"github.com/Thiagojm/gluco_cli_linux/hidraw"
)

func main() {
	path := hidraw.DevicePath(0)
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := hidraw.CheckNode(path); err != nil {
		fmt.Printf("Node check failed for %s: %v\n", path, err)
		return
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	fmt.Printf("Successfully opened %s\n", path)

	nodes, err := hidraw.Enumerate()
	if err != nil {
		fmt.Printf("Enumerate error: %v\n", err)
		return
	}
	for _, n := range nodes {
		fmt.Printf("%s  %04x:%04x  %s\n", n.Path, n.Vendor, n.Product, n.Name)
	}
}
