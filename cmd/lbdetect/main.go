package main

import (
	"fmt"
	"log"

	"github.com/Thiagojm/gluco_cli_linux/hidraw"
	"github.com/Thiagojm/gluco_cli_linux/libre"
)

func main() {
	fmt.Println("FreeStyle Libre Device Detection")
	fmt.Println("================================")

	// Check if device is present
	present, err := libre.Detect()
	if err != nil {
		log.Fatalf("detection error: %v", err)
	}

	if !present {
		fmt.Println("❌ No FreeStyle Libre reader found")
		fmt.Println("\nMake sure the reader is connected over USB and awake.")
		fmt.Println("FreeStyle Libre readers use VID 0x1a61 and PID 0x3650.")
	} else {
		fmt.Println("✅ FreeStyle Libre reader detected!")

		device, err := libre.FindDevice()
		if err != nil {
			log.Printf("failed to get device info: %v", err)
		} else {
			fmt.Println("\nDevice Information:")
			fmt.Printf("  Friendly Name: %s\n", device.FriendlyName)
			fmt.Printf("  Device Path: %s\n", device.DevicePath)
			fmt.Printf("  Hardware IDs: %v\n", device.HardwareIDs)
		}
	}

	// List hidraw candidates so the user knows which node to expect the
	// prober to land on.
	nodes, err := hidraw.Enumerate()
	if err != nil {
		log.Printf("failed to enumerate hidraw nodes: %v", err)
		return
	}
	if len(nodes) == 0 {
		fmt.Println("\nNo /dev/hidraw nodes present.")
		return
	}

	fmt.Printf("\nFound %d hidraw node(s):\n", len(nodes))
	for _, n := range nodes {
		mark := " "
		if libre.MatchesNode(n) {
			mark = "*"
		}
		status := "ok"
		if err := hidraw.CheckNode(n.Path); err != nil {
			status = err.Error()
		}
		fmt.Printf("  %s %s  %04x:%04x  %-32s [%s]\n",
			mark, n.Path, n.Vendor, n.Product, n.Name, status)
	}
	fmt.Println("\nNodes marked * match the Libre reader.")
	fmt.Println("You can now run: go run ./cmd/libredump")
}
