// Package env identifies the runtime environment for the window title and
// startup log.
package env

import (
	"os"
	"strings"
)

// Detect probes the filesystem and environment variables and returns a
// human-readable label for where the harness is running.
func Detect() string {
	inContainer := false
	if _, ok := os.LookupEnv("CONTAINER_ID"); ok {
		inContainer = true
	}
	if !inContainer {
		if _, err := os.Stat("/.dockerenv"); err == nil {
			inContainer = true
		}
	}
	if !inContainer {
		if _, err := os.ReadFile("/run/.containerenv"); err == nil {
			inContainer = true
		}
	}

	osRelease, _ := os.ReadFile("/etc/os-release")
	return classify(inContainer, string(osRelease))
}

// classify maps probe results to a label.
func classify(inContainer bool, osRelease string) string {
	isAurora := strings.Contains(osRelease, "Aurora")
	isFedora := strings.Contains(osRelease, "Fedora")

	switch {
	case inContainer && isAurora:
		return "Aurora DX Distrobox"
	case inContainer && isFedora:
		return "Fedora Distrobox"
	case inContainer:
		return "Container Environment"
	case isAurora:
		return "Aurora DX (Host)"
	case isFedora:
		return "Fedora (Host)"
	default:
		return "Native Environment"
	}
}
