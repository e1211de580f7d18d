package normalize

import (
	"regexp"
	"strings"
)

// machinePrefix matches a redundant leading "Machine" tag in any case, with
// optional separator, so "Machine 1", "machine-1" and "MACHINE1" all reduce
// to "1".
var machinePrefix = regexp.MustCompile(`(?i)^machine[\s_-]*`)

// MachineLabel canonicalizes raw machine-identifier text into the display
// label used everywhere downstream, including rate-card matching.
// "1", " Machine 1 " and "machine 1" all yield "Machine 1".
func MachineLabel(raw string) string {
	id := strings.TrimSpace(machinePrefix.ReplaceAllString(strings.TrimSpace(raw), ""))
	if id == "" {
		return "Machine unknown"
	}
	return "Machine " + id
}
