package vrcursor

import (
	"fmt"
	"os"
)

// debugLogf prints a lifecycle diagnostic to stderr. Caller holds m.mu or
// tolerates a stale debug flag.
func (m *MouseDeviceManager) debugLogf(format string, args ...any) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[vrcursor] "+format+"\n", args...)
}
