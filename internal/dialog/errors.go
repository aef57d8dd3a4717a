package dialog

import (
	"errors"
	"fmt"
)

// ErrSessionActive is returned by Open while a prior session on the same
// Session value has not reached its terminal state.
var ErrSessionActive = errors.New("dialog: session already active")

// ConfigurationError reports that the modern task-dialog control is not
// reachable on this host. It is distinct from every other failure so
// callers can surface the remediation text instead of a generic fault.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("dialog: task dialog control unavailable: %v; "+
		"the host needs common controls v6 (embed a comctl32 v6 manifest) "+
		"or the application must select the terminal backend", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
