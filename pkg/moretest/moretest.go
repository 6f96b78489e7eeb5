package moretest

import "testing"

// SetupFunc prepares a fixture and returns its cleanup, or nil when
// nothing needs tearing down.
type SetupFunc func(t *testing.T) func() error

type SetupListFunc []SetupFunc

// Suite runs the setups in order, the test, then the cleanups in reverse.
func Suite(t *testing.T, name string, setups SetupListFunc, test func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		cleanups := make([]func() error, 0, len(setups))
		for _, setup := range setups {
			if clean := setup(t); clean != nil {
				cleanups = append(cleanups, clean)
			}
		}

		defer func() {
			for i := len(cleanups) - 1; i >= 0; i-- {
				if err := cleanups[i](); err != nil {
					t.Errorf("cleanup failed: %v", err)
				}
			}
		}()

		test(t)
	})
}
