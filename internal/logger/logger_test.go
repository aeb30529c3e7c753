package logger

import "testing"

func TestGetReturnsSharedLogger(t *testing.T) {
	first := Get()
	second := Get()
	if first != second {
		t.Error("Get returned different logger instances")
	}
	// Exercise the chained event builders through the returned pointer.
	first.Info().Str("component", "test").Msg("shared logger in use")
	first.Debug().Int("n", 1).Msg("debug event")
}
