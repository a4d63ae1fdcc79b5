package shimmer

import (
	"os"
	"testing"

	"github.com/grindlemire/shimmer/internal/debug"
)

// TestMain silences the package logger so SHIMMER_DEBUG in the developer's
// environment does not leak test records into their log file.
func TestMain(m *testing.M) {
	debug.Init("")
	os.Exit(m.Run())
}
