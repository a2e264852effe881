package cli

import (
	"os"
	"testing"

	"github.com/agbru/bigcalc/internal/ui"
)

// TestMain disables colors so that output assertions see plain text.
func TestMain(m *testing.M) {
	ui.SetTheme("none")
	os.Exit(m.Run())
}
