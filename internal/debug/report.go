// Package debug formats runtime snapshots for the debug overlay and the
// clipboard.
package debug

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/input"
)

// Report is a snapshot of the orchestrator state.
type Report struct {
	Resolution event.Vec2
	Aspect     float64
	DPR        int
	DomOffset  event.Point
	Dir        input.Directions
	Frames     uint64
	State      string
	Muted      bool
	Fireflies  int
}

// Lines returns the report as overlay lines.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("frame %d  state %s", r.Frames, r.State),
		fmt.Sprintf("res %.1fx%.1f  aspect %.4f  dpr %d", r.Resolution.X, r.Resolution.Y, r.Aspect, r.DPR),
		fmt.Sprintf("offset %d,%d", r.DomOffset.X, r.DomOffset.Y),
		fmt.Sprintf("dir %s", dirString(r.Dir)),
		fmt.Sprintf("fireflies %d  muted %t", r.Fireflies, r.Muted),
	}
}

// String joins the lines with newlines.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

func dirString(d input.Directions) string {
	var parts []string
	if d.Up {
		parts = append(parts, input.Up)
	}
	if d.Down {
		parts = append(parts, input.Down)
	}
	if d.Left {
		parts = append(parts, input.Left)
	}
	if d.Right {
		parts = append(parts, input.Right)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard writes the report text to the system clipboard.
func CopyToClipboard(r Report) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := writeClipboard(r.String()); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
