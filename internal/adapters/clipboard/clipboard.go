package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"starfolio/internal/ports"
)

// System implements ports.Clipboard with the OS clipboard
type System struct{}

// Ensure System implements Clipboard
var _ ports.Clipboard = System{}

// Copy writes text to the clipboard
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
