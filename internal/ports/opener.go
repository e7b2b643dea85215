package ports

import "os/exec"

// LinkOpener opens external links (résumé, profiles, mailto) outside the app
type LinkOpener interface {
	// Open opens the URL with the platform's default handler
	Open(url string) error

	// Command returns the exec.Cmd that would open the URL.
	// This is useful for integrating with bubbletea's ExecProcess.
	Command(url string) (*exec.Cmd, error)
}

// Clipboard copies text to the system clipboard
type Clipboard interface {
	Copy(text string) error
}
