package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"starfolio/internal/ports"
)

// ErrNoLink is returned for empty links and the "#" placeholder
var ErrNoLink = errors.New("no link to open")

// Opener implements ports.LinkOpener using the platform URL handler
type Opener struct {
	goos string
}

// Ensure Opener implements LinkOpener
var _ ports.LinkOpener = (*Opener)(nil)

// NewOpener creates a new opener for the running platform
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open opens the URL with the default handler and waits for the launcher to exit
func (o *Opener) Open(link string) error {
	cmd, err := o.Command(link)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening the URL.
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(link string) (*exec.Cmd, error) {
	target, err := BuildURL(link)
	if err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// BuildURL checks that a link can be handed to the platform opener.
// Links are passed through unchanged apart from surrounding whitespace.
func BuildURL(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" || link == "#" {
		return "", ErrNoLink
	}
	return link, nil
}
