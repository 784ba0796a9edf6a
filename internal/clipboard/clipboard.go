// Package clipboard puts workspace text, trees and paths, on the system
// clipboard.
package clipboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/dustin/go-humanize"

	"github.com/Akaiko1/code-reader/internal/log"
)

// Target names what is being copied. It shows up in status and error text.
type Target string

const (
	TargetTree        Target = "file tree"
	TargetVisibleTree Target = "visible file tree"
	TargetPath        Target = "path"
)

// Copied is the status line shown after a successful copy of t.
func (t Target) Copied() string {
	return fmt.Sprintf("Copied %s to clipboard.", t)
}

// Copier copies text out of the application.
type Copier interface {
	Copy(target Target, text string) error
}

// FyneCopier implements Copier on a Fyne clipboard.
type FyneCopier struct {
	clipboard fyne.Clipboard
}

// NewFyneCopier wraps c, which may be nil on drivers without a clipboard.
func NewFyneCopier(c fyne.Clipboard) *FyneCopier {
	return &FyneCopier{clipboard: c}
}

// Copy replaces the clipboard text with text. Empty text is refused and the
// clipboard keeps what the user had.
func (c *FyneCopier) Copy(target Target, text string) error {
	if c.clipboard == nil {
		return fmt.Errorf("cannot copy %s: clipboard is not available", target)
	}
	if text == "" {
		return fmt.Errorf("no %s to copy", target)
	}
	c.clipboard.SetContent(text)
	log.Debugf("copied %s (%s)", target, humanize.Bytes(uint64(len(text))))
	return nil
}
