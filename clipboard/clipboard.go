// Package clipboard copies text to the user's clipboard.
//
// The system clipboard is tried first. When it is unavailable, as over SSH or
// on a headless box, an OSC52 escape sequence asks the terminal to do it.
package clipboard

import (
	"errors"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/log"
	"github.com/spf13/viper"
)

var ErrUnsupported = errors.New("no clipboard available")

// Clipboard is a two-stage copier.
type Clipboard struct {
	// System writes to the OS clipboard. Nil skips the stage.
	System func(text string) error

	// Terminal receives the OSC52 sequence.
	Terminal io.Writer

	// OSC52 enables the terminal fallback.
	OSC52 bool
}

// New returns a clipboard wired to the OS and stderr, honoring clipboard.osc52.
func New() *Clipboard {
	c := &Clipboard{
		Terminal: os.Stderr,
		OSC52:    viper.GetBool(key.ClipboardOSC52),
	}

	if !atotto.Unsupported {
		c.System = atotto.WriteAll
	}

	return c
}

// Write copies text and reports the last failure when no stage succeeded.
func (c *Clipboard) Write(text string) error {
	err := ErrUnsupported

	if c.System != nil {
		if err = c.System(text); err == nil {
			return nil
		}
		log.WithFields(log.Fields{"stage": "system"}).Debug(err)
	}

	if c.OSC52 && c.Terminal != nil {
		if _, err = osc52.New(text).WriteTo(c.Terminal); err == nil {
			return nil
		}
		log.WithFields(log.Fields{"stage": "osc52"}).Debug(err)
	}

	return err
}

// Copy reports whether text reached a clipboard.
func (c *Clipboard) Copy(text string) bool {
	return c.Write(text) == nil
}

// Copy copies text with the default clipboard.
func Copy(text string) bool {
	return New().Copy(text)
}
