// Package mini is a prompt-driven alternative to the full-screen interface.
package mini

import (
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/huewheel/huewheel/clipboard"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/harmony/custom"
	"github.com/huewheel/huewheel/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var truncateAt = 100

type Options struct {
	// Hue skips the base color prompt.
	Hue mo.Option[float64]
}

// asker is survey.AskOne without the options.
type asker func(prompt survey.Prompt, response any) error

type mini struct {
	state         state
	statesHistory util.Stack[state]

	out     io.Writer
	ask     asker
	copier  func(text string) bool
	emitter export.Emitter
	random  harmony.Source

	rules   []harmony.Rule
	baseHue mo.Option[float64]
	rule    string
	palette []colorspace.PaletteColor
}

func newMini() *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		out:           os.Stdout,
		ask: func(prompt survey.Prompt, response any) error {
			return survey.AskOne(prompt, response)
		},
		copier:  clipboard.Copy,
		emitter: export.NewFileEmitter(),
		random:  harmony.DefaultSource(),
		rules:   custom.All(),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini()
	m.state = baseSelectState

	if hue, ok := options.Hue.Get(); ok {
		m.baseHue = mo.Some(colorspace.NormalizeHue(hue))
		m.state = ruleSelectState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	return m.run()
}

func (m *mini) run() error {
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case baseSelectState:
		return m.handleBaseSelectState()
	case hueInputState:
		return m.handleHueInputState()
	case colorInputState:
		return m.handleColorInputState()
	case ruleSelectState:
		return m.handleRuleSelectState()
	case paletteState:
		return m.handlePaletteState()
	case colorCopyState:
		return m.handleColorCopyState()
	}

	return nil
}
