package mini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/history"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/namer"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type state int

const (
	baseSelectState state = iota + 1
	hueInputState
	colorInputState
	ruleSelectState
	paletteState
	colorCopyState
	quitState
)

const (
	optionHue    = "Enter a hue"
	optionColor  = "Enter a color"
	optionRandom = "Random palette"
	optionCopy   = "Copy all"
	optionPick   = "Copy one color"
	optionExport = "Export"
	optionRule   = "Try another rule"
	optionBase   = "New base color"
	optionBack   = "Back"
	optionQuit   = "Quit"
)

func (m *mini) selectOne(message string, options []string, def string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	if slices.Contains(options, def) {
		prompt.Default = def
	}

	var answer string
	err := m.ask(prompt, &answer)
	return answer, err
}

func (m *mini) input(message string, validate func(string) error) (string, error) {
	for {
		var answer string
		if err := m.ask(&survey.Input{Message: message}, &answer); err != nil {
			return "", err
		}

		answer = strings.TrimSpace(answer)
		err := validate(answer)
		if err == nil {
			return answer, nil
		}

		m.fail(err.Error())
	}
}

func (m *mini) handleBaseSelectState() error {
	m.title("Base Color")
	answer, err := m.selectOne("How do you want to start?", []string{optionHue, optionColor, optionRandom, optionQuit}, "")
	if err != nil {
		return err
	}

	switch answer {
	case optionHue:
		m.newState(hueInputState)
	case optionColor:
		m.newState(colorInputState)
	case optionRandom:
		palette, baseHue := harmony.Random(m.random)
		m.baseHue = mo.Some(baseHue)
		m.rule = ""
		m.palette = palette
		m.remember()
		m.success("Generated random color palette!")
		m.newState(paletteState)
	default:
		m.newState(quitState)
	}

	return nil
}

func parseHue(s string) (float64, error) {
	hue, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	if hue < 0 || hue > 360 {
		return 0, fmt.Errorf("hue %v must be between 0 and 360", hue)
	}

	return hue, nil
}

func (m *mini) handleHueInputState() error {
	answer, err := m.input("Hue (0-360)", func(s string) error {
		_, err := parseHue(s)
		return err
	})
	if err != nil {
		return err
	}

	m.baseHue = mo.Some(colorspace.NormalizeHue(lo.Must(parseHue(answer))))
	m.newState(ruleSelectState)
	return nil
}

func (m *mini) handleColorInputState() error {
	answer, err := m.input("Color (#rrggbb or r, g, b)", func(s string) error {
		_, err := colorspace.Parse(s)
		return err
	})
	if err != nil {
		return err
	}

	info := lo.Must(colorspace.Describe(answer, namer.NameRGB))
	m.printInfo(info)

	m.baseHue = mo.Some(info.HSL.H)
	m.newState(ruleSelectState)
	return nil
}

func (m *mini) handleRuleSelectState() error {
	m.title(fmt.Sprintf("Base hue %.0f°", m.baseHue.OrElse(0)))

	names := harmony.Names(m.rules)
	answer, err := m.selectOne("Harmony rule", append(names, optionBack), viper.GetString(key.HarmonyDefaultRule))
	if err != nil {
		return err
	}

	if answer == optionBack {
		m.previousState()
		return nil
	}

	rule, err := harmony.Find(answer, m.rules)
	if err != nil {
		return err
	}

	palette, err := harmony.ForSelection(m.baseHue, rule)
	if err != nil {
		if errors.Is(err, harmony.ErrNoBaseColor) {
			m.fail("Choose a base color first")
			m.newState(baseSelectState)
			return nil
		}

		return err
	}

	m.rule = rule.Name
	m.palette = palette
	m.remember()
	m.success(fmt.Sprintf("Generated %s color palette!", rule.Name))
	m.newState(paletteState)
	return nil
}

func (m *mini) handlePaletteState() error {
	m.printPalette()

	answer, err := m.selectOne("What next?", []string{optionCopy, optionPick, optionExport, optionRule, optionBase, optionQuit}, "")
	if err != nil {
		return err
	}

	switch answer {
	case optionCopy:
		m.copy("palette", harmony.Joined(m.palette))
	case optionPick:
		m.newState(colorCopyState)
	case optionExport:
		m.export()
	case optionRule:
		m.newState(ruleSelectState)
	case optionBase:
		m.newState(baseSelectState)
	default:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleColorCopyState() error {
	options := lo.Map(m.palette, func(c colorspace.PaletteColor, _ int) string {
		return fmt.Sprintf("%s %s", c.Hex, c.Name)
	})

	answer, err := m.selectOne("Color", append(options, optionBack), "")
	if err != nil {
		return err
	}

	if i := slices.Index(options, answer); i >= 0 {
		c := m.palette[i]
		m.copy(c.Name, c.Hex.String())
	}

	m.previousState()
	return nil
}

func (m *mini) copy(label, text string) {
	if !m.copier(text) {
		m.fail("Failed to copy")
		return
	}

	m.success(fmt.Sprintf("Copied %s: %s", label, text))
}

func (m *mini) export() {
	doc, err := export.NewPalette(m.palette, m.baseHue.OrElse(0), m.rule, nowFunc())
	if err != nil {
		m.fail("No palette generated yet")
		return
	}

	filename, err := export.Emit(m.emitter, doc)
	if err != nil {
		m.fail(err.Error())
		return
	}

	m.success(fmt.Sprintf("Palette downloaded successfully to %s", filename))
}

func (m *mini) remember() {
	if err := history.Save(m.palette, m.baseHue.OrElse(0), m.rule, nowFunc()); err != nil {
		log.Warnf("could not remember palette: %v", err)
	}
}
