package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/query"
	"github.com/huewheel/huewheel/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	panelStyle            = lipgloss.NewStyle().PaddingLeft(4)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case pagesState:
		output = listExtraPaddingStyle.Render(b.pagesC.View())
	case libraryState:
		output = listExtraPaddingStyle.Render(b.libraryC.View())
	case schemesState:
		output = listExtraPaddingStyle.Render(b.schemesC.View())
	case wheelState:
		output = b.viewWheel()
	case searchState:
		output = b.viewSearch()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewSearch() string {
	title := "Search Colors"
	if b.searchScope == query.Schemes {
		title = "Search Schemes"
	}

	lines := []string{
		style.Title(title),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

// renderWheel draws the sampled grid, marking the cursor cell.
func (b *statefulBubble) renderWheel() string {
	var sb strings.Builder

	for row, cells := range b.cells {
		for col, cell := range cells {
			sample, inside := cell.Get()
			cursor := row == b.cursorRow && col == b.cursorCol

			switch {
			case inside && cursor:
				info := sample.Info()
				sb.WriteString(style.Colored(color.Contrasting(info.HSL.L), color.New(info.Hex.String())).Render("+"))
			case inside:
				sb.WriteString(style.Bg(color.New(sample.Info().Hex.String()))(" "))
			case cursor:
				sb.WriteString(style.Faint("+"))
			default:
				sb.WriteString(" ")
			}
		}

		if row < len(b.cells)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func chip(info colorspace.Info) string {
	return style.Chip(info.Hex.String(), info.HSL.L, info.Hex.String())
}

func (b *statefulBubble) viewSelection() []string {
	info, ok := b.selection.Color().Get()
	if !ok {
		return []string{style.Faint("Move with the arrows and press enter to pick a color")}
	}

	lines := []string{
		fmt.Sprintf("%s %s", chip(info), style.Bold(info.Name)),
		"",
		fmt.Sprintf("HEX  %s", info.Hex),
		fmt.Sprintf("RGB  %s", info.RGB.CSS()),
		fmt.Sprintf("HSL  %s", info.HSL.CSS()),
	}

	if hue, ok := b.selection.BaseHue().Get(); ok {
		lines = append(lines, style.Faint(fmt.Sprintf("Base hue %.0f°", hue)))
	}

	return lines
}

func (b *statefulBubble) viewPalette() []string {
	if len(b.palette) == 0 {
		return []string{style.Faint("No palette generated yet")}
	}

	title := "Random palette"
	if b.paletteRule != "" {
		title = fmt.Sprintf("%s palette", b.ruleTitle(b.paletteRule))
	}

	lines := []string{style.Bold(title)}
	for i, c := range b.palette {
		marker := "  "
		if i == b.paletteIndex {
			marker = style.Fg(style.AccentColor)(icon.Get(icon.Mark) + " ")
		}

		lines = append(lines, fmt.Sprintf("%s%s %s", marker, chip(c.Info), style.Faint(c.Name)))
	}

	return lines
}

func (b *statefulBubble) ruleTitle(name string) string {
	for _, r := range b.rules {
		if r.Name == name {
			return r.Title()
		}
	}

	return name
}

func (b *statefulBubble) viewWheel() string {
	rule := b.currentRule()

	panel := []string{style.Title("Color Wheel"), ""}
	panel = append(panel, b.viewSelection()...)
	panel = append(panel, "", fmt.Sprintf("Rule %s", style.Tag(style.Surface, style.Lavender)(rule.Title())))
	if rule.Description != "" {
		panel = append(panel, style.Faint(wrap.String(rule.Description, 40)))
	}

	panel = append(panel, "")
	panel = append(panel, b.viewPalette()...)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		b.renderWheel(),
		panelStyle.Render(strings.Join(panel, "\n")),
	)

	return b.renderLines(true, strings.Split(body, "\n"))
}

func (b *statefulBubble) viewError() string {
	errorBody := style.Fg(style.ErrorColor)(b.lastError.Error())
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			wrap.String(errorBody, b.width),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
