package mini

import (
	"fmt"
	"time"

	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/style"
	"github.com/muesli/reflow/truncate"
)

var nowFunc = time.Now

func (m *mini) println(s string) {
	_, _ = fmt.Fprintln(m.out, truncate.StringWithTail(s, uint(truncateAt), "…"))
}

func (m *mini) title(s string) {
	m.println(style.Fg(color.Purple)(style.Bold(s)))
}

func (m *mini) fail(s string) {
	m.println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + s))
}

func (m *mini) success(s string) {
	m.println(style.Fg(color.Green)(icon.Get(icon.Success) + " " + s))
}

func (m *mini) printInfo(info colorspace.Info) {
	m.println(fmt.Sprintf("%s %s", style.Chip(info.Hex.String(), info.HSL.L, info.Hex.String()), info.Name))
	m.println(style.Faint(fmt.Sprintf("%s  %s", info.RGB.CSS(), info.HSL.CSS())))
}

func (m *mini) printPalette() {
	for _, c := range m.palette {
		m.println(fmt.Sprintf("%d. %s %s %s",
			c.Position+1,
			style.Chip(c.Hex.String(), c.HSL.L, c.Hex.String()),
			c.Name,
			style.Faint(c.HSL.CSS()),
		))
	}
}
