package wheel

import (
	"github.com/huewheel/huewheel/colorspace"
	"github.com/samber/mo"
)

// Selection is the per-session state of the wheel: the last picked color and
// the hue that harmony rules are built on. The zero value has nothing selected.
type Selection struct {
	color mo.Option[colorspace.Info]
	hue   float64
}

// Pick selects the color under the offset. Points outside the wheel are
// ignored and leave the selection unchanged.
func (s *Selection) Pick(g Geometry, dx, dy float64) (colorspace.Info, bool) {
	sample, ok := g.PointToColor(dx, dy).Get()
	if !ok {
		return colorspace.Info{}, false
	}

	info := sample.Info()
	s.color = mo.Some(info)
	if sample.Chromatic {
		s.hue = sample.HSL.H
	}

	return info, true
}

// Color returns the last picked color.
func (s *Selection) Color() mo.Option[colorspace.Info] {
	return s.color
}

// BaseHue is None until a color has been picked. Picking a gray keeps the
// previous hue, which starts at 0.
func (s *Selection) BaseHue() mo.Option[float64] {
	if s.color.IsAbsent() {
		return mo.None[float64]()
	}

	return mo.Some(s.hue)
}

// Adopt moves the base hue without touching the picked color.
func (s *Selection) Adopt(hue float64) {
	s.hue = colorspace.NormalizeHue(hue)
}
