package harmony

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type fixedSource struct {
	values []float64
	i      int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestRandom(t *testing.T) {
	Convey("Given a scripted source", t, func() {
		src := &fixedSource{values: []float64{0.5, 0, 0, 0.999, 0.999}}
		palette, base := Random(src)

		So(base, ShouldEqual, 180)
		So(len(palette), ShouldEqual, RandomSize)
		So(hues(palette), ShouldResemble, []float64{180, 252, 324, 36, 108})

		Convey("Saturation and lightness come from the source", func() {
			So(palette[0].HSL.S, ShouldEqual, 0.6)
			So(palette[0].HSL.L, ShouldEqual, 0.4)
			So(palette[1].HSL.S, ShouldAlmostEqual, 0.9996, 1e-9)
		})
	})

	Convey("Given a seeded source", t, func() {
		a, baseA := Random(SeededSource(42))
		b, baseB := Random(SeededSource(42))

		So(baseA, ShouldEqual, baseB)
		So(Hexes(a), ShouldResemble, Hexes(b))

		Convey("Every color stays within the documented bounds", func() {
			for seed := range uint64(50) {
				palette, base := Random(SeededSource(seed))
				So(base, ShouldBeGreaterThanOrEqualTo, 0)
				So(base, ShouldBeLessThan, 360)

				for i, c := range palette {
					So(c.Position, ShouldEqual, i)
					So(c.HSL.S, ShouldBeBetweenOrEqual, 0.6, 1)
					So(c.HSL.L, ShouldBeBetweenOrEqual, 0.4, 0.8)
				}
			}
		})
	})

	Convey("Given the default source", t, func() {
		palette, _ := Random(DefaultSource())
		So(lo.Uniq(Hexes(palette)), ShouldNotBeEmpty)
	})
}
