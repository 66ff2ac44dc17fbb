package harmony

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRule(t *testing.T) {
	Convey("Given built-in rule names", t, func() {
		for _, r := range Builtins() {
			got, err := ParseRule(r.Name)
			So(err, ShouldBeNil)
			So(got.Name, ShouldEqual, r.Name)
		}
	})

	Convey("Given aliases and odd casing", t, func() {
		for _, name := range []string{"splitComplementary", "split", "Split Complementary", "SPLIT_COMPLEMENTARY"} {
			got, err := ParseRule(name)
			So(err, ShouldBeNil)
			So(got.Name, ShouldEqual, SplitComplementary.Name)
		}
	})

	Convey("Given a typo", t, func() {
		_, err := ParseRule("tetradik")
		So(errors.Is(err, ErrUnknownRule), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "did you mean tetradic?")
	})

	Convey("Given no candidates", t, func() {
		_, err := Find("anything", nil)
		So(errors.Is(err, ErrUnknownRule), ShouldBeTrue)
	})

	Convey("Given a custom rule that shadows a built-in", t, func() {
		shadow := Rule{Name: "triadic", Offsets: []float64{0}, Custom: true}
		got, err := Find("triadic", append(Builtins(), shadow))
		So(err, ShouldBeNil)
		So(got.Custom, ShouldBeFalse)
	})
}

func TestTitle(t *testing.T) {
	Convey("Title", t, func() {
		So(SplitComplementary.Title(), ShouldEqual, "Split Complementary")
		So(Triadic.Title(), ShouldEqual, "Triadic")
		So(Rule{Name: "émeraude-vive"}.Title(), ShouldEqual, "Émeraude Vive")
		So(Names(Builtins()), ShouldResemble, []string{
			"complementary", "triadic", "tetradic", "analogous", "split-complementary",
		})
	})
}
