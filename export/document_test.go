package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/scheme"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

var moment = time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.FixedZone("CET", 3600))

func TestTimestamp(t *testing.T) {
	Convey("Timestamps are UTC with milliseconds", t, func() {
		So(Timestamp(moment), ShouldEqual, "2024-03-09T13:05:06.789Z")
	})
}

func TestPalette(t *testing.T) {
	Convey("Given a complementary palette", t, func() {
		colors := lo.Must(harmony.Generate(0, harmony.Complementary))
		doc, err := NewPalette(colors, 0, harmony.Complementary.Name, moment)
		So(err, ShouldBeNil)

		Convey("It carries every notation of every color", func() {
			So(doc.Colors[1], ShouldResemble, Color{
				Name: "Custom Color",
				Hex:  "#26d9d9",
				RGB:  "rgb(38, 217, 217)",
				HSL:  "hsl(180, 70%, 50%)",
			})
		})

		Convey("It has a fresh id and the fixed filename", func() {
			So(lo.Must(uuid.Parse(doc.ID)).String(), ShouldEqual, doc.ID)
			So(doc.Filename(), ShouldEqual, "color-wheel-palette.json")
		})

		Convey("The JSON uses camelCase keys and two-space indentation", func() {
			data := lo.Must(Marshal(doc))
			So(string(data), ShouldContainSubstring, "\n  \"baseHue\": 0,")
			So(string(data), ShouldContainSubstring, `"generatedAt": "2024-03-09T13:05:06.789Z"`)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["rule"], ShouldEqual, "complementary")
			So(decoded["colors"], ShouldHaveLength, 2)
		})
	})

	Convey("Given a random palette", t, func() {
		colors, base := harmony.Random(harmony.SeededSource(1))
		doc := lo.Must(NewPalette(colors, base, "", moment))

		Convey("The rule is omitted", func() {
			So(string(lo.Must(Marshal(doc))), ShouldNotContainSubstring, `"rule"`)
		})
	})

	Convey("Given nothing to export", t, func() {
		_, err := NewPalette(nil, 0, "", moment)
		So(err, ShouldEqual, ErrEmptyPalette)
	})
}

func TestScheme(t *testing.T) {
	Convey("Given a curated scheme", t, func() {
		s, ok := scheme.Find("Flat UI Blues")
		So(ok, ShouldBeTrue)

		doc := NewScheme(s, moment)
		So(doc.Filename(), ShouldEqual, "flat-ui-blues-scheme.json")
		So(doc.Colors, ShouldResemble, s.Colors)
		So(doc.DownloadedAt, ShouldEqual, "2024-03-09T13:05:06.789Z")

		Convey("The document does not alias the catalog", func() {
			doc.Colors[0] = "#123456"
			So(s.Colors[0], ShouldNotEqual, "#123456")
		})
	})

	Convey("Filenames collapse whitespace runs", t, func() {
		So(SchemeFilename("WCAG  AA Compliant"), ShouldEqual, "wcag-aa-compliant-scheme.json")
	})
}
