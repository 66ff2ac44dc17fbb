package util

import (
	"testing"

	"github.com/huewheel/huewheel/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestSlug(t *testing.T) {
	Convey("Slug", t, func() {
		So(Slug("Ocean Breeze"), ShouldEqual, "ocean-breeze")
		So(Slug("Black  and\tWhite"), ShouldEqual, "black-and-white")
		So(Slug("Sunset"), ShouldEqual, "sunset")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "color", "colors"), ShouldEqual, "1 color")
		So(Quantify(5, "color", "colors"), ShouldEqual, "5 colors")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("triadic"), ShouldEqual, "Triadic")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("émeraude"), ShouldEqual, "Émeraude")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("rules/golden.lua"), ShouldEqual, "golden")
		So(FileStem("golden"), ShouldEqual, "golden")
	})
}

func TestMaxMinClamp(t *testing.T) {
	Convey("Max/Min/Clamp", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Clamp(150, 0, 100), ShouldEqual, 100)
		So(Clamp(-3, 0, 100), ShouldEqual, 0)
		So(Clamp(0.5, 0.0, 1.0), ShouldEqual, 0.5)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("exports", 0o755))
		lo.Must0(afero.WriteFile(fs, "exports/a.json", []byte("{}"), 0o644))

		Convey("Delete removes a single file", func() {
			So(Delete("exports/a.json"), ShouldBeNil)
			So(lo.Must(afero.Exists(fs, "exports/a.json")), ShouldBeFalse)
		})

		Convey("Delete removes the tree", func() {
			So(Delete("exports"), ShouldBeNil)
			So(lo.Must(afero.Exists(fs, "exports")), ShouldBeFalse)
		})

		Convey("Delete fails for missing paths", func() {
			So(Delete("nowhere"), ShouldNotBeNil)
		})
	})
}
