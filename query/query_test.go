package query

import (
	"testing"

	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered library queries", t, func() {
		So(Remember(Library, "Sky", 1), ShouldBeNil)
		So(Remember(Library, "steel", 10), ShouldBeNil)
		So(Remember(Schemes, "slate", 100), ShouldBeNil)

		Convey("Suggestions are ranked within their scope", func() {
			So(SuggestMany(Library, "s"), ShouldResemble, []string{"steel", "sky"})
			So(Suggest(Library, "sk").MustGet(), ShouldEqual, "sky")
		})

		Convey("Other scopes are not mixed in", func() {
			So(SuggestMany(Library, "slate"), ShouldBeEmpty)
			So(Suggest(Schemes, "sl").MustGet(), ShouldEqual, "slate")
		})

		Convey("Remembering again refreshes the ranking", func() {
			SuggestMany(Library, "s")
			So(Remember(Library, "sky", 100), ShouldBeNil)
			So(SuggestMany(Library, "s")[0], ShouldEqual, "sky")
		})

		Convey("Blank queries are ignored", func() {
			So(Remember(Library, "   ", 1), ShouldBeNil)
			So(SuggestMany(Library, ""), ShouldNotContain, "")
		})

		Convey("Nothing is suggested when suggestions are off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(Suggest(Library, "s").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("sanitize trims and lowercases", t, func() {
		So(sanitize("  CORAL  "), ShouldEqual, "coral")
	})
}
