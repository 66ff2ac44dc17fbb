package where

import (
	"path/filepath"
	"testing"

	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, fn := range map[string]func() string{
			"Config": Config,
			"Cache":  Cache,
			"Logs":   Logs,
			"Rules":  Rules,
			"Temp":   Temp,
		} {
			Convey(name+"()", func() {
				path := fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("Rules() lives inside Config()", func() {
			So(filepath.Dir(Rules()), ShouldEqual, Config())
		})

		Convey("Registries live in Cache()", func() {
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
			So(filepath.Dir(History()), ShouldEqual, Cache())
		})

		Convey("Exports() honors export.dir", func() {
			dir := filepath.Join(Temp(), "exports")
			viper.Set(key.ExportDir, dir)
			defer viper.Set(key.ExportDir, "")

			So(Exports(), ShouldEqual, dir)
			So(lo.Must(filesystem.API().IsDir(dir)), ShouldBeTrue)
		})
	})
}
