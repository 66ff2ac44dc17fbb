package icon

import (
	"fmt"
	"testing"

	"github.com/huewheel/huewheel/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			Convey(fmt.Sprintf("Icon %d renders for each variant", i), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Lua), ShouldBeEmpty)
		})

		Convey("It returns empty for an unregistered icon", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(-1)), ShouldBeEmpty)
		})
	})
}
