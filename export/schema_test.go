package export

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSchema(t *testing.T) {
	Convey("Given the palette document", t, func() {
		data, err := Schema(Palette{})
		So(err, ShouldBeNil)

		var schema map[string]any
		So(json.Unmarshal(data, &schema), ShouldBeNil)

		Convey("It lists the exported properties", func() {
			props := schema["properties"].(map[string]any)
			So(props, ShouldContainKey, "colors")
			So(props, ShouldContainKey, "baseHue")
			So(props, ShouldContainKey, "generatedAt")
		})

		Convey("The rule is optional", func() {
			So(schema["required"], ShouldNotContain, "rule")
			So(schema["required"], ShouldContain, "id")
		})
	})

	Convey("Given the scheme document", t, func() {
		data := lo.Must(Schema(Scheme{}))
		So(string(data), ShouldContainSubstring, "downloadedAt")
	})
}
