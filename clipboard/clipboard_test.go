package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/huewheel/huewheel/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestCopy(t *testing.T) {
	Convey("Given a working system clipboard", t, func() {
		var got string
		var term bytes.Buffer
		c := &Clipboard{
			System:   func(s string) error { got = s; return nil },
			Terminal: &term,
			OSC52:    true,
		}

		So(c.Copy("#ff0000"), ShouldBeTrue)
		So(got, ShouldEqual, "#ff0000")

		Convey("The terminal is left alone", func() {
			So(term.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a failing system clipboard", t, func() {
		var term bytes.Buffer
		c := &Clipboard{
			System:   func(string) error { return errors.New("no xclip") },
			Terminal: &term,
			OSC52:    true,
		}

		Convey("OSC52 takes over", func() {
			So(c.Copy("#26d9d9"), ShouldBeTrue)
			So(term.String(), ShouldStartWith, "\x1b]52;c;")
			So(term.String(), ShouldContainSubstring, base64.StdEncoding.EncodeToString([]byte("#26d9d9")))
		})

		Convey("Nothing works when the fallback is disabled", func() {
			c.OSC52 = false
			So(c.Copy("#26d9d9"), ShouldBeFalse)
			So(c.Write("#26d9d9").Error(), ShouldEqual, "no xclip")
			So(term.Len(), ShouldEqual, 0)
		})

		Convey("Nothing works when the terminal refuses", func() {
			c.Terminal = failingWriter{}
			So(c.Copy("#26d9d9"), ShouldBeFalse)
		})
	})

	Convey("Given no stage at all", t, func() {
		c := &Clipboard{}
		So(c.Write("x"), ShouldEqual, ErrUnsupported)
	})

	Convey("Given the configured clipboard", t, func() {
		viper.Set(key.ClipboardOSC52, false)
		defer viper.Set(key.ClipboardOSC52, true)

		So(New().OSC52, ShouldBeFalse)
	})
}
