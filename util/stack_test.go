package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("wheel")
		s.Push("library")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "library")
		So(s.Pop(), ShouldEqual, "library")
		So(s.Pop(), ShouldEqual, "wheel")
		So(s.Pop(), ShouldEqual, "")
		s.Push("schemes")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
