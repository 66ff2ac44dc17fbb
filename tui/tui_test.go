package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huewheel/huewheel/config"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/history"
	"github.com/huewheel/huewheel/internal/ui"
	"github.com/huewheel/huewheel/library"
	"github.com/huewheel/huewheel/scheme"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

type recordingEmitter struct {
	files map[string][]byte
}

func (r *recordingEmitter) Emit(data []byte, filename string) error {
	r.files[filename] = data
	return nil
}

type harness struct {
	bubble  *statefulBubble
	copied  []string
	emitter *recordingEmitter
}

func newHarness(copyOK bool) *harness {
	h := &harness{emitter: &recordingEmitter{files: map[string][]byte{}}}
	h.bubble = lo.Must(newBubble(&Options{}))
	h.bubble.copier = func(text string) bool {
		h.copied = append(h.copied, text)
		return copyOK
	}
	h.bubble.emitter = h.emitter
	h.bubble.random = harmony.SeededSource(7)
	return h
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends k and runs the returned command, if any, once.
func (h *harness) press(k string) tea.Msg {
	_, cmd := h.bubble.Update(keyMsg(k))
	if cmd == nil {
		return nil
	}

	return cmd()
}

func notification(msg tea.Msg) ui.NotificationMsg {
	n, _ := msg.(ui.NotificationMsg)
	return n
}

func TestPages(t *testing.T) {
	Convey("Given a fresh interface", t, func() {
		h := newHarness(true)

		Convey("It starts on the page menu", func() {
			So(h.bubble.state, ShouldEqual, pagesState)
			So(h.bubble.pagesC.Items(), ShouldHaveLength, len(pages))
		})

		Convey("Confirming opens the selected page and esc comes back", func() {
			h.press("enter")
			So(h.bubble.state, ShouldEqual, pages[0].state)

			h.press("esc")
			So(h.bubble.state, ShouldEqual, pagesState)
		})
	})
}

func TestWheel(t *testing.T) {
	Convey("Given the wheel page", t, func() {
		h := newHarness(true)
		h.bubble.newState(wheelState)

		Convey("Generating without a selection warns and keeps the palette empty", func() {
			n := notification(h.press("g"))
			So(n.Kind, ShouldEqual, ui.Failure)
			So(n.Text, ShouldEqual, "Please select a color from the wheel first")
			So(h.bubble.palette, ShouldBeEmpty)
		})

		Convey("Exporting without a palette warns", func() {
			n := notification(h.press("x"))
			So(n.Text, ShouldEqual, "No palette generated yet")
			So(h.emitter.files, ShouldBeEmpty)
		})

		Convey("The cursor stays inside the grid", func() {
			for range h.bubble.grid.Cols * 2 {
				h.press("right")
			}
			So(h.bubble.cursorCol, ShouldEqual, h.bubble.grid.Cols-1)
		})

		Convey("When a red is picked on the rim", func() {
			h.bubble.cursorCol = h.bubble.grid.Cols - 1
			h.bubble.cursorRow = h.bubble.grid.Rows / 2
			h.press("enter")

			info, ok := h.bubble.selection.Color().Get()
			So(ok, ShouldBeTrue)
			So(h.bubble.selection.BaseHue().MustGet(), ShouldEqual, 0)

			Convey("Copying the hex reports the label and value", func() {
				n := notification(h.press("c"))
				So(n.Kind, ShouldEqual, ui.Success)
				So(n.Text, ShouldEqual, "Copied HEX: "+info.Hex.String())
				So(h.copied, ShouldResemble, []string{info.Hex.String()})
			})

			Convey("Copying rgb uses the css notation", func() {
				h.press("r")
				So(h.copied, ShouldResemble, []string{info.RGB.CSS()})
			})

			Convey("Generating builds the current rule", func() {
				n := notification(h.press("g"))
				So(n.Text, ShouldEqual, "Generated complementary color palette!")
				So(harmony.Hexes(h.bubble.palette), ShouldResemble, []string{"#d92626", "#26d9d9"})

				Convey("And remembers it", func() {
					saved := lo.Must(history.Get())
					So(saved, ShouldNotBeEmpty)
					So(saved[0].Joined(), ShouldEqual, "#d92626, #26d9d9")
				})

				Convey("And the next rule can be generated too", func() {
					h.press("tab")
					h.press("g")
					So(h.bubble.paletteRule, ShouldEqual, "triadic")
					So(h.bubble.palette, ShouldHaveLength, 3)
				})

				Convey("Swatches can be walked and copied", func() {
					h.press("]")
					h.press("y")
					So(h.copied, ShouldResemble, []string{"#26d9d9"})

					h.press("]")
					So(h.bubble.paletteIndex, ShouldEqual, 0)
				})

				Convey("Copy all joins the hex codes", func() {
					h.press("a")
					So(h.copied, ShouldResemble, []string{"#d92626, #26d9d9"})
				})

				Convey("Exporting writes the palette document", func() {
					n := notification(h.press("x"))
					So(n.Text, ShouldEqual, "Palette downloaded successfully")
					data, ok := h.emitter.files[export.PaletteFilename]
					So(ok, ShouldBeTrue)
					So(string(data), ShouldContainSubstring, `"rule": "complementary"`)
				})
			})
		})

		Convey("A failing clipboard is reported", func() {
			h := newHarness(false)
			h.bubble.newState(wheelState)
			h.press("enter")

			n := notification(h.press("c"))
			So(n.Kind, ShouldEqual, ui.Failure)
			So(n.Text, ShouldEqual, "Failed to copy")
		})

		Convey("A random palette adopts its base hue", func() {
			n := notification(h.press("R"))
			So(n.Text, ShouldEqual, "Generated random color palette!")
			So(h.bubble.palette, ShouldHaveLength, harmony.RandomSize)
			So(h.bubble.paletteRule, ShouldBeEmpty)

			h.press("x")
			So(h.emitter.files, ShouldContainKey, export.PaletteFilename)
		})
	})
}

func TestLibrary(t *testing.T) {
	Convey("Given the library page", t, func() {
		h := newHarness(true)
		h.bubble.newState(libraryState)

		Convey("It lists every color", func() {
			So(h.bubble.libraryC.Items(), ShouldHaveLength, len(library.All()))
		})

		Convey("Enter copies the selected hex under its name", func() {
			entry := library.All()[0]
			n := notification(h.press("enter"))
			So(n.Text, ShouldEqual, "Copied "+entry.Name+": "+entry.Hex)
		})

		Convey("Tab cycles through categories", func() {
			h.press("tab")
			first := library.Categories()[0]
			entries, _ := library.Category(first)
			So(h.bubble.libraryC.Items(), ShouldHaveLength, len(entries))
			So(h.bubble.libraryC.Title, ShouldContainSubstring, first)
		})

		Convey("Searching filters the list", func() {
			h.press("/")
			So(h.bubble.state, ShouldEqual, searchState)

			h.press("navy")
			h.press("enter")
			So(h.bubble.state, ShouldEqual, libraryState)
			So(h.bubble.libraryQuery, ShouldEqual, "navy")

			for _, item := range h.bubble.libraryC.Items() {
				name := item.(*listItem).internal.(library.Entry).Name
				So(strings.ToLower(name), ShouldContainSubstring, "navy")
			}
		})
	})
}

func TestSchemes(t *testing.T) {
	Convey("Given the schemes page", t, func() {
		h := newHarness(true)
		h.bubble.newState(schemesState)
		first := scheme.All()[0]

		Convey("Enter copies the whole scheme", func() {
			n := notification(h.press("enter"))
			So(n.Text, ShouldEqual, "Copied entire "+first.Name+" palette")
			So(h.copied, ShouldResemble, []string{first.Joined()})
		})

		Convey("A digit copies one color", func() {
			h.press("2")
			So(h.copied, ShouldResemble, []string{first.Colors[1]})
		})

		Convey("Export writes the scheme document", func() {
			n := notification(h.press("x"))
			So(n.Text, ShouldEqual, "Downloaded "+first.Name+" scheme")
			So(h.emitter.files, ShouldContainKey, export.SchemeFilename(first.Name))
		})
	})
}

func TestNotifications(t *testing.T) {
	Convey("Notifications are drawn under the current view", t, func() {
		h := newHarness(true)
		h.bubble.Update(ui.NotificationMsg{Kind: ui.Success, Text: "hello there"})
		So(h.bubble.View(), ShouldContainSubstring, "hello there")
	})
}
