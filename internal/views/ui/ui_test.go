package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/smartmart/storefront/internal/views/ui"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCN(t *testing.T) {
	assert.Equal(t, "a b c", ui.CN("a b", "b c", ""))
	assert.Equal(t, "", ui.CN())
	assert.Equal(t, "p-2 m-1", ui.CN("  p-2\tm-1 ", "p-2"))
}

func TestButton(t *testing.T) {
	out := render(t, ui.Button(
		ui.Variant(ui.ButtonVariantGhost),
		ui.Size(ui.ButtonSizeIcon),
		ui.Class[*ui.ButtonConfig]("my-class"),
		ui.Child[*ui.ButtonConfig](g.Text("Go")),
	))

	assert.True(t, strings.HasPrefix(out, "<button "))
	assert.Contains(t, out, `type="button"`)
	assert.Contains(t, out, "hover:bg-accent")
	assert.Contains(t, out, "h-10 w-10")
	assert.Contains(t, out, "my-class")
	assert.Contains(t, out, ">Go</button>")
}

func TestButton_SubmitType(t *testing.T) {
	out := render(t, ui.Button(ui.ButtonType("submit")))
	assert.Contains(t, out, `type="submit"`)
	assert.Contains(t, out, "bg-primary")
}

func TestInput(t *testing.T) {
	out := render(t, ui.Input(
		ui.InputName("q"),
		ui.InputPlaceholder("Search for products..."),
		ui.Attr[*ui.InputConfig](h.ID("search")),
	))

	assert.True(t, strings.HasPrefix(out, "<input "))
	assert.Contains(t, out, `type="text"`)
	assert.Contains(t, out, `name="q"`)
	assert.Contains(t, out, `placeholder="Search for products..."`)
	assert.Contains(t, out, `id="search"`)
	assert.NotContains(t, out, "value=")
}

func TestInput_EscapesValue(t *testing.T) {
	out := render(t, ui.Input(ui.InputValue(`"><script>`)))
	assert.NotContains(t, out, "<script>")
}

func TestBadge(t *testing.T) {
	out := render(t, ui.Badge("99+", ui.Class[*ui.BadgeConfig]("bg-orange-500")))

	assert.Contains(t, out, "bg-orange-500")
	assert.Contains(t, out, ">99+</span>")
}

func TestSheet(t *testing.T) {
	out := render(t, ui.Sheet(
		ui.SheetLabel("Menu"),
		ui.SheetTrigger(g.Text("open")),
		ui.SheetContent(h.A(h.Href("/home"), ui.SheetClose(), g.Text("Home"))),
		ui.Class[*ui.SheetConfig]("md:hidden"),
	))

	assert.True(t, strings.HasPrefix(out, "<details "))
	assert.Contains(t, out, `data-sheet="right"`)
	assert.Contains(t, out, "md:hidden")
	assert.Contains(t, out, `aria-label="Menu"`)
	assert.Contains(t, out, "right-0")
	assert.Contains(t, out, "data-sheet-close")
	assert.Contains(t, out, ">Home</a>")
}

func TestSheet_LeftSide(t *testing.T) {
	out := render(t, ui.Sheet(ui.SheetSideOf(ui.SheetSideLeft)))
	assert.Contains(t, out, `data-sheet="left"`)
	assert.Contains(t, out, "left-0")
}
