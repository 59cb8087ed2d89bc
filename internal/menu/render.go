// Package menu renders navigation surfaces into views.
// Rendering is a pure function of the catalog and the requested position;
// it keeps no history.
package menu

import (
	"fmt"

	"allcitybot/core/telegram/format"
	"allcitybot/internal/catalog"
)

// Button is one keyboard button. Token is the opaque action string sent
// back when the button is pressed; URL buttons open an external link
// instead.
type Button struct {
	Text  string
	Token string
	URL   string
}

// View is a rendered screen: message text plus keyboard layout. Buttons is
// the inline keyboard; Reply, when set, is a persistent reply keyboard
// shown under the input field.
type View struct {
	Text    string
	Buttons [][]Button
	Reply   [][]string
}

// Renderer produces views from the catalog. City is the display name used
// on the welcome screen.
type Renderer struct {
	Catalog *catalog.Catalog
	City    string
}

// Welcome renders the greeting shown for any unrecognized text, with the
// reply keyboard that opens the menu.
func (r *Renderer) Welcome() View {
	return View{
		Text:  fmt.Sprintf("<b>AllCity</b>\n\nAll activities in <i>%s</i>", format.EscapeHTML(r.City)),
		Reply: [][]string{{"Menu"}},
	}
}

// Root renders the category selection screen.
func (r *Renderer) Root() View {
	return View{
		Text: "Select <i>category</i>",
		Buttons: [][]Button{
			{{Text: "Food", Token: "Food"}},
		},
	}
}

// ListPage renders the given 1-based page of the venue list: one button
// per venue, a Back/Next row, and a trailing Main row. Back and Next stay
// present at the bounds; pressing them there is a no-op re-render.
func (r *Renderer) ListPage(page int) View {
	items := r.Catalog.Page(page)
	rows := make([][]Button, 0, len(items)+2)
	for _, it := range items {
		rows = append(rows, []Button{{Text: it.Name, Token: it.ID}})
	}
	rows = append(rows, []Button{
		{Text: "Back ⬅️", Token: "Back"},
		{Text: "Next ➡️", Token: "Next"},
	})
	rows = append(rows, []Button{{Text: "Main", Token: "BackToMain"}})

	return View{
		Text:    fmt.Sprintf("Select <i>cafe</i>\n<b>%d/%d</b>", page, r.Catalog.PageCount()),
		Buttons: rows,
	}
}

// Detail renders the venue card. The external-link button appears only
// when the venue has a link.
func (r *Renderer) Detail(it catalog.Item) View {
	// Catalog fields are operator supplied; escape them for HTML parse mode.
	text := fmt.Sprintf(
		"<b>%s</b>\n\n<i>Description</i>:\n%s\n\n<i>Schedule</i>:\nFrom %s to %s\n\n<i>Contacts</i>:\nPhone number: %s",
		format.EscapeHTML(it.Name),
		format.EscapeHTML(it.Description),
		format.EscapeHTML(it.OpensAt),
		format.EscapeHTML(it.ClosesAt),
		format.EscapeHTML(it.Phone),
	)

	var rows [][]Button
	if it.Link != "" {
		rows = append(rows, []Button{{Text: "Instagram", URL: it.Link}})
	}
	rows = append(rows, []Button{{Text: "Main", Token: "BackToMain"}})

	return View{Text: text, Buttons: rows}
}
