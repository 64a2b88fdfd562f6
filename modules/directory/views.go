package directory

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/userdir/pkg/sanitizer"
)

// datastarScript is the client bundle matching the datastar-go SDK version.
const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

var esc = sanitizer.Escape

// NationalityOption is one entry of the nationality selector.
type NationalityOption struct {
	Code  string
	Label string
}

// NationalityOptions builds selector entries for codes, labelled with the
// English region name. Unknown codes are labelled with the code itself.
func NationalityOptions(codes []string) []NationalityOption {
	names := display.English.Regions()
	opts := make([]NationalityOption, 0, len(codes))
	for _, code := range codes {
		code = sanitizer.Apply(code, sanitizer.Trim, sanitizer.ToUpper)
		if code == "" {
			continue
		}
		label := code
		if region, err := language.ParseRegion(code); err == nil {
			if name := names.Name(region); name != "" {
				label = name + " (" + code + ")"
			}
		}
		opts = append(opts, NationalityOption{Code: code, Label: label})
	}
	return opts
}

// PageParams feeds the full page.
type PageParams struct {
	Title         string
	Snapshot      Snapshot
	Nationalities []NationalityOption
}

// Page renders the whole document. Regions start from the snapshot and are
// then kept current by the /stream connection.
func Page(p PageParams) templ.Component {
	title := p.Title
	if title == "" {
		title = "User directory"
	}
	return view(func(m *markup) {
		m.raw("<!DOCTYPE html>\n")
		m.open("html", at("lang", "en"))
		m.nl()
		m.open("head")
		m.nl()
		m.open("meta", at("charset", "utf-8"))
		m.nl()
		m.open("meta", at("name", "viewport"), at("content", "width=device-width, initial-scale=1"))
		m.nl()
		m.elem("title", title)
		m.nl()
		m.open("script", at("type", "module"), at("src", datastarScript))
		m.close("script")
		m.nl()
		m.close("head")
		m.nl()

		m.open("body", at("data-signals", "{query: '', nat: ''}"), at("data-on-load", "@get('/stream')"))
		m.nl()
		m.open("header", at("class", "toolbar"))
		m.nl()
		m.elem("h1", title)
		m.nl()
		m.open("input",
			at("id", "searchInput"),
			at("type", "search"),
			at("placeholder", "Search name, email, city, country"),
			at("aria-label", "Search users"),
			bare("data-bind-query"),
			at("data-on-input", "@post('/search')"),
		)
		m.nl()
		m.component(NationalitySelect(p.Nationalities))
		m.elem("button", "Refresh",
			at("id", "refreshBtn"),
			at("type", "button"),
			at("data-on-click", "@post('/refresh')"),
		)
		m.nl()
		m.close("header")
		m.nl()
		m.open("div", at("id", "toast"), at("role", "alert"))
		m.close("div")
		m.nl()

		m.component(MessageView(p.Snapshot.Message))
		m.component(Spinner(p.Snapshot.Loading))
		m.component(Cards(p.Snapshot.Cards))

		m.close("body")
		m.nl()
		m.close("html")
		m.nl()
	})
}

// NationalitySelect renders the selector with an "all" entry first.
func NationalitySelect(opts []NationalityOption) templ.Component {
	return view(func(m *markup) {
		m.open("select",
			at("id", "natFilter"),
			at("aria-label", "Filter by nationality"),
			bare("data-bind-nat"),
			at("data-on-change", "@post('/nationality')"),
		)
		m.elem("option", "All nationalities", at("value", ""))
		for _, o := range opts {
			m.elem("option", o.Label, at("value", o.Code))
		}
		m.close("select")
		m.nl()
	})
}

// MessageView renders the status line region.
func MessageView(msg Message) templ.Component {
	class := "message"
	if msg.IsError {
		class += " error"
	}
	return view(func(m *markup) {
		m.elem("p", msg.Text, at("id", "message"), at("class", class), at("role", "status"))
		m.nl()
	})
}

// Spinner renders the loading indicator region.
func Spinner(loading bool) templ.Component {
	style := "display:none"
	if loading {
		style = "display:flex"
	}
	return view(func(m *markup) {
		m.open("div",
			at("id", "spinner"),
			at("class", "spinner"),
			at("style", style),
			at("aria-hidden", strconv.FormatBool(!loading)),
		)
		m.open("span", at("class", "dot"))
		m.close("span")
		m.close("div")
		m.nl()
	})
}

// Cards renders the card grid region.
func Cards(users []User) templ.Component {
	return view(func(m *markup) {
		m.open("section", at("id", "cards"), at("class", "cards"), at("aria-live", "polite"))
		for _, u := range users {
			m.component(Card(u))
		}
		m.close("section")
		m.nl()
	})
}

// Card renders one user. Every text node and attribute value is escaped.
func Card(u User) templ.Component {
	return view(func(m *markup) {
		m.open("article", at("class", "card"), at("id", "user-"+u.ID))
		m.nl()

		m.open("div", at("class", "avatar"))
		m.open("img",
			at("src", u.AvatarURL),
			at("alt", "Avatar of "+u.FullName()),
			at("loading", "lazy"),
		)
		m.close("div")
		m.nl()

		m.open("div", at("class", "info"))
		m.nl()
		m.open("div", at("class", "name"))
		m.text(u.FullName() + " ")
		m.elem("span", u.Nationality, at("class", "badge"))
		m.close("div")
		m.nl()

		m.open("div", at("class", "meta"))
		m.elem("span", "✉️ "+u.Email, at("title", "Email"))
		m.raw(" ")
		m.elem("span", "📞 "+u.Phone, at("title", "Phone"))
		m.close("div")
		m.nl()

		m.open("div", at("class", "card-footer"))
		m.elem("div", u.City+", "+u.Country+" • "+strconv.Itoa(u.Age)+" yrs", at("class", "meta"))
		m.elem("a", "vCard QR",
			at("class", "qr"),
			at("href", "/users/"+url.PathEscape(u.ID)+"/qr"),
			at("target", "_blank"),
			at("rel", "noopener"),
		)
		m.close("div")
		m.nl()
		m.close("div")
		m.nl()
		m.close("article")
		m.nl()
	})
}

// Toast renders an error notice into the #toast region.
func Toast(message string) templ.Component {
	return view(func(m *markup) {
		m.elem("span", message, at("class", "toast error"))
	})
}
