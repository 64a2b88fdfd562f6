package directory

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// attr is one element attribute. Values are escaped when written.
type attr struct {
	name  string
	value string
	bare  bool
}

func at(name, value string) attr { return attr{name: name, value: value} }

// bare is a valueless attribute such as data-bind-query.
func bare(name string) attr { return attr{name: name, bare: true} }

// markup writes HTML to w and keeps the first write error; later calls are
// no-ops once one failed.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

// view adapts a markup body to templ.Component.
func view(body func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		body(m)
		return m.err
	})
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(v any) {
	m.raw(esc(v))
}

func (m *markup) open(tag string, attrs ...attr) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		if a.bare {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(esc(a.value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	m.raw(b.String())
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// elem writes a complete element with escaped text content.
func (m *markup) elem(tag string, content any, attrs ...attr) {
	m.open(tag, attrs...)
	m.text(content)
	m.close(tag)
}

func (m *markup) nl() {
	m.raw("\n")
}

func (m *markup) component(c templ.Component) {
	if m.err != nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}
