// Package dom is a small in-memory HTML document: element lookup by CSS
// selector, class and data-attribute manipulation, text content, input
// values and event listeners with bubbling. It is not safe for concurrent
// use; every front end drives it from a single goroutine.
package dom

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed page.html
var defaultPage []byte

// Listener handles one dispatched event.
type Listener func(*Event)

type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]Listener
	selectors map[string]cascadia.Matcher
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]Listener),
		selectors: make(map[string]cascadia.Matcher),
	}, nil
}

// NewPage returns the built-in todo page: #app holding form.todo-form and
// ul.todo-list-items.
func NewPage() *Document {
	d, err := Parse(bytes.NewReader(defaultPage))
	if err != nil {
		panic(err)
	}
	return d
}

// QuerySelector returns the first element matching sel, or nil.
func (d *Document) QuerySelector(sel string) *Element {
	return d.wrap(d.root).QuerySelector(sel)
}

func (d *Document) QuerySelectorAll(sel string) []*Element {
	return d.wrap(d.root).QuerySelectorAll(sel)
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{doc: d, node: n}
}

// compile caches parsed selectors. An invalid selector matches nothing.
func (d *Document) compile(sel string) cascadia.Matcher {
	if m, ok := d.selectors[sel]; ok {
		return m
	}
	var m cascadia.Matcher = noMatch{}
	if group, err := cascadia.ParseGroup(sel); err == nil {
		m = group
	}
	d.selectors[sel] = m
	return m
}

type noMatch struct{}

func (noMatch) Match(*html.Node) bool { return false }

func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}
