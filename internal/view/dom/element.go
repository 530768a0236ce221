package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Element is a handle on one node of a Document. Two handles may wrap the
// same node; compare them with Is.
type Element struct {
	doc  *Document
	node *html.Node
}

func (e *Element) Tag() string { return e.node.Data }

// Is reports whether both handles point at the same node.
func (e *Element) Is(other *Element) bool {
	return other != nil && e.node == other.node
}

// Connected reports whether the element is attached to its document.
func (e *Element) Connected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// QuerySelector returns the first descendant matching sel, or nil.
func (e *Element) QuerySelector(sel string) *Element {
	all := e.QuerySelectorAll(sel)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll returns the matching descendants in document order.
func (e *Element) QuerySelectorAll(sel string) []*Element {
	var out []*Element
	for _, n := range cascadia.QueryAll(e.node, e.doc.compile(sel)) {
		if n == e.node {
			continue
		}
		out = append(out, e.doc.wrap(n))
	}
	return out
}

func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// AppendChild inserts child as the last child, detaching it first if it
// already has a parent.
func (e *Element) AppendChild(child *Element) {
	if p := child.node.Parent; p != nil {
		p.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// InsertAdjacentHTML parses markup in the context of e. Only "beforeend"
// and "afterbegin" are supported.
func (e *Element) InsertAdjacentHTML(position, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return err
	}
	switch strings.ToLower(position) {
	case "afterbegin":
		first := e.node.FirstChild
		for _, n := range nodes {
			e.node.InsertBefore(n, first)
		}
	default:
		for _, n := range nodes {
			e.node.AppendChild(n)
		}
	}
	return nil
}

// Remove detaches e from its parent and drops every listener in its subtree.
func (e *Element) Remove() {
	if p := e.node.Parent; p != nil {
		p.RemoveChild(e.node)
	}
	e.doc.forget(e.node)
}

func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Element) RemoveAttr(key string) {
	out := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	e.node.Attr = out
}

func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) AddClass(names ...string) {
	classes := e.Classes()
	for _, n := range names {
		if !e.HasClass(n) {
			classes = append(classes, n)
			e.SetAttr("class", strings.Join(classes, " "))
		}
	}
}

func (e *Element) RemoveClass(name string) {
	var keep []string
	for _, c := range e.Classes() {
		if c != name {
			keep = append(keep, c)
		}
	}
	e.SetAttr("class", strings.Join(keep, " "))
}

// ToggleClass flips name and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// Data reads the data-<key> attribute.
func (e *Element) Data(key string) string {
	v, _ := e.Attr("data-" + key)
	return v
}

func (e *Element) SetData(key, val string) {
	e.SetAttr("data-"+key, val)
}

// Text returns the concatenated text of the subtree.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// SetText replaces all children with one text node.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		e.doc.forget(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Value is the value attribute of a form control.
func (e *Element) Value() string {
	v, _ := e.Attr("value")
	return v
}

func (e *Element) SetValue(v string) {
	e.SetAttr("value", v)
}

// String renders the element's outer HTML.
func (e *Element) String() string {
	var b strings.Builder
	_ = html.Render(&b, e.node)
	return b.String()
}
