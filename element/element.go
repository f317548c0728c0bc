// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package element provides a generic, order-preserving XML element tree,
// used as the substrate for the stanza and streamerr packages. It plays the
// role of a minimal DOM assembled from encoding/xml.Decoder tokens.
package element

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Attr is an XML attribute keyed by local name and an optional namespace.
type Attr struct {
	Name      string
	Namespace string
	Value     string
}

// Child is one ordered child of an Element: either literal character data
// (Elem == nil) or a nested Element (Text == "").
type Child struct {
	Text string
	Elem *Element
}

// Element is a generic XML element: a local name, a namespace, an ordered
// attribute list, and ordered mixed text/element children.
type Element struct {
	Name      string
	Namespace string
	Attrs     []Attr
	Children  []Child
}

// New constructs an empty element with the given name and namespace.
func New(name, namespace string) *Element {
	return &Element{Name: name, Namespace: namespace}
}

// Attr returns the value of the named attribute and whether it was present.
// An empty ns matches an attribute with no namespace.
func (e *Element) Attr(name, ns string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name && a.Namespace == ns {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute. A nil value removes it.
func (e *Element) SetAttr(name, ns string, value *string) {
	for i, a := range e.Attrs {
		if a.Name == name && a.Namespace == ns {
			if value == nil {
				e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
				return
			}
			e.Attrs[i].Value = *value
			return
		}
	}
	if value != nil {
		e.Attrs = append(e.Attrs, Attr{Name: name, Namespace: ns, Value: *value})
	}
}

// AppendChild appends a nested element as a child.
func (e *Element) AppendChild(child *Element) *Element {
	e.Children = append(e.Children, Child{Elem: child})
	return e
}

// AppendText appends a text node as a child.
func (e *Element) AppendText(text string) *Element {
	e.Children = append(e.Children, Child{Text: text})
	return e
}

// GetChild returns the first direct child element with the given name and
// namespace, or nil if none matches. An empty ns matches any namespace.
func (e *Element) GetChild(name, ns string) *Element {
	for _, c := range e.Children {
		if c.Elem == nil {
			continue
		}
		if c.Elem.Name == name && (ns == "" || c.Elem.Namespace == ns) {
			return c.Elem
		}
	}
	return nil
}

// GetChildren returns every direct child element with the given name and
// namespace, in document order.
func (e *Element) GetChildren(name, ns string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Elem == nil {
			continue
		}
		if c.Elem.Name == name && (ns == "" || c.Elem.Namespace == ns) {
			out = append(out, c.Elem)
		}
	}
	return out
}

// Text returns the concatenation of all direct text children.
func (e *Element) Text() string {
	var b strings.Builder
	for _, c := range e.Children {
		if c.Elem == nil {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// WriteXML serializes the element tree to w, in the wire form the rest of
// this package expects (single quotes on attributes, no self-closing-tag
// suppression rules beyond the standard empty-element shorthand).
func (e *Element) WriteXML(w *strings.Builder) {
	w.WriteByte('<')
	w.WriteString(e.Name)
	if e.Namespace != "" {
		w.WriteString(" xmlns='")
		w.WriteString(escapeAttr(e.Namespace))
		w.WriteByte('\'')
	}
	for _, a := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString("='")
		w.WriteString(escapeAttr(a.Value))
		w.WriteByte('\'')
	}
	if len(e.Children) == 0 {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	for _, c := range e.Children {
		if c.Elem != nil {
			c.Elem.WriteXML(w)
		} else {
			w.WriteString(escapeText(c.Text))
		}
	}
	w.WriteString("</")
	w.WriteString(e.Name)
	w.WriteByte('>')
}

// String returns the element's wire-form serialization.
func (e *Element) String() string {
	var b strings.Builder
	e.WriteXML(&b)
	return b.String()
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "'", "&apos;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// fromStart converts a single xml.StartElement into an empty Element,
// recording its attributes. Namespace handling follows encoding/xml's
// convention of reporting the resolved namespace on Name.Space.
func fromStart(t xml.StartElement) *Element {
	e := &Element{Name: t.Name.Local, Namespace: t.Name.Space}
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Namespace: a.Name.Space, Value: a.Value})
	}
	return e
}

// Builder assembles complete element subtrees from a stream of
// encoding/xml tokens, playing the role of the spec's external
// ElementBuilder collaborator.
type Builder struct {
	stack []*Element
}

// NewBuilder returns a Builder ready to consume tokens.
func NewBuilder() *Builder {
	return &Builder{}
}

// Depth reports how many unterminated start tags are currently open.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// HandleToken feeds one decoder token to the builder. It returns a non-nil
// *Element when tok completes a subtree rooted at the builder's current
// depth-0 frame, and a non-nil error if tok is an end tag with no open
// start tag or one that does not match the innermost open start tag.
// CharData at depth 0 is ignored.
func (b *Builder) HandleToken(tok xml.Token) (*Element, error) {
	switch t := tok.(type) {
	case xml.StartElement:
		b.stack = append(b.stack, fromStart(t))
		return nil, nil
	case xml.CharData:
		if len(b.stack) == 0 {
			return nil, nil
		}
		top := b.stack[len(b.stack)-1]
		top.AppendText(string(t))
		return nil, nil
	case xml.EndElement:
		if len(b.stack) == 0 {
			return nil, fmt.Errorf("element: unexpected end tag %q", t.Name.Local)
		}
		top := b.stack[len(b.stack)-1]
		if top.Name != t.Name.Local || top.Namespace != t.Name.Space {
			return nil, fmt.Errorf("element: mismatched end tag %q", t.Name.Local)
		}
		b.stack = b.stack[:len(b.stack)-1]
		if len(b.stack) == 0 {
			return top, nil
		}
		parent := b.stack[len(b.stack)-1]
		parent.AppendChild(top)
		return nil, nil
	}
	return nil, nil
}

// Reset discards any partially built subtree, used when the outer stream
// wrapper restarts (after STARTTLS or SASL success).
func (b *Builder) Reset() {
	b.stack = nil
}
