// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package element

import (
	"encoding/xml"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestAttrSetGetRemove(t *testing.T) {
	e := New("iq", "jabber:client")
	e.SetAttr("id", "", strPtr("123"))
	if v, ok := e.Attr("id", ""); !ok || v != "123" {
		t.Fatalf("got (%q, %v), want (123, true)", v, ok)
	}
	e.SetAttr("id", "", strPtr("456"))
	if v, _ := e.Attr("id", ""); v != "456" {
		t.Fatalf("overwrite failed, got %q", v)
	}
	e.SetAttr("id", "", nil)
	if _, ok := e.Attr("id", ""); ok {
		t.Fatal("expected id to be removed")
	}
}

func TestGetChildAndChildren(t *testing.T) {
	root := New("message", "jabber:client")
	root.AppendChild(New("body", ""))
	root.AppendChild(New("x", "jabber:x:event"))
	root.AppendChild(New("x", "jabber:x:delay"))

	if c := root.GetChild("body", ""); c == nil {
		t.Fatal("expected body child")
	}
	if c := root.GetChild("missing", ""); c != nil {
		t.Fatal("expected nil for missing child")
	}
	if got := len(root.GetChildren("x", "")); got != 2 {
		t.Fatalf("GetChildren(any ns) = %d, want 2", got)
	}
	if got := len(root.GetChildren("x", "jabber:x:delay")); got != 1 {
		t.Fatalf("GetChildren(delay ns) = %d, want 1", got)
	}
}

func TestTextConcatenatesOnlyDirectTextChildren(t *testing.T) {
	body := New("body", "")
	body.AppendText("hello ")
	body.AppendText("world")
	nested := New("em", "")
	nested.AppendText("ignored")
	body.AppendChild(nested)

	if got := body.Text(); got != "hello world" {
		t.Fatalf("Text() = %q, want %q", got, "hello world")
	}
}

func TestWriteXMLEscapesAndSelfCloses(t *testing.T) {
	e := New("body", "")
	e.SetAttr("lang", "", strPtr("a&b"))
	if got, want := e.String(), `<body lang='a&amp;b'/>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	e2 := New("body", "")
	e2.AppendText("<3 & friends")
	if got, want := e2.String(), "<body>&lt;3 &amp; friends</body>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteXMLAddsXmlns(t *testing.T) {
	e := New("iq", "jabber:client")
	if got := e.String(); got != "<iq xmlns='jabber:client'/>" {
		t.Fatalf("got %q", got)
	}
}

func TestBuilderAssemblesNestedSubtree(t *testing.T) {
	doc := `<iq xmlns='jabber:client' type='get' id='1'><ping xmlns='urn:xmpp:ping'/></iq>`
	dec := xml.NewDecoder(strings.NewReader(doc))
	b := NewBuilder()

	var root *Element
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, buildErr := b.HandleToken(tok)
		if buildErr != nil {
			t.Fatalf("unexpected build error: %v", buildErr)
		}
		if el != nil {
			root = el
			break
		}
	}
	if root == nil {
		t.Fatal("builder never produced a root element")
	}
	if root.Name != "iq" || root.Namespace != "jabber:client" {
		t.Fatalf("root = %+v", root)
	}
	if v, _ := root.Attr("type", ""); v != "get" {
		t.Fatalf("type attr = %q", v)
	}
	ping := root.GetChild("ping", "urn:xmpp:ping")
	if ping == nil {
		t.Fatal("expected ping child")
	}
}

func TestBuilderMismatchedEndTagErrors(t *testing.T) {
	b := NewBuilder()
	b.HandleToken(xml.StartElement{Name: xml.Name{Local: "a"}})
	_, err := b.HandleToken(xml.EndElement{Name: xml.Name{Local: "b"}})
	if err == nil {
		t.Fatal("expected mismatched end tag error")
	}
}

func TestBuilderResetDiscardsPartialSubtree(t *testing.T) {
	b := NewBuilder()
	b.HandleToken(xml.StartElement{Name: xml.Name{Local: "stream", Space: "http://etherx.jabber.org/streams"}})
	b.HandleToken(xml.StartElement{Name: xml.Name{Local: "iq"}})
	if b.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", b.Depth())
	}
	b.Reset()
	if b.Depth() != 0 {
		t.Fatalf("Depth() after Reset = %d, want 0", b.Depth())
	}
}
