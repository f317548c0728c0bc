// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"suite.im/xmpp/element"
)

func TestNewErrorElementFullBasic(t *testing.T) {
	el := newErrorElementFull(Cancel, StanzaErr{Condition: ServiceUnavailable}, "", language.Und)
	if v, _ := el.Attr("type", ""); v != "cancel" {
		t.Fatalf("type attr = %q", v)
	}
	cond := el.GetChild(string(ServiceUnavailable), "urn:ietf:params:xml:ns:xmpp-stanzas")
	if cond == nil {
		t.Fatal("expected condition child in the stanza-errors namespace")
	}
}

func TestNewErrorElementFullWithText(t *testing.T) {
	el := newErrorElementFull(Modify, StanzaErr{Condition: BadRequest}, "explanation", language.English)
	text := el.GetChild("text", "urn:ietf:params:xml:ns:xmpp-stanzas")
	if text == nil || text.Text() != "explanation" {
		t.Fatalf("text child = %+v", text)
	}
	if v, ok := text.Attr("lang", "http://www.w3.org/XML/1998/namespace"); !ok || v != "en" {
		t.Fatalf("xml:lang = (%q, %v), want (en, true)", v, ok)
	}
}

func TestParseErrorRoundTrip(t *testing.T) {
	el := newErrorElementFull(Wait, StanzaErr{Condition: RemoteServerTimeout}, "try later", language.Und)
	wrapper := element.New("iq", "jabber:client")
	wrapper.AppendChild(el)

	parsed, ok := ParseError(wrapper)
	if !ok {
		t.Fatal("expected ParseError to find the error child")
	}
	if parsed.Type != Wait {
		t.Errorf("Type = %v, want Wait", parsed.Type)
	}
	if parsed.Condition != RemoteServerTimeout {
		t.Errorf("Condition = %v, want %v", parsed.Condition, RemoteServerTimeout)
	}
	if parsed.Text != "try later" {
		t.Errorf("Text = %q", parsed.Text)
	}
}

func TestParseErrorAbsent(t *testing.T) {
	wrapper := element.New("iq", "jabber:client")
	if _, ok := ParseError(wrapper); ok {
		t.Fatal("expected ParseError to report false with no error child")
	}
}

func TestErrorTypeStringDefaultsToCancel(t *testing.T) {
	var unknown ErrorType = 99
	if got := unknown.String(); got != "cancel" {
		t.Errorf("unknown ErrorType.String() = %q, want cancel", got)
	}
}

func TestGoneAndRedirectCarryURI(t *testing.T) {
	g := GoneWithURI("xmpp:a@b")
	if g.Condition != Gone || g.URI != "xmpp:a@b" {
		t.Fatalf("GoneWithURI = %+v", g)
	}
	r := RedirectWithURI("xmpp:c@d")
	if r.Condition != Redirect || r.URI != "xmpp:c@d" {
		t.Fatalf("RedirectWithURI = %+v", r)
	}
}

func TestErrorElementSerializesConditionNamespace(t *testing.T) {
	el := newErrorElementFull(Cancel, StanzaErr{Condition: ItemNotFound}, "", language.Und)
	if got := el.String(); !strings.Contains(got, "urn:ietf:params:xml:ns:xmpp-stanzas") {
		t.Fatalf("serialized error missing stanza-errors namespace: %q", got)
	}
}
