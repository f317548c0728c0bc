// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import "testing"

func TestIqTypeRoundTrip(t *testing.T) {
	for _, kind := range []IqType{Get, Set, Result, IqError} {
		iq := NewIq(kind, "1")
		got, ok := iq.Kind()
		if !ok || got != kind {
			t.Errorf("kind %v: Kind() = (%v, %v)", kind, got, ok)
		}
	}
}

func TestIqMissingTypeAttr(t *testing.T) {
	iq := NewIq(Get, "1")
	iq.El.SetAttr("type", "", nil)
	if _, ok := iq.Kind(); ok {
		t.Fatal("expected Kind() to report false when type attribute is absent")
	}
}

func TestIqAccessors(t *testing.T) {
	iq := NewIq(Get, "abc")
	iq.SetTo("romeo@example.net")
	iq.SetFrom("juliet@example.net/balcony")

	if got := iq.To(); got != "romeo@example.net" {
		t.Errorf("To() = %q", got)
	}
	if got := iq.From(); got != "juliet@example.net/balcony" {
		t.Errorf("From() = %q", got)
	}
	if got := iq.ID(); got != "abc" {
		t.Errorf("ID() = %q", got)
	}

	iq.SetTo("")
	if _, ok := iq.El.Attr("to", ""); ok {
		t.Error("expected SetTo(\"\") to remove the to attribute")
	}
}

func TestIqErrorReplySwapsAddressingAndPreservesID(t *testing.T) {
	req := NewIq(Get, "req1")
	req.SetFrom("romeo@example.net/orchard")
	req.SetTo("juliet@example.net")

	reply := req.ErrorReply(Cancel, ServiceUnavailable, "")
	kind, ok := reply.Kind()
	if !ok || kind != IqError {
		t.Fatalf("reply kind = (%v, %v), want (error, true)", kind, ok)
	}
	if reply.To() != "romeo@example.net/orchard" {
		t.Errorf("reply To() = %q, want original From()", reply.To())
	}
	if reply.ID() != "req1" {
		t.Errorf("reply ID() = %q, want %q", reply.ID(), "req1")
	}
	if reply.El.Name != "iq" {
		t.Errorf("reply local name = %q, want iq", reply.El.Name)
	}
}

func TestIqErrorReplyWithNoOriginalID(t *testing.T) {
	req := NewIq(Get, "")
	reply := req.ErrorReply(Cancel, ServiceUnavailable, "")
	if reply.ID() != "" {
		t.Errorf("reply ID() = %q, want empty", reply.ID())
	}
}

func TestIqErrorReplyErrCarriesURI(t *testing.T) {
	req := NewIq(Get, "r1")
	reply := req.ErrorReplyErr(Modify, GoneWithURI("xmpp:new@example.net"), "")
	parsed, ok := ParseError(reply.AsElement())
	if !ok {
		t.Fatal("expected parseable error on reply")
	}
	if parsed.Condition != Gone || parsed.URI != "xmpp:new@example.net" {
		t.Fatalf("parsed = %+v", parsed)
	}
}

func TestIqStringIsIqElement(t *testing.T) {
	iq := NewIq(Get, "1")
	if got := iq.String(); got == "" {
		t.Fatal("String() returned empty")
	}
	if got := iq.String(); got != iq.AsElement().String() {
		t.Fatalf("String() = %q, want element String() %q", got, iq.AsElement().String())
	}
}
