// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import (
	"strings"
	"testing"
)

func TestNewAllocatesSocketUpFront(t *testing.T) {
	sess := New("user", "example.net", "pencil")
	if sess.Sock() == nil {
		t.Fatal("expected New to allocate a Socket so TeeIn/TeeOut can be set before Connect")
	}
}

func TestSendWritesAndFlushes(t *testing.T) {
	sess, conn := newOutboundTestSession()
	if err := sess.Send(stubRenderable("<ping/>")); err != nil {
		t.Fatal(err)
	}
	if got := conn.out.String(); got != "<ping/>" {
		t.Fatalf("out = %q, want <ping/>", got)
	}
}

type stubRenderable string

func (s stubRenderable) String() string { return string(s) }

func TestCloseStreamIsIdempotent(t *testing.T) {
	sess, conn := newOutboundTestSession()
	if err := sess.closeStream(); err != nil {
		t.Fatal(err)
	}
	firstLen := conn.out.Len()
	if err := sess.closeStream(); err != nil {
		t.Fatal(err)
	}
	if conn.out.Len() != firstLen {
		t.Fatalf("closeStream sent a second closing tag: %q", conn.out.String())
	}
	if !strings.Contains(conn.out.String(), "</stream:stream>") {
		t.Fatalf("expected a closing stream tag, got %q", conn.out.String())
	}
}

func TestOpenStreamSendsStreamStartAndResetsDecoder(t *testing.T) {
	sess, conn := newOutboundTestSession()
	if err := sess.openStream(); err != nil {
		t.Fatal(err)
	}
	out := conn.out.String()
	if !strings.Contains(out, "<stream:stream") || !strings.Contains(out, "to='example.net'") {
		t.Fatalf("unexpected stream open: %q", out)
	}
	if sess.dec == nil || sess.builder == nil {
		t.Fatal("expected openStream to install a fresh decoder and builder")
	}
}
