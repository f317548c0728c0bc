// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package xmpp implements a client-side RFC 6120/6121 protocol engine: a
// single-threaded, synchronous session that negotiates a stream, performs
// SASL authentication and resource binding, and exchanges stanzas.
package xmpp

import (
	"encoding/xml"
	"fmt"

	"suite.im/xmpp/element"
	"suite.im/xmpp/sasl"
	"suite.im/xmpp/streamerr"
)

// renderable is any value this package knows how to put on the wire.
type renderable interface {
	String() string
}

// Session is a single XMPP client stream: exactly one execution context,
// owning one Socket, driving negotiation through to Ready and then
// surfacing application events via Handle.
type Session struct {
	username string
	password string
	domain   string

	closed  bool
	sock    *Socket
	dec     *xml.Decoder
	builder *element.Builder

	authenticator sasl.Mechanism
	pendingBindID string

	outstandingGuard *IqGuard
	onSASLError      func(condition string)
}

// New constructs a Session for the given user, domain, and password. It
// does not connect; call Connect to do that. The Socket is allocated
// up front so TeeIn/TeeOut can be wired before Connect writes a byte.
func New(user, domain, password string) *Session {
	return &Session{username: user, domain: domain, password: password, sock: &Socket{}}
}

// Sock exposes the underlying Socket, primarily so a caller can set
// TeeIn/TeeOut for wire tracing before calling Connect.
func (sess *Session) Sock() *Socket { return sess.sock }

// Connect establishes the TCP connection and opens the stream.
func (sess *Session) Connect() error {
	if err := sess.sock.Connect(sess.domain, 5222); err != nil {
		return fmt.Errorf("xmpp: connect: %w", err)
	}
	return sess.openStream()
}

// Send writes v's wire form to the socket and flushes immediately.
func (sess *Session) Send(v renderable) error {
	if sess.sock.state == sockUnconnected {
		return ErrNotConnected
	}
	if _, err := sess.sock.Write([]byte(v.String())); err != nil {
		return fmt.Errorf("xmpp: send: %w", err)
	}
	return sess.sock.Flush()
}

// openStream sends a fresh StreamStart and resets the decoder/builder, as
// required after the initial connect, after STARTTLS succeeds, and after
// SASL succeeds.
func (sess *Session) openStream() error {
	if err := sess.Send(streamerr.StreamStart{To: sess.domain}); err != nil {
		return err
	}
	sess.dec = xml.NewDecoder(sess.sock)
	sess.builder = element.NewBuilder()
	return nil
}

// closeStream sends at most one closing tag per session, matching the
// spec's "never double-close" invariant.
func (sess *Session) closeStream() error {
	if sess.closed {
		return nil
	}
	sess.closed = true
	return sess.Send(streamerr.StreamEnd{})
}
