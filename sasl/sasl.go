// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package sasl implements the client side of the SASL mechanisms this
// engine negotiates: PLAIN (RFC 4616), ANONYMOUS (RFC 4505), and
// SCRAM-SHA-1 (RFC 5802, without channel binding).
package sasl

// Mechanism advances a SASL handshake one challenge at a time.
type Mechanism interface {
	// Name is the mechanism's on-wire name, e.g. "SCRAM-SHA-1".
	Name() string
	// Initial produces the first client message.
	Initial() ([]byte, error)
	// Continuation advances the handshake given the server's last message
	// and returns the next outbound message, or nil when nothing more is
	// owed.
	Continuation(serverData []byte) ([]byte, error)
}

// Plain implements the PLAIN mechanism (RFC 4616). It is stateless.
type Plain struct {
	Authzid string
	Authcid string
	Passwd  string
}

// Name returns "PLAIN".
func (Plain) Name() string { return "PLAIN" }

// Initial returns [authzid] NUL authcid NUL passwd.
func (p Plain) Initial() ([]byte, error) {
	buf := make([]byte, 0, len(p.Authzid)+len(p.Authcid)+len(p.Passwd)+2)
	buf = append(buf, p.Authzid...)
	buf = append(buf, 0)
	buf = append(buf, p.Authcid...)
	buf = append(buf, 0)
	buf = append(buf, p.Passwd...)
	return buf, nil
}

// Continuation always returns an empty response; PLAIN has no challenges.
func (Plain) Continuation([]byte) ([]byte, error) { return nil, nil }

// Anonymous implements the ANONYMOUS mechanism (RFC 4505). It is stateless.
type Anonymous struct{}

// Name returns "ANONYMOUS".
func (Anonymous) Name() string { return "ANONYMOUS" }

// Initial returns an empty byte sequence.
func (Anonymous) Initial() ([]byte, error) { return nil, nil }

// Continuation always returns an empty response.
func (Anonymous) Continuation([]byte) ([]byte, error) { return nil, nil }
