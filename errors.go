// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import "errors"

// Sentinel errors returned by package-level operations. Protocol-level
// failures reported by the remote peer travel through Event instead (see
// EventStreamError, EventBindError); these are local precondition errors.
var (
	// ErrNotConnected is returned by Send when called before Connect.
	ErrNotConnected = errors.New("xmpp: session not connected")

	// ErrNoMechanism is returned when a server advertises no mechanism this
	// engine recognizes (SCRAM-SHA-1, PLAIN, ANONYMOUS).
	ErrNoMechanism = errors.New("xmpp: no supported SASL mechanism offered")
)

// SetSASLErrorHook sets a function that, if non-nil, is called with the
// condition name carried by an inbound SASL <failure/> (e.g.
// "not-authorized"), or with the error text when the authenticator rejects
// a server challenge. The core engine stays logger-free (per the
// project's ambient-stack convention); this hook is how a caller plugs in
// its own *log.Logger without the library taking a hard dependency on one.
// Authentication still aborts and the server still closes the stream
// regardless of whether a hook is set.
func (sess *Session) SetSASLErrorHook(fn func(condition string)) {
	sess.onSASLError = fn
}
