// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import "suite.im/xmpp/stanza"

// IqGuard represents the obligation to reply to an incoming Get/Set iq.
// Go has no scope-guard destructors, so the obligation is modeled
// explicitly: callers should respond via Respond, or call Release (most
// naturally deferred) to discharge it. The session also releases the
// previous guard automatically on the next Handle call, so an abandoned
// guard never suppresses the default error reply for more than one event
// cycle.
type IqGuard struct {
	iq        *stanza.Iq
	session   *Session
	responded bool
}

// Iq returns the incoming request this guard is responsible for.
func (g *IqGuard) Iq() *stanza.Iq { return g.iq }

// Respond sends response and discharges the guard's obligation.
func (g *IqGuard) Respond(response *stanza.Iq) error {
	g.responded = true
	return g.session.Send(response)
}

// Release discharges the guard. If the caller never called Respond and the
// original request carried a non-empty id, a default
// type=error/cancel/service-unavailable reply is sent automatically,
// addressed to the original from and carrying the original id. If the
// request had no id, nothing is sent. Release is idempotent.
func (g *IqGuard) Release() {
	if g.responded {
		return
	}
	g.responded = true
	if g.iq.ID() == "" {
		return
	}
	reply := g.iq.ErrorReply(stanza.Cancel, stanza.ServiceUnavailable, "")
	_ = g.session.Send(reply)
}
