// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package stanza implements the three routable top-level stream children —
// iq, message, and presence — as typed wrappers over a generic element.
package stanza

import (
	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
)

func isStanzaNamespace(space string) bool {
	return space == ns.Client || space == ns.Server
}

func strPtr(s string) *string { return &s }

func attrString(e *element.Element, name string) string {
	v, _ := e.Attr(name, "")
	return v
}

func setAttrOrRemove(e *element.Element, name, value string) {
	if value == "" {
		e.SetAttr(name, "", nil)
		return
	}
	e.SetAttr(name, "", strPtr(value))
}

// AStanza is the disjoint union of the three stanza kinds, produced by
// Classify.
type AStanza struct {
	Iq       *Iq
	Message  *Message
	Presence *Presence
}

// Classify converts a generic element into its typed stanza wrapper, if it
// is one. An element not in {jabber:client, jabber:server} or whose local
// name is not one of iq/message/presence is returned unchanged via ok=false
// so the caller can fall back to non-stanza handling.
func Classify(e *element.Element) (AStanza, bool) {
	if !isStanzaNamespace(e.Namespace) {
		return AStanza{}, false
	}
	switch e.Name {
	case "iq":
		return AStanza{Iq: &Iq{e}}, true
	case "message":
		return AStanza{Message: &Message{e}}, true
	case "presence":
		return AStanza{Presence: &Presence{e}}, true
	}
	return AStanza{}, false
}
