// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"golang.org/x/text/language"

	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
)

// PresenceType is the value of a presence stanza's type attribute.
type PresenceType int

// The presence types. Available is the default and is serialized as an
// omitted attribute.
const (
	Available PresenceType = iota
	Unavailable
	Subscribe
	Subscribed
	Unsubscribe
	Unsubscribed
	Probe
	PresenceError
)

func (t PresenceType) String() string {
	switch t {
	case Unavailable:
		return "unavailable"
	case Subscribe:
		return "subscribe"
	case Subscribed:
		return "subscribed"
	case Unsubscribe:
		return "unsubscribe"
	case Unsubscribed:
		return "unsubscribed"
	case Probe:
		return "probe"
	case PresenceError:
		return "error"
	default:
		return ""
	}
}

func parsePresenceType(s string) (PresenceType, bool) {
	switch s {
	case "":
		return Available, true
	case "unavailable":
		return Unavailable, true
	case "subscribe":
		return Subscribe, true
	case "subscribed":
		return Subscribed, true
	case "unsubscribe":
		return Unsubscribe, true
	case "unsubscribed":
		return Unsubscribed, true
	case "probe":
		return Probe, true
	case "error":
		return PresenceError, true
	}
	return 0, false
}

// Presence wraps a <presence/> element.
type Presence struct {
	El *element.Element
}

// NewPresence constructs a fresh presence stanza in the jabber:client
// namespace. Available is serialized without a type attribute.
func NewPresence(kind PresenceType, id string) *Presence {
	e := element.New("presence", ns.Client)
	if kind != Available {
		e.SetAttr("type", "", strPtr(kind.String()))
	}
	setAttrOrRemove(e, "id", id)
	return &Presence{e}
}

// AsElement exposes the underlying element for extension access.
func (p *Presence) AsElement() *element.Element { return p.El }

// String returns the presence's wire-form serialization.
func (p *Presence) String() string { return p.El.String() }

// To returns the to attribute, or "" if absent.
func (p *Presence) To() string { return attrString(p.El, "to") }

// SetTo sets or clears the to attribute.
func (p *Presence) SetTo(to string) { setAttrOrRemove(p.El, "to", to) }

// From returns the from attribute, or "" if absent.
func (p *Presence) From() string { return attrString(p.El, "from") }

// SetFrom sets or clears the from attribute.
func (p *Presence) SetFrom(from string) { setAttrOrRemove(p.El, "from", from) }

// ID returns the id attribute, or "" if absent.
func (p *Presence) ID() string { return attrString(p.El, "id") }

// SetID sets or clears the id attribute.
func (p *Presence) SetID(id string) { setAttrOrRemove(p.El, "id", id) }

// Kind returns the presence's type, defaulting to Available when the
// attribute is absent; false is returned only for an unrecognized value.
func (p *Presence) Kind() (PresenceType, bool) {
	v, _ := p.El.Attr("type", "")
	return parsePresenceType(v)
}

// SetKind sets the type attribute, omitting it entirely for Available.
func (p *Presence) SetKind(kind PresenceType) {
	if kind == Available {
		p.El.SetAttr("type", "", nil)
		return
	}
	p.El.SetAttr("type", "", strPtr(kind.String()))
}

// ErrorReply builds a type=error response to p.
func (p *Presence) ErrorReply(errType ErrorType, condition Condition, text string) *Presence {
	return p.ErrorReplyErr(errType, StanzaErr{Condition: condition}, text)
}

// ErrorReplyErr is ErrorReply with support for parameterized conditions.
func (p *Presence) ErrorReplyErr(errType ErrorType, se StanzaErr, text string) *Presence {
	reply := NewPresence(PresenceError, p.ID())
	reply.SetTo(p.From())
	reply.El.AppendChild(newErrorElementFull(errType, se, text, language.Und))
	return reply
}
