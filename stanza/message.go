// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"golang.org/x/text/language"

	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
)

// MessageType is the value of a message stanza's type attribute.
type MessageType int

// The five message types. Normal is the default when the type attribute is
// absent on an inbound stanza, but is still written out explicitly as
// type='normal' by this package's own constructors.
const (
	NormalMessage MessageType = iota
	Headline
	Chat
	Groupchat
	MessageError
)

func (t MessageType) String() string {
	switch t {
	case Headline:
		return "headline"
	case Chat:
		return "chat"
	case Groupchat:
		return "groupchat"
	case MessageError:
		return "error"
	default:
		return "normal"
	}
}

func parseMessageType(s string) (MessageType, bool) {
	switch s {
	case "", "normal":
		return NormalMessage, true
	case "headline":
		return Headline, true
	case "chat":
		return Chat, true
	case "groupchat":
		return Groupchat, true
	case "error":
		return MessageError, true
	}
	return 0, false
}

// Message wraps a <message/> element.
type Message struct {
	El *element.Element
}

// NewMessage constructs a fresh message stanza in the jabber:client
// namespace. Unlike Presence's Available default, Normal is still written
// out explicitly (matching the Rust original's MessageType::attr_string,
// which wraps every variant including Normal in Some(...)).
func NewMessage(kind MessageType, id string) *Message {
	e := element.New("message", ns.Client)
	e.SetAttr("type", "", strPtr(kind.String()))
	setAttrOrRemove(e, "id", id)
	return &Message{e}
}

// AsElement exposes the underlying element for extension access.
func (m *Message) AsElement() *element.Element { return m.El }

// String returns the message's wire-form serialization.
func (m *Message) String() string { return m.El.String() }

// To returns the to attribute, or "" if absent.
func (m *Message) To() string { return attrString(m.El, "to") }

// SetTo sets or clears the to attribute.
func (m *Message) SetTo(to string) { setAttrOrRemove(m.El, "to", to) }

// From returns the from attribute, or "" if absent.
func (m *Message) From() string { return attrString(m.El, "from") }

// SetFrom sets or clears the from attribute.
func (m *Message) SetFrom(from string) { setAttrOrRemove(m.El, "from", from) }

// ID returns the id attribute, or "" if absent.
func (m *Message) ID() string { return attrString(m.El, "id") }

// SetID sets or clears the id attribute.
func (m *Message) SetID(id string) { setAttrOrRemove(m.El, "id", id) }

// Kind returns the message's type, defaulting to Normal when the attribute
// is absent; false is returned only for an unrecognized attribute value.
func (m *Message) Kind() (MessageType, bool) {
	v, _ := m.El.Attr("type", "")
	return parseMessageType(v)
}

// SetKind sets the type attribute, writing type='normal' explicitly rather
// than omitting it (Iq's unconditional-write pattern, unlike Presence's
// Available default).
func (m *Message) SetKind(kind MessageType) {
	m.El.SetAttr("type", "", strPtr(kind.String()))
}

// Body returns the text of the first <body/> child, or "" if absent.
func (m *Message) Body() string {
	if body := m.El.GetChild("body", ""); body != nil {
		return body.Text()
	}
	return ""
}

// SetBody replaces any existing <body/> children with a single new one.
func (m *Message) SetBody(text string) {
	kept := m.El.Children[:0]
	for _, c := range m.El.Children {
		if c.Elem != nil && c.Elem.Name == "body" {
			continue
		}
		kept = append(kept, c)
	}
	m.El.Children = kept
	body := element.New("body", "")
	body.AppendText(text)
	m.El.AppendChild(body)
}

// ErrorReply builds a type=error response to m: addressing is swapped,
// the original id is preserved, and an <error> child carries the cause.
func (m *Message) ErrorReply(errType ErrorType, condition Condition, text string) *Message {
	return m.ErrorReplyErr(errType, StanzaErr{Condition: condition}, text)
}

// ErrorReplyErr is ErrorReply with support for parameterized conditions.
func (m *Message) ErrorReplyErr(errType ErrorType, se StanzaErr, text string) *Message {
	reply := NewMessage(MessageError, m.ID())
	reply.SetTo(m.From())
	reply.El.AppendChild(newErrorElementFull(errType, se, text, language.Und))
	return reply
}
