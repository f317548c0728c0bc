// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"golang.org/x/text/language"

	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
)

// IqType is the value of an iq stanza's type attribute.
type IqType int

// The four legal iq types. There is no default: every iq must carry one.
const (
	Get IqType = iota
	Set
	Result
	IqError
)

func (t IqType) String() string {
	switch t {
	case Get:
		return "get"
	case Set:
		return "set"
	case Result:
		return "result"
	case IqError:
		return "error"
	}
	return ""
}

func parseIqType(s string) (IqType, bool) {
	switch s {
	case "get":
		return Get, true
	case "set":
		return Set, true
	case "result":
		return Result, true
	case "error":
		return IqError, true
	}
	return 0, false
}

// Iq wraps an <iq/> element.
type Iq struct {
	El *element.Element
}

// NewIq constructs a fresh iq stanza in the jabber:client namespace.
func NewIq(kind IqType, id string) *Iq {
	e := element.New("iq", ns.Client)
	e.SetAttr("type", "", strPtr(kind.String()))
	setAttrOrRemove(e, "id", id)
	return &Iq{e}
}

// AsElement exposes the underlying element for extension access.
func (iq *Iq) AsElement() *element.Element { return iq.El }

// String returns the iq's wire-form serialization.
func (iq *Iq) String() string { return iq.El.String() }

// To returns the to attribute, or "" if absent.
func (iq *Iq) To() string { return attrString(iq.El, "to") }

// SetTo sets or clears the to attribute.
func (iq *Iq) SetTo(to string) { setAttrOrRemove(iq.El, "to", to) }

// From returns the from attribute, or "" if absent.
func (iq *Iq) From() string { return attrString(iq.El, "from") }

// SetFrom sets or clears the from attribute.
func (iq *Iq) SetFrom(from string) { setAttrOrRemove(iq.El, "from", from) }

// ID returns the id attribute, or "" if absent.
func (iq *Iq) ID() string { return attrString(iq.El, "id") }

// SetID sets or clears the id attribute.
func (iq *Iq) SetID(id string) { setAttrOrRemove(iq.El, "id", id) }

// Kind returns the iq's type, and false if the attribute is missing or
// unrecognized.
func (iq *Iq) Kind() (IqType, bool) {
	v, ok := iq.El.Attr("type", "")
	if !ok {
		return 0, false
	}
	return parseIqType(v)
}

// SetKind sets the type attribute.
func (iq *Iq) SetKind(kind IqType) {
	iq.El.SetAttr("type", "", strPtr(kind.String()))
}

// ErrorReply builds a type=error response to iq: addressing is swapped (to
// becomes the original from; from is dropped), the original id is
// preserved, and an <error> child carries errType/cond/text.
func (iq *Iq) ErrorReply(errType ErrorType, condition Condition, text string) *Iq {
	return iq.ErrorReplyErr(errType, StanzaErr{Condition: condition}, text)
}

// ErrorReplyErr is ErrorReply with support for the parameterized Gone and
// Redirect conditions (constructed via GoneWithURI/RedirectWithURI).
func (iq *Iq) ErrorReplyErr(errType ErrorType, se StanzaErr, text string) *Iq {
	reply := NewIq(IqError, iq.ID())
	reply.SetTo(iq.From())
	reply.El.AppendChild(newErrorElementFull(errType, se, text, language.Und))
	return reply
}
