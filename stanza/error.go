// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"strings"

	"golang.org/x/text/language"

	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
)

// ErrorType is the value of an <error type='...'> attribute.
type ErrorType int

// The five legal stanza error types, per RFC 6120 §8.3.2.
const (
	Cancel ErrorType = iota
	Auth
	Continue
	Modify
	Wait
)

func (t ErrorType) String() string {
	switch t {
	case Cancel:
		return "cancel"
	case Auth:
		return "auth"
	case Continue:
		return "continue"
	case Modify:
		return "modify"
	case Wait:
		return "wait"
	}
	return "cancel"
}

// Condition is a defined stanza-error condition (RFC 6120 §8.3.3).
type Condition string

// The stanza-error conditions. Gone and Redirect additionally carry a URI,
// set via GoneWithURI/RedirectWithURI.
const (
	BadRequest            Condition = "bad-request"
	StanzaConflict        Condition = "conflict"
	FeatureNotImplemented Condition = "feature-not-implemented"
	Forbidden             Condition = "forbidden"
	Gone                  Condition = "gone"
	InternalServerError   Condition = "internal-server-error"
	ItemNotFound          Condition = "item-not-found"
	JIDMalformed          Condition = "jid-malformed"
	NotAcceptable         Condition = "not-acceptable"
	NotAllowed            Condition = "not-allowed"
	NotAuthorized         Condition = "not-authorized"
	StanzaPolicyViolation Condition = "policy-violation"
	RecipientUnavailable  Condition = "recipient-unavailable"
	Redirect              Condition = "redirect"
	RegistrationRequired  Condition = "registration-required"
	RemoteServerNotFound  Condition = "remote-server-not-found"
	RemoteServerTimeout   Condition = "remote-server-timeout"
	StanzaResourceLimit   Condition = "resource-constraint"
	ServiceUnavailable    Condition = "service-unavailable"
	SubscriptionRequired  Condition = "subscription-required"
	UndefinedCondition    Condition = "undefined-condition"
	UnexpectedRequest     Condition = "unexpected-request"
)

// StanzaErr pairs a condition with the optional URI payload carried by
// Gone and Redirect.
type StanzaErr struct {
	Condition Condition
	URI       string
}

// GoneWithURI builds a gone condition carrying the given replacement URI.
func GoneWithURI(uri string) StanzaErr { return StanzaErr{Condition: Gone, URI: uri} }

// RedirectWithURI builds a redirect condition carrying the given URI.
func RedirectWithURI(uri string) StanzaErr { return StanzaErr{Condition: Redirect, URI: uri} }

func newErrorElementFull(errType ErrorType, se StanzaErr, text string, lang language.Tag) *element.Element {
	errEl := element.New("error", "")
	errEl.SetAttr("type", "", strPtr(errType.String()))

	condEl := element.New(string(se.Condition), ns.StanzaErrors)
	if se.URI != "" {
		condEl.AppendText(se.URI)
	}
	errEl.AppendChild(condEl)

	if text != "" {
		textEl := element.New("text", ns.StanzaErrors)
		if tag := lang.String(); tag != "" && tag != "und" {
			textEl.SetAttr("lang", ns.XML, strPtr(tag))
		}
		textEl.AppendText(text)
		errEl.AppendChild(textEl)
	}
	return errEl
}

// ParsedError is a stanza-level error decoded from an incoming <error>
// child, as found on a type=error iq/message/presence.
type ParsedError struct {
	Type      ErrorType
	Condition Condition
	URI       string
	Text      string
}

// ParseError decodes the <error> child of a stanza element, if present.
func ParseError(stanzaEl *element.Element) (ParsedError, bool) {
	errEl := stanzaEl.GetChild("error", "")
	if errEl == nil {
		return ParsedError{}, false
	}
	pe := ParsedError{Type: Cancel}
	if v, ok := errEl.Attr("type", ""); ok {
		switch v {
		case "auth":
			pe.Type = Auth
		case "continue":
			pe.Type = Continue
		case "modify":
			pe.Type = Modify
		case "wait":
			pe.Type = Wait
		default:
			pe.Type = Cancel
		}
	}
	for _, c := range errEl.Children {
		if c.Elem == nil || c.Elem.Namespace != ns.StanzaErrors {
			continue
		}
		if c.Elem.Name == "text" {
			pe.Text = c.Elem.Text()
			continue
		}
		pe.Condition = conditionFromLocal(c.Elem.Name)
		pe.URI = c.Elem.Text()
	}
	return pe, true
}

func conditionFromLocal(local string) Condition {
	return Condition(strings.TrimSpace(local))
}
