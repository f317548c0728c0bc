// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package streamerr implements stream-level defined conditions (RFC 6120
// §4.9.3) and the non-stanza frames exchanged before a stream is ready:
// stream open/close, STARTTLS, and SASL auth/response.
package streamerr

import (
	"fmt"
	"strings"

	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
)

// Condition is one of the defined stream-error conditions.
type Condition string

// The stream-error conditions defined by RFC 6120 §4.9.3.
const (
	BadFormat              Condition = "bad-format"
	BadNamespacePrefix     Condition = "bad-namespace-prefix"
	Conflict               Condition = "conflict"
	ConnectionTimeout      Condition = "connection-timeout"
	HostGone               Condition = "host-gone"
	HostUnknown            Condition = "host-unknown"
	ImproperAddressing     Condition = "improper-addressing"
	InternalServerError    Condition = "internal-server-error"
	InvalidFrom            Condition = "invalid-from"
	InvalidNamespace       Condition = "invalid-namespace"
	InvalidXML             Condition = "invalid-xml"
	NotAuthorized          Condition = "not-authorized"
	NotWellFormed          Condition = "not-well-formed"
	PolicyViolation        Condition = "policy-violation"
	RemoteConnectionFailed Condition = "remote-connection-failed"
	Reset                  Condition = "reset"
	ResourceConstraint     Condition = "resource-constraint"
	RestrictedXML          Condition = "restricted-xml"
	SeeOtherHost           Condition = "see-other-host"
	SystemShutdown         Condition = "system-shutdown"
	UndefinedCondition     Condition = "undefined-condition"
	UnsupportedEncoding    Condition = "unsupported-encoding"
	UnsupportedFeature     Condition = "unsupported-feature"
	UnsupportedStanzaType  Condition = "unsupported-stanza-type"
	UnsupportedVersion     Condition = "unsupported-version"
)

// Error is a stream-level error: a defined condition plus optional
// human-readable text and, for see-other-host, the replacement host.
type Error struct {
	Condition Condition
	Host      string // only meaningful when Condition == SeeOtherHost
	Text      string
}

// Error satisfies the built-in error interface.
func (e Error) Error() string {
	if e.Text != "" {
		return string(e.Condition) + ": " + e.Text
	}
	return string(e.Condition)
}

// SeeOtherHostError constructs a see-other-host stream error for the given
// replacement host.
func SeeOtherHostError(host string) Error {
	return Error{Condition: SeeOtherHost, Host: host}
}

// element renders the condition (and any parameterized payload) as its
// wire element, in the STREAM_ERRORS namespace.
func (e Error) element() *element.Element {
	cond := element.New(string(e.Condition), ns.StreamErrors)
	if e.Condition == SeeOtherHost && e.Host != "" {
		cond.AppendText(e.Host)
	}
	return cond
}

// WriteXML serializes the enclosing <stream:error> frame.
func (e Error) WriteXML(w *strings.Builder) {
	w.WriteString("<stream:error>")
	e.element().WriteXML(w)
	if e.Text != "" {
		text := element.New("text", ns.StreamErrors)
		text.AppendText(e.Text)
		text.WriteXML(w)
	}
	w.WriteString("</stream:error>")
}

func (e Error) String() string {
	var b strings.Builder
	e.WriteXML(&b)
	return b.String()
}

// StreamStart is the opening stream tag, sent once per negotiation attempt
// (a fresh one is required after STARTTLS and after SASL success).
type StreamStart struct {
	To string
}

func (s StreamStart) String() string {
	return fmt.Sprintf("<?xml version='1.0'?>\n<stream:stream xmlns:stream='%s' xmlns='%s' version='1.0' to='%s'>",
		ns.Stream, ns.Client, s.To)
}

// StreamEnd is the closing stream tag.
type StreamEnd struct{}

func (StreamEnd) String() string { return "</stream:stream>" }

// StartTls is the client's request to begin a TLS upgrade.
type StartTls struct{}

func (StartTls) String() string {
	return fmt.Sprintf("<starttls xmlns='%s'/>", ns.TLS)
}

// AuthStart is the initial SASL <auth> element carrying the chosen
// mechanism and the base64-encoded initial response.
type AuthStart struct {
	Mechanism string
	Data      string
}

func (a AuthStart) String() string {
	return fmt.Sprintf("<auth mechanism='%s' xmlns='%s'>%s</auth>", a.Mechanism, ns.SASL, a.Data)
}

// AuthResponse is a subsequent SASL <response> element.
type AuthResponse struct {
	Data string
}

func (a AuthResponse) String() string {
	return fmt.Sprintf("<response xmlns='%s'>%s</response>", ns.SASL, a.Data)
}
