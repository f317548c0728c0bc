// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import (
	"encoding/xml"
	"time"

	"suite.im/xmpp/element"
	"suite.im/xmpp/jid"
	"suite.im/xmpp/ns"
	"suite.im/xmpp/stanza"
	"suite.im/xmpp/streamerr"
)

// EventKind discriminates the variants of Event.
type EventKind int

// The event kinds a Handle call can return.
const (
	EventMessage EventKind = iota
	EventPresence
	EventIqRequest
	EventIqResponse
	EventBound
	EventBindError
	EventStreamError
	EventStreamClosed
)

// Event is the single value Handle returns each time it is called; at most
// one of its payload fields is populated, selected by Kind
// (EventStreamClosed carries none).
type Event struct {
	Kind EventKind

	Message     *stanza.Message
	Presence    *stanza.Presence
	IqRequest   *IqGuard
	IqResponse  *stanza.Iq
	Bound       *jid.JID // may be nil even on EventBound, if no bind JID was sent
	BindError   *stanza.Iq
	StreamError *element.Element
}

const closeDrainTimeout = 5 * time.Second

// Handle blocks until the next event and returns exactly one Event. I/O
// errors during reads are reported as EventStreamClosed, since the session
// is no longer usable.
func (sess *Session) Handle() Event {
	if sess.outstandingGuard != nil {
		sess.outstandingGuard.Release()
		sess.outstandingGuard = nil
	}

	for {
		tok, err := sess.dec.Token()
		if err != nil {
			return Event{Kind: EventStreamClosed}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "stream" && t.Name.Space == ns.Stream {
				sess.builder.Reset()
				continue
			}
			sess.builder.HandleToken(t)
		case xml.EndElement:
			if t.Name.Local == "stream" && t.Name.Space == ns.Stream {
				_ = sess.closeStream()
				return Event{Kind: EventStreamClosed}
			}
			el, buildErr := sess.builder.HandleToken(t)
			if buildErr != nil {
				sess.recoverFromParseError()
				return Event{Kind: EventStreamClosed}
			}
			if el == nil {
				continue
			}
			if ev := sess.handleElement(el); ev != nil {
				return *ev
			}
		default:
			sess.builder.HandleToken(tok)
		}
	}
}

// recoverFromParseError implements the spec's malformed-subtree recovery:
// send a stream error, close locally, then drain until the remote closes
// (bounded, so a misbehaving peer cannot wedge the caller forever).
func (sess *Session) recoverFromParseError() {
	_ = sess.Send(streamerr.Error{Condition: streamerr.InvalidXML})
	_ = sess.closeStream()
	_ = sess.sock.SetReadDeadline(time.Now().Add(closeDrainTimeout))
	for {
		if _, err := sess.dec.Token(); err != nil {
			break
		}
	}
	_ = sess.sock.SetReadDeadline(time.Time{})
}

// handleElement classifies one completed top-level subtree and either
// handles it transparently (returning nil) or produces a caller-facing
// Event.
func (sess *Session) handleElement(el *element.Element) *Event {
	switch {
	case el.Namespace == ns.Stream && el.Name == "features":
		_ = sess.handleFeatures(el)
		return nil
	case el.Namespace == ns.Stream && el.Name == "error":
		return &Event{Kind: EventStreamError, StreamError: el}
	case el.Namespace == ns.TLS:
		_ = sess.handleStartTLS(el)
		return nil
	case el.Namespace == ns.SASL:
		_ = sess.handleSASL(el)
		return nil
	}

	as, ok := stanza.Classify(el)
	if !ok {
		return nil
	}
	switch {
	case as.Message != nil:
		return &Event{Kind: EventMessage, Message: as.Message}
	case as.Presence != nil:
		return &Event{Kind: EventPresence, Presence: as.Presence}
	case as.Iq != nil:
		return sess.handleIq(as.Iq)
	}
	return nil
}

func (sess *Session) handleIq(iq *stanza.Iq) *Event {
	kind, ok := iq.Kind()
	if !ok {
		return nil
	}
	switch kind {
	case stanza.Get, stanza.Set:
		guard := &IqGuard{iq: iq, session: sess}
		sess.outstandingGuard = guard
		return &Event{Kind: EventIqRequest, IqRequest: guard}
	case stanza.Result, stanza.IqError:
		if sess.pendingBindID != "" && iq.ID() == sess.pendingBindID {
			sess.pendingBindID = ""
			if kind == stanza.IqError {
				return &Event{Kind: EventBindError, BindError: iq}
			}
			return &Event{Kind: EventBound, Bound: extractBoundJID(iq)}
		}
		return &Event{Kind: EventIqResponse, IqResponse: iq}
	}
	return nil
}

func extractBoundJID(iq *stanza.Iq) *jid.JID {
	bindEl := iq.AsElement().GetChild("bind", ns.Bind)
	if bindEl == nil {
		return nil
	}
	jidEl := bindEl.GetChild("jid", "")
	if jidEl == nil {
		return nil
	}
	j, err := jid.Parse(jidEl.Text())
	if err != nil {
		return nil
	}
	return j
}
