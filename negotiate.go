// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import (
	"encoding/base64"
	"fmt"

	"suite.im/xmpp/element"
	"suite.im/xmpp/ns"
	"suite.im/xmpp/sasl"
	"suite.im/xmpp/stanza"
	"suite.im/xmpp/streamerr"
)

// handleFeatures chooses the first applicable branch of the hardcoded
// negotiation precedence: STARTTLS, then SASL, then resource bind.
func (sess *Session) handleFeatures(features *element.Element) error {
	if sess.sock.state == sockPlain && features.GetChild("starttls", ns.TLS) != nil {
		return sess.Send(streamerr.StartTls{})
	}
	if mechs := features.GetChild("mechanisms", ns.SASL); mechs != nil {
		return sess.handleMechs(mechs)
	}
	if features.GetChild("bind", ns.Bind) != nil {
		return sess.handleBind()
	}
	return nil
}

func (sess *Session) handleMechs(mechs *element.Element) error {
	for _, m := range mechs.GetChildren("mechanism", ns.SASL) {
		name := m.Text()
		var mech sasl.Mechanism
		switch name {
		case "SCRAM-SHA-1":
			mech = &sasl.ScramSHA1{Authcid: sess.username, Passwd: sess.password}
		case "PLAIN":
			mech = &sasl.Plain{Authcid: sess.username, Passwd: sess.password}
		case "ANONYMOUS":
			mech = sasl.Anonymous{}
		default:
			continue
		}
		initial, err := mech.Initial()
		if err != nil {
			continue
		}
		sess.authenticator = mech
		data := base64.StdEncoding.EncodeToString(initial)
		return sess.Send(streamerr.AuthStart{Mechanism: name, Data: data})
	}
	return ErrNoMechanism
}

func (sess *Session) handleBind() error {
	const id = "bind"
	iq := stanza.NewIq(stanza.Set, id)
	iq.AsElement().AppendChild(element.New("bind", ns.Bind))
	sess.pendingBindID = id
	return sess.Send(iq)
}

func (sess *Session) handleStartTLS(el *element.Element) error {
	if el.Name != "proceed" {
		return nil // failure: the server will close
	}
	if err := sess.sock.StartTLS(sess.domain); err != nil {
		return fmt.Errorf("xmpp: starttls: %w", err)
	}
	return sess.openStream()
}

func (sess *Session) handleSASL(el *element.Element) error {
	switch el.Name {
	case "challenge":
		data, err := base64.StdEncoding.DecodeString(el.Text())
		if err != nil {
			return nil // malformed payload is ignored per spec
		}
		out, err := sess.authenticator.Continuation(data)
		if err != nil {
			if sess.onSASLError != nil {
				sess.onSASLError(err.Error())
			}
			return nil
		}
		return sess.Send(streamerr.AuthResponse{Data: base64.StdEncoding.EncodeToString(out)})
	case "success":
		data, err := base64.StdEncoding.DecodeString(el.Text())
		if err != nil {
			return nil
		}
		if _, err := sess.authenticator.Continuation(data); err != nil {
			return nil
		}
		return sess.openStream()
	case "failure":
		if sess.onSASLError != nil {
			sess.onSASLError(saslFailureCondition(el))
		}
		// authentication aborts; the server will close the stream
	}
	return nil
}

// saslFailureCondition returns the local name of <failure>'s single child
// element (e.g. "not-authorized"), or "" if it carries none.
func saslFailureCondition(failure *element.Element) string {
	for _, c := range failure.Children {
		if c.Elem != nil {
			return c.Elem.Name
		}
	}
	return ""
}
