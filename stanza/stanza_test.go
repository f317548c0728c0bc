// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"testing"

	"suite.im/xmpp/element"
)

func TestClassify(t *testing.T) {
	iq := element.New("iq", "jabber:client")
	as, ok := Classify(iq)
	if !ok || as.Iq == nil {
		t.Fatal("expected iq to classify")
	}

	msg := element.New("message", "jabber:client")
	as, ok = Classify(msg)
	if !ok || as.Message == nil {
		t.Fatal("expected message to classify")
	}

	pres := element.New("presence", "jabber:server")
	as, ok = Classify(pres)
	if !ok || as.Presence == nil {
		t.Fatal("expected presence in jabber:server namespace to classify")
	}

	other := element.New("iq", "jabber:component:accept")
	if _, ok := Classify(other); ok {
		t.Fatal("expected unrecognized namespace to not classify")
	}

	notAStanza := element.New("ping", "urn:xmpp:ping")
	if _, ok := Classify(notAStanza); ok {
		t.Fatal("expected non-stanza local name to not classify")
	}
}
