// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package sasl

import (
	"bytes"
	"testing"
)

func TestPlainInitial(t *testing.T) {
	p := Plain{Authcid: "admin", Passwd: "pass"}
	got, err := p.Initial()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte("\x00admin\x00pass")
	if !bytes.Equal(got, want) {
		t.Fatalf("Initial() = %q, want %q", got, want)
	}
}

func TestPlainWithAuthzid(t *testing.T) {
	p := Plain{Authzid: "admin", Authcid: "user", Passwd: "pass"}
	got, _ := p.Initial()
	want := []byte("admin\x00user\x00pass")
	if !bytes.Equal(got, want) {
		t.Fatalf("Initial() = %q, want %q", got, want)
	}
}

func TestPlainContinuationIsAlwaysEmpty(t *testing.T) {
	p := Plain{}
	if out, err := p.Continuation([]byte("anything")); out != nil || err != nil {
		t.Fatalf("Continuation() = (%v, %v), want (nil, nil)", out, err)
	}
}

func TestAnonymousIsEmpty(t *testing.T) {
	a := Anonymous{}
	if a.Name() != "ANONYMOUS" {
		t.Fatalf("Name() = %q", a.Name())
	}
	init, err := a.Initial()
	if err != nil || len(init) != 0 {
		t.Fatalf("Initial() = (%v, %v)", init, err)
	}
	cont, err := a.Continuation([]byte("ignored"))
	if err != nil || len(cont) != 0 {
		t.Fatalf("Continuation() = (%v, %v)", cont, err)
	}
}

var (
	_ Mechanism = Plain{}
	_ Mechanism = Anonymous{}
	_ Mechanism = (*ScramSHA1)(nil)
)
