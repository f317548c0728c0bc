// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package jid implements the Jabber ID address format used to route XMPP
// stanzas, as described by RFC 7622.
package jid

import (
	"errors"
	"net"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/precis"
)

// JID represents an XMPP address of the form localpart@domainpart/resourcepart.
// The zero value is not a valid JID; construct one with Parse or New.
type JID struct {
	localpart    string
	domainpart   string
	resourcepart string
}

// Parse constructs a JID from its string representation, applying the
// PRECIS profiles required by RFC 7622 to each part.
func Parse(s string) (*JID, error) {
	localpart, domainpart, resourcepart, err := splitString(s)
	if err != nil {
		return nil, err
	}
	return New(localpart, domainpart, resourcepart)
}

// New constructs a JID from its three parts, normalizing and validating
// each one individually.
func New(localpart, domainpart, resourcepart string) (*JID, error) {
	if !utf8.ValidString(localpart) || !utf8.ValidString(resourcepart) {
		return nil, errors.New("jid: part contains invalid UTF-8")
	}

	domainpart = strings.TrimSuffix(domainpart, ".")
	domainpart, err := idna.ToUnicode(domainpart)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(domainpart) {
		return nil, errors.New("jid: domainpart contains invalid UTF-8")
	}

	if localpart != "" {
		localpart, err = precis.UsernameCaseMapped.String(localpart)
		if err != nil {
			return nil, err
		}
	}
	if resourcepart != "" {
		resourcepart, err = precis.OpaqueString.String(resourcepart)
		if err != nil {
			return nil, err
		}
	}

	if err := commonChecks(localpart, domainpart, resourcepart); err != nil {
		return nil, err
	}

	return &JID{
		localpart:    localpart,
		domainpart:   domainpart,
		resourcepart: resourcepart,
	}, nil
}

// Localpart returns the localpart of the JID, or the empty string if absent.
func (j *JID) Localpart() string {
	if j == nil {
		return ""
	}
	return j.localpart
}

// Domainpart returns the domainpart of the JID.
func (j *JID) Domainpart() string {
	if j == nil {
		return ""
	}
	return j.domainpart
}

// Resourcepart returns the resourcepart of the JID, or the empty string if
// the JID is bare.
func (j *JID) Resourcepart() string {
	if j == nil {
		return ""
	}
	return j.resourcepart
}

// Bare returns a copy of the JID with the resourcepart removed.
func (j *JID) Bare() *JID {
	if j == nil {
		return nil
	}
	return &JID{localpart: j.localpart, domainpart: j.domainpart}
}

// String returns the canonical string representation of the JID.
func (j *JID) String() string {
	if j == nil {
		return ""
	}
	s := j.domainpart
	if j.localpart != "" {
		s = j.localpart + "@" + s
	}
	if j.resourcepart != "" {
		s = s + "/" + j.resourcepart
	}
	return s
}

// Equal reports whether j and other refer to the same address.
func (j *JID) Equal(other *JID) bool {
	if j == nil || other == nil {
		return j == other
	}
	return j.localpart == other.localpart &&
		j.domainpart == other.domainpart &&
		j.resourcepart == other.resourcepart
}

// splitString splits a JID string into its three raw, unvalidated parts,
// matching the parsing steps of RFC 7622 §3.1.
func splitString(s string) (localpart, domainpart, resourcepart string, err error) {
	parts := strings.SplitN(s, "/", 2)
	rest := parts[0]
	if len(parts) == 2 {
		if parts[1] == "" {
			return "", "", "", errors.New("jid: resourcepart must not be empty")
		}
		resourcepart = parts[1]
	}

	atParts := strings.SplitN(rest, "@", 2)
	switch len(atParts) {
	case 1:
		domainpart = atParts[0]
	case 2:
		if atParts[0] == "" {
			return "", "", "", errors.New("jid: localpart must not be empty")
		}
		localpart = atParts[0]
		domainpart = atParts[1]
	}

	domainpart = strings.TrimSuffix(domainpart, ".")
	return localpart, domainpart, resourcepart, nil
}

func commonChecks(localpart, domainpart, resourcepart string) error {
	if l := len(localpart); l > 1023 {
		return errors.New("jid: localpart must be smaller than 1024 bytes")
	}
	if strings.ContainsAny(localpart, "\"&'/:<>@") {
		return errors.New("jid: localpart contains forbidden characters")
	}
	if l := len(resourcepart); l > 1023 {
		return errors.New("jid: resourcepart must be smaller than 1024 bytes")
	}
	l := len(domainpart)
	if l < 1 || l > 1023 {
		return errors.New("jid: domainpart must be between 1 and 1023 bytes")
	}
	if err := checkIP6String(domainpart); err != nil {
		return err
	}
	return nil
}

func checkIP6String(domainpart string) error {
	if l := len(domainpart); l > 2 && strings.HasPrefix(domainpart, "[") && strings.HasSuffix(domainpart, "]") {
		if ip := net.ParseIP(domainpart[1 : l-1]); ip == nil || ip.To4() != nil {
			return errors.New("jid: domainpart is not a valid IPv6 address")
		}
	}
	return nil
}
