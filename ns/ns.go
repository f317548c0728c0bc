// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package ns provides the XML namespace constants used throughout the
// engine, as defined by RFC 6120 and RFC 6121.
package ns

const (
	// Client is the namespace of stanzas on a client-to-server stream.
	Client = "jabber:client"
	// Server is the namespace of stanzas on a server-to-server stream,
	// accepted on input but never produced by this engine.
	Server = "jabber:server"
	// Stream is the namespace of the <stream:stream> wrapper and its
	// direct children (features, error).
	Stream = "http://etherx.jabber.org/streams"

	// Bind is the namespace of the resource binding feature (RFC 6120 §7).
	Bind = "urn:ietf:params:xml:ns:xmpp-bind"
	// SASL is the namespace of SASL negotiation elements (RFC 6120 §6).
	SASL = "urn:ietf:params:xml:ns:xmpp-sasl"
	// TLS is the namespace of the STARTTLS feature (RFC 6120 §5).
	TLS = "urn:ietf:params:xml:ns:xmpp-tls"

	// StanzaErrors is the namespace of defined stanza error conditions.
	StanzaErrors = "urn:ietf:params:xml:ns:xmpp-stanzas"
	// StreamErrors is the namespace of defined stream error conditions.
	StreamErrors = "urn:ietf:params:xml:ns:xmpp-streams"

	// XML is the namespace of the reserved xml: attribute prefix.
	XML = "http://www.w3.org/XML/1998/namespace"
)
