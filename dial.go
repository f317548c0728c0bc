// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// DialClient resolves _xmpp-client._tcp.<domain> SRV records and dials the
// first target that accepts a connection, trying targets in the priority
// and weight order returned by the resolver. If no SRV record exists (or
// none of the targets are reachable), it falls back to dialing domain:5222
// directly. It is an optional alternative to Session.Connect, whose
// direct-dial default is unaffected by its presence.
func DialClient(ctx context.Context, domain string) (net.Conn, error) {
	var d net.Dialer

	_, srvs, err := net.DefaultResolver.LookupSRV(ctx, "xmpp-client", "tcp", domain)
	if err != nil || len(srvs) == 0 {
		conn, dialErr := d.DialContext(ctx, "tcp", net.JoinHostPort(domain, "5222"))
		if dialErr != nil {
			return nil, fmt.Errorf("xmpp: dial %s: %w", domain, dialErr)
		}
		return conn, nil
	}

	var lastErr error
	for _, srv := range srvs {
		target := net.JoinHostPort(srv.Target, strconv.Itoa(int(srv.Port)))
		conn, dialErr := d.DialContext(ctx, "tcp", target)
		if dialErr != nil {
			lastErr = dialErr
			continue
		}
		return conn, nil
	}
	return nil, fmt.Errorf("xmpp: dial %s: all SRV targets failed: %w", domain, lastErr)
}

// ConnectConn adopts an already-established plaintext connection (such as
// one returned by DialClient) in place of the direct dial Connect performs,
// then opens the stream exactly as Connect does.
func (sess *Session) ConnectConn(conn net.Conn) error {
	sess.sock.conn = conn
	sess.sock.state = sockPlain
	return sess.openStream()
}
