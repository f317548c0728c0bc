// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"time"
)

// socketState is one of the three states a Socket can be in.
type socketState int

const (
	sockUnconnected socketState = iota
	sockPlain
	sockSecure
)

// utf8CharWidth maps a lead byte to the number of bytes in its UTF-8
// sequence; 0 marks a byte that can never start a valid sequence.
var utf8CharWidth = [256]byte{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Socket is a three-state value {Unconnected, Plain, Secure} offering
// unified read/write access over plaintext TCP or TLS, plus an in-place
// STARTTLS upgrade and a UTF-8-boundary-safe chunked read primitive.
type Socket struct {
	state socketState
	conn  net.Conn

	buf      []byte // unconsumed bytes from the most recent fill, start..end
	start    int
	end      int
	leftover []byte // bytes returned by ReadStr but not yet copied out via Read

	// TeeIn and TeeOut, if non-nil, receive a copy of every byte read from
	// and written to the wire respectively. Wiring one to os.Stderr (or a
	// debug *log.Logger's writer) gives a caller raw protocol tracing
	// without the socket itself depending on a logging package.
	TeeIn  io.Writer
	TeeOut io.Writer
}

const socketReadSize = 4096

// Connect establishes a plaintext TCP connection to domain:port.
func (s *Socket) Connect(domain string, port int) error {
	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", domain, port))
	if err != nil {
		return fmt.Errorf("xmpp: connect: %w", err)
	}
	s.conn = conn
	s.state = sockPlain
	return nil
}

// StartTLS upgrades the current plaintext connection in place. It panics
// if the socket is not currently Plain, per the spec's "programming error"
// contract for calling it out of sequence.
func (s *Socket) StartTLS(domain string) error {
	if s.state != sockPlain {
		panic("xmpp: starttls called with no plain socket, or TLS already negotiated")
	}
	plain := s.conn
	s.conn = nil
	s.state = sockUnconnected

	tlsConn := tls.Client(plain, &tls.Config{
		ServerName: domain,
		MinVersion: tls.VersionTLS10,
	})
	if err := tlsConn.Handshake(); err != nil {
		return fmt.Errorf("xmpp: starttls handshake: %w", err)
	}
	s.conn = tlsConn
	s.state = sockSecure
	s.buf, s.start, s.end = nil, 0, 0
	return nil
}

// Write forwards to the underlying connection. It panics if Unconnected.
func (s *Socket) Write(p []byte) (int, error) {
	if s.state == sockUnconnected {
		panic("xmpp: write with no socket yet")
	}
	if s.TeeOut != nil {
		_, _ = s.TeeOut.Write(p)
	}
	return s.conn.Write(p)
}

// Flush is a no-op placeholder matching the spec's write/flush pairing;
// net.Conn writes are unbuffered, so nothing needs flushing.
func (s *Socket) Flush() error {
	if s.state == sockUnconnected {
		panic("xmpp: flush with no socket yet")
	}
	return nil
}

// SetReadDeadline forwards to the underlying connection, used to bound the
// "wait for remote to close" loop after a stream error.
func (s *Socket) SetReadDeadline(t time.Time) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.SetReadDeadline(t)
}

// Close closes the underlying connection, if any.
func (s *Socket) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *Socket) fill() error {
	if s.buf == nil {
		s.buf = make([]byte, socketReadSize)
	}
	// Keep any partial trailing sequence left by the previous ReadStr at the
	// front of the buffer and read at least one more byte after it.
	pending := copy(s.buf, s.buf[s.start:s.end])
	n, err := s.conn.Read(s.buf[pending:])
	if n == 0 && err != nil {
		return err
	}
	s.start, s.end = 0, pending+n
	return nil
}

// ReadStr reads at least one byte from the socket and returns the maximal
// UTF-8-valid prefix of the buffered data, leaving any partial trailing
// multi-byte sequence buffered for the next call.
func (s *Socket) ReadStr() (string, error) {
	if s.state == sockUnconnected {
		panic("xmpp: read_str before socket exists")
	}
	if err := s.fill(); err != nil {
		return "", err
	}
	available := s.buf[s.start:s.end]
	length := len(available)
	last := 0
	if length >= 3 {
		last = length - 3
	}
	for last < length {
		width := int(utf8CharWidth[available[last]])
		if width == 0 {
			last++
			continue
		}
		if last+width <= length {
			last += width
		} else {
			break
		}
	}
	chunk := available[:last]
	if !isValidUTF8(chunk) {
		return "", fmt.Errorf("xmpp: stream did not contain valid UTF-8")
	}
	s.start += last
	if s.TeeIn != nil {
		_, _ = s.TeeIn.Write(chunk)
	}
	return string(chunk), nil
}

func isValidUTF8(b []byte) bool {
	for len(b) > 0 {
		width := int(utf8CharWidth[b[0]])
		switch width {
		case 0:
			return false
		case 1:
			b = b[1:]
		default:
			if len(b) < width {
				return false
			}
			for i := 1; i < width; i++ {
				if b[i]&0xC0 != 0x80 {
					return false
				}
			}
			b = b[width:]
		}
	}
	return true
}

// Read satisfies io.Reader atop ReadStr, so the same boundary-safe bytes
// that ReadStr returns are what the XML decoder actually consumes.
func (s *Socket) Read(p []byte) (int, error) {
	if len(s.leftover) == 0 {
		str, err := s.ReadStr()
		if err != nil {
			return 0, err
		}
		s.leftover = []byte(str)
	}
	n := copy(p, s.leftover)
	s.leftover = s.leftover[n:]
	return n, nil
}
