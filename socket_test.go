// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmpp

import (
	"bytes"
	"net"
	"testing"
	"time"
	"unicode/utf8"
)

// chunkedConn is a net.Conn stand-in that returns one caller-supplied chunk
// of bytes per Read call, regardless of the size of p, so a test can force
// an arbitrary split point — including mid-codepoint — between two reads.
type chunkedConn struct {
	chunks [][]byte
	out    bytes.Buffer
}

func (c *chunkedConn) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, net.ErrClosed
	}
	next := c.chunks[0]
	c.chunks = c.chunks[1:]
	return copy(p, next), nil
}

func (c *chunkedConn) Write(p []byte) (int, error)        { return c.out.Write(p) }
func (c *chunkedConn) Close() error                        { return nil }
func (c *chunkedConn) LocalAddr() net.Addr                 { return nil }
func (c *chunkedConn) RemoteAddr() net.Addr                { return nil }
func (c *chunkedConn) SetDeadline(time.Time) error          { return nil }
func (c *chunkedConn) SetReadDeadline(time.Time) error      { return nil }
func (c *chunkedConn) SetWriteDeadline(time.Time) error     { return nil }

func TestReadStrReassemblesSplitMultibyteRune(t *testing.T) {
	msg := "café ☃ snowman" // contains a 2-byte and a 3-byte rune
	raw := []byte(msg)

	// Split in the middle of the 3-byte snowman rune (0xE2 0x98 0x83).
	idx := bytes.IndexByte(raw, 0xE2)
	if idx < 0 {
		t.Fatal("test setup: expected snowman lead byte in message")
	}
	chunks := [][]byte{raw[:idx+1], raw[idx+1:]}

	sock := &Socket{state: sockPlain, conn: &chunkedConn{chunks: chunks}}

	var got bytes.Buffer
	for {
		s, err := sock.ReadStr()
		got.WriteString(s)
		if err != nil {
			break
		}
		if !utf8.ValidString(s) {
			t.Fatalf("ReadStr returned invalid UTF-8 chunk %q", s)
		}
	}
	if got.String() != msg {
		t.Fatalf("reassembled = %q, want %q", got.String(), msg)
	}
}

func TestReadStrNeverSplitsACodepointAcrossCalls(t *testing.T) {
	msg := "中文 plain \U0001F600"
	raw := []byte(msg)

	var chunks [][]byte
	for i := 0; i < len(raw); i++ {
		chunks = append(chunks, raw[i:i+1])
	}
	sock := &Socket{state: sockPlain, conn: &chunkedConn{chunks: chunks}}

	var got bytes.Buffer
	for {
		s, err := sock.ReadStr()
		if s != "" && !utf8.ValidString(s) {
			t.Fatalf("ReadStr returned invalid UTF-8 chunk %q", s)
		}
		got.WriteString(s)
		if err != nil {
			break
		}
	}
	if got.String() != msg {
		t.Fatalf("reassembled = %q, want %q", got.String(), msg)
	}
}

func TestSocketWritePanicsWhenUnconnected(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Write on an unconnected socket to panic")
		}
	}()
	(&Socket{}).Write([]byte("x"))
}

func TestSocketStartTLSPanicsWhenNotPlain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected StartTLS on an unconnected socket to panic")
		}
	}()
	(&Socket{}).StartTLS("example.net")
}

func TestSocketReadAdaptsReadStr(t *testing.T) {
	msg := "hello world"
	sock := &Socket{state: sockPlain, conn: &chunkedConn{chunks: [][]byte{[]byte(msg)}}}

	buf := make([]byte, 5)
	n, err := sock.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(buf[:n]); got != "hello" {
		t.Fatalf("first Read = %q, want %q", got, "hello")
	}
	n, err = sock.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(buf[:n]); got != " worl" {
		t.Fatalf("second Read = %q, want %q", got, " worl")
	}
}
