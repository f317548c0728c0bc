// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package sasl

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

type scramState int

const (
	scramInitial scramState = iota
	scramWaitFirst
	scramWaitFinal
	scramFinished
)

// ScramSHA1 implements SCRAM-SHA-1 (RFC 5802) without channel binding.
type ScramSHA1 struct {
	Authzid string
	Authcid string
	Passwd  string

	state                  scramState
	cnonce                 string
	clientFirstMessageBare string
	serverSignature        []byte
}

// Name returns "SCRAM-SHA-1".
func (*ScramSHA1) Name() string { return "SCRAM-SHA-1" }

func gs2Header(authzid string) string {
	if authzid != "" {
		return "n,a=" + authzid + ","
	}
	return "n,,"
}

func genNonce() (string, error) {
	raw := make([]byte, 64)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("sasl: scram: generating nonce: %w", err)
	}
	const lo, hi = '!', '~'
	for i, c := range raw {
		c = c%(hi-lo) + lo
		if c == ',' {
			c = '~'
		}
		raw[i] = c
	}
	return string(raw), nil
}

// Initial produces the SCRAM client-first-message.
func (s *ScramSHA1) Initial() ([]byte, error) {
	cnonce, err := genNonce()
	if err != nil {
		return nil, err
	}
	s.cnonce = cnonce
	s.clientFirstMessageBare = "n=" + s.Authcid + ",r=" + cnonce
	s.state = scramWaitFirst
	return []byte(gs2Header(s.Authzid) + s.clientFirstMessageBare), nil
}

// Continuation advances the handshake per the current state.
func (s *ScramSHA1) Continuation(data []byte) ([]byte, error) {
	switch s.state {
	case scramInitial:
		return s.Initial()
	case scramWaitFirst:
		return s.handleServerFirst(data)
	case scramWaitFinal:
		return s.handleServerFinal(data)
	default: // scramFinished
		return nil, nil
	}
}

func parseServerFirst(data string) (nonce string, salt []byte, iter int, err error) {
	var haveNonce, haveSalt, haveIter bool
	for _, sub := range strings.Split(data, ",") {
		switch {
		case strings.HasPrefix(sub, "r="):
			nonce, haveNonce = sub[2:], true
		case strings.HasPrefix(sub, "s="):
			salt, err = base64.StdEncoding.DecodeString(sub[2:])
			if err != nil {
				return "", nil, 0, errors.New("sasl: scram: invalid base64 encoding for salt")
			}
			haveSalt = true
		case strings.HasPrefix(sub, "i="):
			iter, err = strconv.Atoi(sub[2:])
			if err != nil {
				return "", nil, 0, errors.New("sasl: scram: iteration count is not a number")
			}
			haveIter = true
		case strings.HasPrefix(sub, "m="):
			return "", nil, 0, errors.New("sasl: scram: unsupported mandatory extension found")
		}
	}
	if !haveNonce {
		return "", nil, 0, errors.New("sasl: scram: no nonce found")
	}
	if !haveSalt {
		return "", nil, 0, errors.New("sasl: scram: no salt found")
	}
	if !haveIter {
		return "", nil, 0, errors.New("sasl: scram: no iteration count found")
	}
	return nonce, salt, iter, nil
}

func hmacSHA1(key, data []byte) []byte {
	mac := hmac.New(sha1.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func (s *ScramSHA1) handleServerFirst(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("sasl: scram: server sent non-UTF-8 data")
	}
	str := string(data)
	nonce, salt, iter, err := parseServerFirst(str)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(nonce, s.cnonce) {
		return nil, errors.New("sasl: scram: server replied with invalid nonce")
	}

	gs2b64 := base64.StdEncoding.EncodeToString([]byte(gs2Header(s.Authzid)))
	clientFinalWithoutProof := "c=" + gs2b64 + ",r=" + nonce

	saltedPassword := pbkdf2.Key([]byte(s.Passwd), salt, iter, 20, sha1.New)

	authMessage := s.clientFirstMessageBare + "," + str + "," + clientFinalWithoutProof

	clientKey := hmacSHA1(saltedPassword, []byte("Client Key"))
	storedKeySum := sha1.Sum(clientKey)
	storedKey := storedKeySum[:]
	clientSignature := hmacSHA1(storedKey, []byte(authMessage))
	serverKey := hmacSHA1(saltedPassword, []byte("Server Key"))
	serverSignature := hmacSHA1(serverKey, []byte(authMessage))

	clientProof := make([]byte, len(clientKey))
	for i := range clientKey {
		clientProof[i] = clientKey[i] ^ clientSignature[i]
	}

	s.serverSignature = serverSignature
	s.state = scramWaitFinal

	result := clientFinalWithoutProof + ",p=" + base64.StdEncoding.EncodeToString(clientProof)
	return []byte(result), nil
}

func (s *ScramSHA1) handleServerFinal(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("sasl: scram: server sent non-UTF-8 data")
	}
	str := string(data)
	if !strings.HasPrefix(str, "v=") {
		return nil, errors.New("sasl: scram: server didn't send a verifier")
	}
	verifier, err := base64.StdEncoding.DecodeString(str[2:])
	if err != nil {
		return nil, errors.New("sasl: scram: server sent verifier with invalid base64 encoding")
	}
	if subtle.ConstantTimeCompare(s.serverSignature, verifier) != 1 {
		return nil, errors.New("sasl: scram: server sent invalid verifier")
	}
	s.state = scramFinished
	s.serverSignature = nil
	return nil, nil
}
