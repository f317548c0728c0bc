// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// The ping command sends a single XEP-0199 ping iq to a target JID and
// reports the round-trip time of the reply, exercising IqResponse outside
// the resource-bind tracking path.
//
// For more information try running:
//
//	ping -help
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"suite.im/xmpp"
	"suite.im/xmpp/element"
	"suite.im/xmpp/jid"
	"suite.im/xmpp/stanza"
)

const (
	envAddr = "XMPP_ADDR"
	envPass = "XMPP_PASS"

	pingNamespace = "urn:xmpp:ping"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	var (
		addr = os.Getenv(envAddr)
		to   string
	)
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.StringVar(&to, "to", "", "JID to ping; defaults to the connected server")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage of %s:\n", flags.Name())
		fmt.Fprintf(flags.Output(), "\n  $%s: the JID to connect as\n  $%s: the password\n\n", envAddr, envPass)
		flags.PrintDefaults()
	}

	switch err := flags.Parse(os.Args[1:]); err {
	case flag.ErrHelp:
		return
	case nil:
	default:
		logger.Fatal(err)
	}
	if addr == "" {
		logger.Fatalf("address not specified, set $%s", envAddr)
	}

	j, err := jid.Parse(addr)
	if err != nil {
		logger.Fatalf("error parsing address %q: %v", addr, err)
	}
	if to == "" {
		to = j.Domainpart()
	}
	pass := os.Getenv(envPass)

	sess := xmpp.New(j.Localpart(), j.Domainpart(), pass)
	if err := sess.Connect(); err != nil {
		logger.Fatalf("error connecting: %v", err)
	}

	const pingID = "ping1"
	var sent time.Time

	for {
		ev := sess.Handle()
		switch ev.Kind {
		case xmpp.EventBound:
			ping := stanza.NewIq(stanza.Get, pingID)
			ping.SetTo(to)
			ping.AsElement().AppendChild(element.New("ping", pingNamespace))
			sent = time.Now()
			if err := sess.Send(ping); err != nil {
				logger.Fatalf("error sending ping: %v", err)
			}
		case xmpp.EventIqResponse:
			if ev.IqResponse.ID() != pingID {
				continue
			}
			kind, _ := ev.IqResponse.Kind()
			if kind == stanza.IqError {
				logger.Fatalf("ping failed: %s", ev.IqResponse.String())
			}
			fmt.Printf("pong from %s in %s\n", ev.IqResponse.From(), time.Since(sent))
			return
		case xmpp.EventBindError:
			logger.Fatalf("bind failed: %s", ev.BindError.String())
		case xmpp.EventStreamError:
			logger.Fatalf("stream error: %s", ev.StreamError.String())
		case xmpp.EventStreamClosed:
			logger.Fatal("stream closed before ping completed")
		case xmpp.EventIqRequest:
			ev.IqRequest.Release()
		}
	}
}
