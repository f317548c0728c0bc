// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// The connect command negotiates a stream against the given JID's server
// and exits once resource binding completes (or fails), logging each
// event it observes to the debug log (enabled by -vv) along the way.
//
// For more information try running:
//
//	connect -help
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"suite.im/xmpp"
	"suite.im/xmpp/jid"
)

const (
	envAddr = "XMPP_ADDR"
	envPass = "XMPP_PASS"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	debug := log.New(ioutil.Discard, "DEBUG ", log.LstdFlags)

	var (
		addr   = os.Getenv(envAddr)
		logXML bool
	)
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage of %s:\n", flags.Name())
		fmt.Fprintf(flags.Output(), "\n  $%s: the JID to connect as\n  $%s: the password\n\n", envAddr, envPass)
		flags.PrintDefaults()
	}
	flags.BoolVar(&logXML, "vv", logXML, "turns on verbose debug and XML logging")

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
	if logXML {
		debug.SetOutput(os.Stderr)
	}

	j, err := jid.Parse(addr)
	if err != nil {
		logger.Fatalf("error parsing address %q: %v", addr, err)
	}
	pass := os.Getenv(envPass)

	sess := xmpp.New(j.Localpart(), j.Domainpart(), pass)
	sess.SetSASLErrorHook(func(condition string) {
		logger.Printf("SASL authentication failed: %s", condition)
	})
	if logXML {
		sess.Sock().TeeIn = logWriter{log.New(os.Stdout, "IN  ", log.LstdFlags)}
		sess.Sock().TeeOut = logWriter{log.New(os.Stdout, "OUT ", log.LstdFlags)}
	}

	if err := sess.Connect(); err != nil {
		logger.Fatalf("error connecting: %v", err)
	}

	for {
		ev := sess.Handle()
		switch ev.Kind {
		case xmpp.EventBound:
			debug.Printf("resource bound: %v", ev.Bound)
			logger.Println("stream ready")
			return
		case xmpp.EventBindError:
			logger.Fatalf("bind failed: %s", ev.BindError.String())
		case xmpp.EventStreamError:
			logger.Fatalf("stream error: %s", ev.StreamError.String())
		case xmpp.EventStreamClosed:
			logger.Fatal("stream closed before binding completed")
		default:
			debug.Printf("event kind %d", ev.Kind)
		}
	}
}

type logWriter struct {
	logger *log.Logger
}

func (lw logWriter) Write(p []byte) (int, error) {
	lw.logger.Printf("%s", p)
	return len(p), nil
}
