// Copyright 2026 The suite.im/xmpp Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// The echo command listens on the given JID and replies to chat messages
// with their own body, exactly as mellium's echobot example does.
//
// For more information try running:
//
//	echo -help
package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"

	"suite.im/xmpp"
	"suite.im/xmpp/jid"
	"suite.im/xmpp/stanza"
)

const (
	envAddr = "XMPP_ADDR"
	envPass = "XMPP_PASS"
)

type logWriter struct {
	logger *log.Logger
}

func (lw logWriter) Write(p []byte) (int, error) {
	lw.logger.Printf("%s", p)
	return len(p), nil
}

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	debug := log.New(ioutil.Discard, "DEBUG ", log.LstdFlags)

	var (
		addr    = os.Getenv(envAddr)
		verbose bool
		logXML  bool
		useSRV  bool
	)
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage of %s:\n", flags.Name())
		fmt.Fprintf(flags.Output(), "\n  $%s: the JID which will be used to listen for messages to echo\n  $%s: the password\n\n", envAddr, envPass)
		flags.PrintDefaults()
	}
	flags.BoolVar(&verbose, "v", verbose, "turns on verbose debug logging")
	flags.BoolVar(&logXML, "vv", logXML, "turns on verbose debug and XML logging")
	flags.BoolVar(&useSRV, "srv", useSRV, "resolve _xmpp-client._tcp SRV records instead of dialing the domain directly")

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
	if verbose || logXML {
		debug.SetOutput(os.Stderr)
	}

	pass := os.Getenv(envPass)
	if pass == "" {
		debug.Printf("the environment variable $%s is empty", envPass)
	}

	j, err := jid.Parse(addr)
	if err != nil {
		logger.Fatalf("error parsing address %q: %v", addr, err)
	}

	sess := xmpp.New(j.Localpart(), j.Domainpart(), pass)
	sess.SetSASLErrorHook(func(condition string) {
		logger.Printf("SASL authentication failed: %s", condition)
	})
	if logXML {
		sess.Sock().TeeIn = logWriter{log.New(os.Stdout, "IN  ", log.LstdFlags)}
		sess.Sock().TeeOut = logWriter{log.New(os.Stdout, "OUT ", log.LstdFlags)}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		cancel()
	}()

	if useSRV {
		conn, err := xmpp.DialClient(ctx, j.Domainpart())
		if err != nil {
			logger.Fatalf("error dialing: %v", err)
		}
		if err := sess.ConnectConn(conn); err != nil {
			logger.Fatalf("error opening stream: %v", err)
		}
	} else if err := sess.Connect(); err != nil {
		logger.Fatalf("error connecting: %v", err)
	}

	if err := run(ctx, sess, logger, debug); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, sess *xmpp.Session, logger, debug *log.Logger) error {
	go func() {
		<-ctx.Done()
		logger.Println("closing session…")
	}()

	bound := false
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ev := sess.Handle()
		switch ev.Kind {
		case xmpp.EventBound:
			bound = true
			if err := sess.Send(stanza.NewPresence(stanza.Available, "")); err != nil {
				return fmt.Errorf("error sending initial presence: %w", err)
			}
			debug.Printf("bound as %v, presence sent", ev.Bound)
		case xmpp.EventBindError:
			return fmt.Errorf("bind failed: %s", ev.BindError.String())
		case xmpp.EventStreamError:
			return fmt.Errorf("stream error: %s", ev.StreamError.String())
		case xmpp.EventStreamClosed:
			return nil
		case xmpp.EventMessage:
			if !bound {
				continue
			}
			handleMessage(sess, ev.Message, logger, debug)
		case xmpp.EventIqRequest:
			ev.IqRequest.Release()
		}
	}
}

func handleMessage(sess *xmpp.Session, msg *stanza.Message, logger, debug *log.Logger) {
	kind, _ := msg.Kind()
	body := msg.Body()
	if body == "" || kind != stanza.Chat {
		return
	}

	reply := stanza.NewMessage(stanza.Chat, "")
	reply.SetTo(msg.From())
	reply.SetBody(body)

	debug.Printf("replying to message %q from %s with body %q", msg.ID(), reply.To(), body)
	if err := sess.Send(reply); err != nil {
		logger.Printf("error responding to message %q: %v", msg.ID(), err)
	}
}
