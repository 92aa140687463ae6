package protocol

import (
	"context"
	"sync"
	"time"

	"github.com/creachadair/jrpc2"
)

// RPCMessage is one tracked request or response.
type RPCMessage struct {
	Method   string
	Request  *jrpc2.Request
	Response *jrpc2.Response
	Time     time.Time
}

// RPCTracker records RPC traffic for tests. It implements jrpc2.RPCLogger.
type RPCTracker struct {
	mu sync.RWMutex

	messages     []RPCMessage
	subs         map[chan<- RPCMessage]struct{}
	knownMethods map[string]string
}

var _ jrpc2.RPCLogger = (*RPCTracker)(nil)

func NewRPCTracker() *RPCTracker {
	return &RPCTracker{
		subs:         make(map[chan<- RPCMessage]struct{}),
		knownMethods: make(map[string]string),
	}
}

func (t *RPCTracker) LogRequest(ctx context.Context, req *jrpc2.Request) {
	t.mu.Lock()
	t.knownMethods[req.ID()] = req.Method()
	t.mu.Unlock()

	t.track(RPCMessage{Method: req.Method(), Request: req})
}

func (t *RPCTracker) LogResponse(ctx context.Context, resp *jrpc2.Response) {
	t.mu.RLock()
	method := t.knownMethods[resp.ID()]
	t.mu.RUnlock()

	t.track(RPCMessage{Method: method, Response: resp})
}

func (t *RPCTracker) track(msg RPCMessage) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	msg.Time = time.Now()
	t.messages = append(t.messages, msg)

	for ch := range t.subs {
		select {
		case ch <- msg:
		default:
			// Skip if channel is full
		}
	}
}

// Messages returns a copy of all tracked messages.
func (t *RPCTracker) Messages() []RPCMessage {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]RPCMessage{}, t.messages...)
}

// MessagesLike returns tracked messages matching predicate.
func (t *RPCTracker) MessagesLike(predicate func(RPCMessage) bool) []RPCMessage {
	var out []RPCMessage
	for _, msg := range t.Messages() {
		if predicate(msg) {
			out = append(out, msg)
		}
	}
	return out
}

// Subscribe creates a subscription for future messages. The returned
// function unsubscribes.
func (t *RPCTracker) Subscribe(bufSize int) (<-chan RPCMessage, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan RPCMessage, bufSize)
	t.subs[ch] = struct{}{}

	return ch, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, ch)
		close(ch)
	}
}

// WaitForMessages blocks until count messages match predicate or timeout
// elapses. Reports whether the count was reached.
func (t *RPCTracker) WaitForMessages(count int, timeout time.Duration, predicate func(RPCMessage) bool) ([]RPCMessage, bool) {
	result := t.MessagesLike(predicate)
	if len(result) >= count {
		return result, true
	}

	ch, unsub := t.Subscribe(16)
	defer unsub()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case msg := <-ch:
			if predicate(msg) {
				result = append(result, msg)
			}
			if len(result) >= count {
				return result, true
			}
		case <-timer.C:
			return result, false
		}
	}
}
