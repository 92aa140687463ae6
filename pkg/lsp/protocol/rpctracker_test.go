package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerMessages(t *testing.T) {
	tracker := NewRPCTracker()

	tracker.track(RPCMessage{Method: "initialize"})
	tracker.track(RPCMessage{Method: "textDocument/didOpen"})
	tracker.track(RPCMessage{Method: "textDocument/completion"})

	msgs := tracker.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "initialize", msgs[0].Method)
	assert.False(t, msgs[0].Time.IsZero())

	opens := tracker.MessagesLike(func(msg RPCMessage) bool {
		return msg.Method == "textDocument/didOpen"
	})
	assert.Len(t, opens, 1)
}

func TestTrackerNilSafe(t *testing.T) {
	var tracker *RPCTracker

	tracker.track(RPCMessage{Method: "initialize"})
	assert.Nil(t, tracker.Messages())
}

func TestTrackerSubscribe(t *testing.T) {
	tracker := NewRPCTracker()

	ch, unsub := tracker.Subscribe(4)
	tracker.track(RPCMessage{Method: "shutdown"})

	select {
	case msg := <-ch:
		assert.Equal(t, "shutdown", msg.Method)
	case <-time.After(time.Second):
		t.Fatal("subscription never delivered")
	}

	unsub()
	tracker.track(RPCMessage{Method: "exit"})
	_, open := <-ch
	assert.False(t, open)
}

func TestTrackerWaitForMessages(t *testing.T) {
	tracker := NewRPCTracker()
	tracker.track(RPCMessage{Method: "initialize"})

	isInit := func(msg RPCMessage) bool { return msg.Method == "initialize" }

	msgs, ok := tracker.WaitForMessages(1, time.Second, isInit)
	require.True(t, ok)
	assert.Len(t, msgs, 1)

	go func() {
		time.Sleep(10 * time.Millisecond)
		tracker.track(RPCMessage{Method: "initialize"})
	}()

	msgs, ok = tracker.WaitForMessages(2, 2*time.Second, isInit)
	require.True(t, ok)
	assert.Len(t, msgs, 2)

	_, ok = tracker.WaitForMessages(1, 50*time.Millisecond, func(msg RPCMessage) bool {
		return msg.Method == "never"
	})
	assert.False(t, ok)
}
