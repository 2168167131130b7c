package logging

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogstashWriterDeliversLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		received <- line
	}()

	w, err := NewLogstashWriter(ln.Addr().String())
	require.NoError(t, err)
	defer w.Close()

	n, err := w.Write([]byte(`{"msg":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, len(`{"msg":"hello"}`), n)

	select {
	case line := <-received:
		assert.Equal(t, "{\"msg\":\"hello\"}\n", line)
	case <-time.After(2 * time.Second):
		t.Fatal("logstash listener received nothing")
	}
}

func TestLogstashWriterDropsWhileUnreachable(t *testing.T) {
	dials := 0
	w, err := NewLogstashWriter("127.0.0.1:1", WithRetryInterval(time.Hour))
	require.NoError(t, err)
	w.dial = func(string, string, time.Duration) (net.Conn, error) {
		dials++
		return nil, errors.New("connection refused")
	}

	for i := 0; i < 3; i++ {
		n, err := w.Write([]byte("event"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	}
	assert.Equal(t, 1, dials, "cooldown should suppress redials")
}

func TestLogstashWriterClosed(t *testing.T) {
	w, err := NewLogstashWriter("127.0.0.1:1")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	assert.Error(t, err)
}

func TestNewLogstashWriterRejectsEmptyAddr(t *testing.T) {
	_, err := NewLogstashWriter("  ")
	assert.Error(t, err)
}

func TestBuildLoggerLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := build(&buf, "warn", "")
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Str("key", "weather:1").Msg("cache producer failed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "weather:1", event["key"])
	assert.Equal(t, "mindanao-travel-api", event["service"])
}
