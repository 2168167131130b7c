package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the process logger. Output goes to stdout and, when logstashAddr is
// set, to Logstash as well. The returned closer releases the Logstash socket.
func New(level, logstashAddr string) (zerolog.Logger, io.Closer) {
	return build(os.Stdout, level, logstashAddr)
}

func build(stdout io.Writer, level, logstashAddr string) (zerolog.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	writer := stdout

	if strings.TrimSpace(logstashAddr) != "" {
		if ls, err := NewLogstashWriter(logstashAddr); err == nil {
			writer = zerolog.MultiLevelWriter(stdout, ls)
			closer = ls
		}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(writer).Level(lvl).With().Timestamp().Str("service", "mindanao-travel-api").Logger()
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
