// Package xlog wires structured logging into the engine. The core never
// logs to a global logger: every operation accepts (or defaults) a
// *logrus.Entry and logs through that, mirroring the way the retrieval
// pack's sqlcode generator threads a logger through instead of reaching
// for logrus's package-level functions.
package xlog

import "github.com/sirupsen/logrus"

// Discard is a logger that drops everything, used as the default so that
// library consumers who never configure a logger see no output at all.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return logrus.NewEntry(l)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// WithFile returns a logger scoped to one file, the way every trace
// message emitted by engine.Assembler is tagged.
func WithFile(base *logrus.Entry, filename string) *logrus.Entry {
	if base == nil {
		base = Discard()
	}
	return base.WithField("file", filename)
}
