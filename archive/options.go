package archive

import (
	"go.uber.org/zap"

	"github.com/chronos-tachyon/huffmantree/internal/logging"
)

type options struct {
	alphabet Alphabet
	zLogger  *zap.Logger
	logger   *logging.Logger
}

// Option is a functional option for Compress, Decompress and Inspect.
type Option func(*options)

// WithAlphabet selects the symbol unit that Compress codes.  The default is
// Bytes.  Decompress and Inspect take the alphabet from the archive header and
// ignore this option.
func WithAlphabet(alphabet Alphabet) Option {
	return func(o *options) {
		o.alphabet = alphabet
	}
}

// WithLogger sets a logger for debug output.  The default discards it.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.zLogger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{alphabet: Bytes}
	for _, opt := range opts {
		opt(&o)
	}
	if o.zLogger == nil {
		o.logger = logging.NewNop()
	} else {
		o.logger = logging.Wrap(o.zLogger)
	}
	return o
}
