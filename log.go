package sqlin

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidLogLevel is returned when the log level name is not known.
var ErrInvalidLogLevel = errors.NewKind("invalid log level %q")

// SetLogLevel sets the level of the standard logger, which is used by the
// analyzer and by contexts created without a logger of their own.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return ErrInvalidLogLevel.Wrap(err, level)
	}

	logrus.SetLevel(lvl)
	return nil
}
