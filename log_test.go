package sqlin

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	require := require.New(t)

	prev := logrus.GetLevel()
	defer logrus.SetLevel(prev)

	require.NoError(SetLogLevel("debug"))
	require.Equal(logrus.DebugLevel, logrus.GetLevel())

	require.NoError(SetLogLevel("WARN"))
	require.Equal(logrus.WarnLevel, logrus.GetLevel())

	err := SetLogLevel("chatty")
	require.Error(err)
	require.True(ErrInvalidLogLevel.Is(err))
	require.Equal(logrus.WarnLevel, logrus.GetLevel())
}
