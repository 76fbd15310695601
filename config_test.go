package sqlin

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-sqlin.v0/sql/expression/incode"
)

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := LoadConfig("testdata/config.yaml")
	require.NoError(err)
	require.Equal(&Config{
		SwitchThreshold: 500,
		DenseTableLimit: 1024,
		Debug:           true,
	}, cfg)
	require.Equal(incode.Options{SwitchThreshold: 500, DenseTableLimit: 1024}, cfg.Options())

	_, err = LoadConfig("testdata/invalid.yaml")
	require.Error(err)
	require.True(ErrInvalidConfig.Is(err))

	_, err = LoadConfig("testdata/missing.yaml")
	require.Error(err)
	require.True(os.IsNotExist(err))
}

func TestReadConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := ReadConfig(strings.NewReader("debug: false\n"))
	require.NoError(err)
	require.Equal(DefaultConfig(), cfg)
	require.Equal(incode.DefaultOptions(), cfg.Options())

	cfg, err = ReadConfig(strings.NewReader(""))
	require.NoError(err)
	require.Equal(DefaultConfig(), cfg)

	_, err = ReadConfig(strings.NewReader("switch_threshold: -1\n"))
	require.Error(err)
	require.True(ErrNegativeOption.Is(err))

	_, err = ReadConfig(strings.NewReader("switch_threshold: [1, 2]\n"))
	require.Error(err)
	require.True(ErrInvalidConfig.Is(err))
}

func TestConfigEnvOverrides(t *testing.T) {
	require := require.New(t)

	require.NoError(os.Setenv(switchThresholdKey, " 10 "))
	require.NoError(os.Setenv(denseTableLimitKey, "not a number"))
	defer func() {
		os.Unsetenv(switchThresholdKey)
		os.Unsetenv(denseTableLimitKey)
	}()

	cfg, err := LoadConfig("testdata/config.yaml")
	require.NoError(err)
	require.Equal(10, cfg.SwitchThreshold)
	require.Equal(1024, cfg.DenseTableLimit)

	require.NoError(os.Setenv(denseTableLimitKey, "-2"))
	_, err = LoadConfig("testdata/config.yaml")
	require.Error(err)
	require.True(ErrNegativeOption.Is(err))
}

func TestNewEngineFromConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := LoadConfig("testdata/config.yaml")
	require.NoError(err)

	e := New(cfg)
	require.True(e.Analyzer.Debug)
	require.Equal(cfg.Options(), e.Analyzer.Options)

	e = NewDefault()
	require.Equal(incode.DefaultOptions(), e.Analyzer.Options)
}
