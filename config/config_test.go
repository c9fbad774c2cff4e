package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusplanner/config"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Chdir(s.dir)
	s.T().Setenv("HOME", s.dir)
}

func (s *ConfigSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))

	return path
}

func (s *ConfigSuite) TestDefaults() {
	l := config.NewLoader()
	cfg, err := l.Load("")
	s.Require().NoError(err)
	s.Equal("", cfg.Data)
	s.Equal(config.DefaultLogLevel, cfg.Log.Level)
	s.Equal(config.DefaultLogFormat, cfg.Log.Format)
	s.Equal("", l.Used())
}

func (s *ConfigSuite) TestDiscoveredFile() {
	s.write("campusplanner.yaml", "data: campus.yaml\nlog:\n  level: DEBUG\n  format: json\n")
	l := config.NewLoader()
	cfg, err := l.Load("")
	s.Require().NoError(err)
	s.Equal("campus.yaml", cfg.Data)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.NotEmpty(l.Used())
}

func (s *ConfigSuite) TestEnvOverridesFile() {
	path := s.write("custom.yaml", "log:\n  level: info\n")
	s.T().Setenv("CAMPUS_LOG_LEVEL", "error")
	s.T().Setenv("CAMPUS_DATA", "/srv/campus.yaml")

	cfg, err := config.NewLoader().Load(path)
	s.Require().NoError(err)
	s.Equal("error", cfg.Log.Level)
	s.Equal("/srv/campus.yaml", cfg.Data)
}

func (s *ConfigSuite) TestExplicitMissingFile() {
	_, err := config.NewLoader().Load(filepath.Join(s.dir, "nope.yaml"))
	s.ErrorIs(err, config.ErrInvalidConfig)
}

func (s *ConfigSuite) TestInvalidValues() {
	path := s.write("bad.yaml", "log:\n  format: xml\n")
	_, err := config.NewLoader().Load(path)
	s.ErrorIs(err, config.ErrInvalidConfig)

	s.T().Setenv("CAMPUS_LOG_LEVEL", "loud")
	_, err = config.NewLoader().Load("")
	s.ErrorIs(err, config.ErrInvalidConfig)
}

func (s *ConfigSuite) TestSetOverridesEverything() {
	s.T().Setenv("CAMPUS_LOG_FORMAT", "json")
	l := config.NewLoader()
	l.Viper().Set("log.format", "console")
	cfg, err := l.Load("")
	s.Require().NoError(err)
	s.Equal("console", cfg.Log.Format)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.LogConfig{Level: "info", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	logger, err = config.LogConfig{Level: "warn", Format: "console"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "WRN")
	assert.Contains(t, buf.String(), "careful")

	_, err = config.LogConfig{Level: "nope"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
