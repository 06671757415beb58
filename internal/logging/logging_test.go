package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInfo(t *testing.T) {
	t.Setenv(LevelEnv, "")
	log := New("propdesk", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewHonorsLevelEnv(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	log := New("propdesk", &bytes.Buffer{})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	t.Setenv(LevelEnv, "chatty")
	log := New("propdesk", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestAppNamePrefix(t *testing.T) {
	t.Setenv(LevelEnv, "")
	var buf bytes.Buffer
	log := New("propdesk", &buf)

	log.Info("store opened")
	assert.Contains(t, buf.String(), "[propdesk] store opened")
}
