//go:build unit

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	assert.NotNil(t, log)

	// Must not panic.
	log.Logf("message %d", 1)
	log.Errorf("error %s", "detail")
}

func TestNewDefaultLogger(t *testing.T) {
	log := NewDefaultLogger()
	assert.NotNil(t, log)

	log.Logf("message %d", 1)
	log.Errorf("error %s", "detail")
}

func TestNewVerboseLogger(t *testing.T) {
	log := NewVerboseLogger()
	assert.NotNil(t, log)

	log.Logf("message %d", 1)
	log.Errorf("error %s", "detail")
}
