package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, log.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, log.LevelError, ParseLevel("error"))
	assert.Equal(t, log.LevelInfo, ParseLevel(""))
}

func TestSetupWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Setup(dir, "info"))
	defer func() {
		Close()
		log.SetOutput(os.Stdout)
	}()

	Success("shipment request created")

	name := filepath.Join(dir, "app_"+time.Now().Format("02-01-2006")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shipment request created")
}
