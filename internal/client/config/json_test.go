package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_LoadsFileValues(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	content := `{
		"server_endpoint_addr": "https://json.example.com",
		"database_dsn": "/var/lib/portal/session.db",
		"request_timeout": "3s"
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://json.example.com", c.ServerEndpointAddr)
	assert.Equal(t, "/var/lib/portal/session.db", c.DatabaseDSN)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	content := `{"database_dsn": "/tmp/only.db"}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "/tmp/only.db", c.DatabaseDSN)
	assert.Equal(t, "http://localhost:4000", c.ServerEndpointAddr, "omitted keys must keep their defaults")
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseJson_NoFlagDoesNothing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cli"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:4000", c.ServerEndpointAddr)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c) })
}
