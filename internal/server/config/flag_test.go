package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server",
		"-a", ":9090",
		"-d", "postgres://u:p@localhost:5432/portal",
		"-s", "flag-secret",
		"-t", "30",
		"-o", "https://portal.example.com",
		"-v", "bcrypt",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@localhost:5432/portal", c.DatabaseDSN)
	assert.Equal(t, "flag-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, "https://portal.example.com", c.ClientURL)
	assert.Equal(t, VerifierBcrypt, c.PasswordScheme)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":4000", c.EndpointAddr)
	assert.Equal(t, "", c.SecretKey)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, VerifierPlain, c.PasswordScheme)
}
