package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkarlsson/priceportal/internal/flagx"
	"github.com/dkarlsson/priceportal/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "10s" and integer nanoseconds.
// Fields are pointers so that a partial file overlays only the keys it
// actually carries; absent keys keep their defaults.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	DatabaseDSN        *string         `json:"database_dsn"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags;
// when neither is set, no JSON file is loaded. If the file cannot be read
// or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != nil {
		config.ServerEndpointAddr = *c.ServerEndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
}
