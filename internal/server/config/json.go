package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/webauth/internal/flagx"
	"github.com/dmitrijs2005/webauth/internal/timex"
)

// JsonConfig is the DTO for reading a JSON configuration file. It uses
// timex.Duration for interval fields, which allows parsing both string
// values such as "1h" and integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	SecretKey          string         `json:"secret_key"`
	BcryptCost         int            `json:"bcrypt_cost"`
	TokenValidity      timex.Duration `json:"token_validity"`
	CookieMaxAge       timex.Duration `json:"cookie_max_age"`
	CORSAllowedOrigins string         `json:"cors_allowed_origins"`
	GinMode            string         `json:"gin_mode"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. A file that cannot be read or
// parsed is a startup defect and panics. Zero-valued JSON fields leave
// the current Config values untouched.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	}
	if c.CookieMaxAge.Duration != 0 {
		config.CookieMaxAge = time.Duration(c.CookieMaxAge.Duration)
	}
	if c.CORSAllowedOrigins != "" {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.GinMode != "" {
		config.GinMode = c.GinMode
	}
}
