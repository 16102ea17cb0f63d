package config

import (
	"encoding/json"
	"os"
	"time"

	"campushub/internal/flagx"
	"campushub/internal/timex"
)

// JsonConfig is the JSON-file DTO for the CLI configuration. It uses
// timex.Duration so intervals parse from both "10s" strings and raw
// nanosecond integers.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDBPath  string         `json:"session_db_path"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; absent
// flags mean no JSON overlay.
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

	config.ServerBaseURL = c.ServerBaseURL
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	config.SessionDBPath = c.SessionDBPath
}
