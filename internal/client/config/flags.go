package config

import (
	"flag"
	"os"
	"time"

	"campushub/internal/flagx"
)

// parseFlags populates CLI Config fields from command-line flags.
//
//	-a string   server base URL
//	-t int      request timeout, seconds
//	-f string   session database path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "a", config.ServerBaseURL, "server base URL")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.SessionDBPath, "f", config.SessionDBPath, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
