package config

import (
	"flag"
	"os"
	"time"

	"github.com/itnewcomer/Memento/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string      gRPC bind address (e.g. ":50061")
//	-d string      database DSN
//	-s string      JWT HMAC secret key
//	-t int         token validity, minutes
//	-l string      log level
//	-issue-token   print an access token and exit
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-issue-token"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.IssueToken, "issue-token", config.IssueToken, "print an access token and exit")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
