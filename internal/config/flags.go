package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// parseFlags defines and parses the client command-line flags on fs and
// returns a [StructuredConfig] populated from them. Flags that were not
// provided leave their fields at the zero value so they do not override
// other sources during merge.
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	address := new(NetAddress)
	fs.Var(address, "a", "Backend address host:port or URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Import journal database file")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "HMAC key for request signing")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Backend request timeout")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Remote sync interval")
	fs.IntVar(&cfg.Import.Concurrency, "import-concurrency", 0, "Max in-flight calls per import batch")
	fs.DurationVar(&cfg.Countdown.DefaultStep, "step", 0, "Default code rotation interval")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "Path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "Path to JSON config file (alias for -c)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Adapter.HTTPAddress = address.String()

	return cfg, nil
}

// NetAddress represents a network address in the form "host:port" or a full
// http(s) URL. It implements [flag.Value] so it can be used directly with
// [flag.Var].
type NetAddress struct {
	Host string
	Port int
	URL  string
}

// String returns the address in "host:port" form, the URL if one was set,
// or an empty string when nothing was provided.
func (a *NetAddress) String() string {
	if a.URL != "" {
		return a.URL
	}
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s and populates the address. Values starting with http:// or
// https:// are kept as a URL. Otherwise s must be "host:port" with a port
// in 1..65535; an empty host is allowed.
func (a *NetAddress) Set(s string) error {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		a.URL = s
		return nil
	}

	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return errors.New("invalid port")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Duration wraps [time.Duration] so JSON files may carry values such as
// "30s" as well as raw nanosecond integers.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}
