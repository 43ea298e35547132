package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/engajamento/engaja/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server
//	-d string   sqlite DSN for local storage
//	-t int      HTTP timeout in seconds
//	-s string   comma-separated extra session-invalidating statuses
//	            (e.g. "422"; 401 is always included)
//
// Only the flags owned here are parsed; everything else in os.Args is left
// for other components via flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-s"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend server")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "sqlite DSN for local storage")
	timeoutSec := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	extra := fs.String("s", "", "comma-separated extra session-invalidating HTTP statuses")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = secondsToDuration(*timeoutSec)

	if *extra != "" {
		cfg.InvalidStatuses = mergeStatuses(cfg.InvalidStatuses, parseStatusList(*extra))
	}
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}

func parseStatusList(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, code)
	}
	return out
}

func mergeStatuses(base, extra []int) []int {
	seen := make(map[int]struct{}, len(base)+len(extra))
	merged := make([]int, 0, len(base)+len(extra))
	for _, c := range append(append([]int{}, base...), extra...) {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		merged = append(merged, c)
	}
	return merged
}
