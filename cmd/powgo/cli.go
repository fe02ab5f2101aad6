package main

import (
	"fmt"
	"strconv"
	"strings"
)

// cliConfig is the concrete destination every option setter is bound to.
type cliConfig struct {
	verbose    bool
	jsonLog    bool
	exhaustive bool
	workers    int64
	progressMS int64

	positionals []string
}

// cliArg describes one named option: short/long spellings plus a typed
// setter on cliConfig. Exactly one of flag or number is set.
type cliArg struct {
	name   string
	short  string
	long   string
	flag   func(c *cliConfig)
	number func(c *cliConfig, v int64)
}

var cliArgs = []cliArg{
	{
		name: "verbose logging", short: "v", long: "verbose",
		flag: func(c *cliConfig) { c.verbose = true },
	},
	{
		name: "JSON log output", short: "j", long: "json-log",
		flag: func(c *cliConfig) { c.jsonLog = true },
	},
	{
		name: "exhaustive move rule", short: "x", long: "exhaustive",
		flag: func(c *cliConfig) { c.exhaustive = true },
	},
	{
		name: "worker goroutines (0 = auto)", short: "w", long: "workers",
		number: func(c *cliConfig, v int64) { c.workers = v },
	},
	{
		name: "progress interval in milliseconds", short: "p", long: "progress-interval",
		number: func(c *cliConfig, v int64) { c.progressMS = v },
	},
}

// errHelp is returned when the user explicitly asks for help.
var errHelp = fmt.Errorf("help requested")

// parseArgs maps named options onto a cliConfig via the descriptor table and
// collects everything else as positionals. Unknown options and missing
// option values are fatal parse errors.
func parseArgs(args []string) (*cliConfig, error) {
	cfg := &cliConfig{progressMS: 100}

	findArg := func(arg string) *cliArg {
		var spelled string
		switch {
		case strings.HasPrefix(arg, "--"):
			spelled = arg[2:]
			for i := range cliArgs {
				if cliArgs[i].long == spelled {
					return &cliArgs[i]
				}
			}
		case strings.HasPrefix(arg, "-"):
			spelled = arg[1:]
			for i := range cliArgs {
				if cliArgs[i].short == spelled {
					return &cliArgs[i]
				}
			}
		}
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if !strings.HasPrefix(arg, "-") || isNumeric(arg) {
			cfg.positionals = append(cfg.positionals, arg)
			continue
		}

		if arg == "-h" || arg == "--help" {
			return nil, errHelp
		}

		def := findArg(arg)
		if def == nil {
			return nil, fmt.Errorf("unknown parameter given: %s", arg)
		}

		if def.flag != nil {
			def.flag(cfg)
			continue
		}

		if i+1 >= len(args) {
			return nil, fmt.Errorf("missing argument for %s", arg)
		}
		i++
		def.number(cfg, permissiveInt(args[i]))
	}

	return cfg, nil
}

// isNumeric reports whether arg parses fully as a signed integer, so that
// negative positional values are not mistaken for options.
func isNumeric(arg string) bool {
	_, err := strconv.ParseInt(arg, 10, 64)
	return err == nil
}

// permissiveInt parses s as a signed integer, treating malformed text as
// zero rather than rejecting it.
func permissiveInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// runMode is the positional-argument interpretation of an invocation.
type runMode struct {
	simplified   bool
	tripletCount int
	levels       int
	minSetSize   int
	maxSetSize   int
}

// selectMode interprets the positionals: one or two select the simplified
// mode, three or more the full search mode.
func selectMode(positionals []string) (runMode, bool) {
	if len(positionals) < 1 {
		return runMode{}, false
	}

	var mode runMode
	switch {
	case len(positionals) <= 2:
		mode.simplified = true
		mode.minSetSize = int(permissiveInt(positionals[0]))
		mode.maxSetSize = mode.minSetSize
		if len(positionals) == 2 {
			mode.maxSetSize = int(permissiveInt(positionals[1]))
		}
	default:
		mode.tripletCount = int(permissiveInt(positionals[0]))
		mode.levels = int(permissiveInt(positionals[1]))
		mode.minSetSize = int(permissiveInt(positionals[2]))
		mode.maxSetSize = mode.minSetSize
		if len(positionals) >= 4 {
			mode.maxSetSize = int(permissiveInt(positionals[3]))
		}
	}

	return mode, true
}

func usage(program string) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, "Missing arguments.")
	fmt.Fprintf(&sb, "Searching  Algo Usage: %s [options] <triplet-count> <combiner-levels> <min-set-size> [max-set-size]\n", program)
	fmt.Fprintf(&sb, "Simplified Algo Usage: %s [options] <set-size> [max-set-size]\n", program)
	return sb.String()
}

func helpText(program string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s parameters:\n", program)
	for _, arg := range cliArgs {
		kind := " [value]: "
		if arg.flag != nil {
			kind = ": "
		}
		fmt.Fprintf(&sb, "   -%s or --%s%s%s\n", arg.short, arg.long, kind, arg.name)
	}
	return sb.String()
}
