package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names.
var commands = map[string]bool{
	"build":   true,
	"preview": true,
	"init":    true,
	"inspect": true,
	"version": true,
	"help":    true,
}

// isCommand reports whether arg names a subcommand (case-sensitive).
func isCommand(arg string) bool {
	return commands[arg]
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to a subcommand and returns the process exit code.
// Without a command name, the arguments are passed to build.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := "build", []string{}
	if len(args) > 1 {
		if isCommand(args[1]) {
			cmd, rest = args[1], args[2:]
		} else {
			rest = args[1:]
		}
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "preview":
		err = runPreview(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "inspect":
		err = runInspect(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2flyer %s\n", Version)
	case "help":
		return runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(env.Stderr, "Run 'md2flyer help %s' for usage.\n", cmd)
		}
	}
	return exitCodeFor(err)
}
