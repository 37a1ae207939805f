// Command rexa compiles a regex pattern and applies it line by line to
// one or more files (or stdin), in the manner of grep.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-rexa/rexa"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// config holds the parsed command-line invocation.
type config struct {
	patternFile string
	quiet       bool
	invert      bool
	debug       bool
	pattern     string
	files       []string
}

func main() {
	cfg := parseFlags(os.Args[1:])

	var logger *zap.Logger
	if cfg.debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	os.Exit(run(cfg, logger))
}

func parseFlags(args []string) config {
	flagSet := pflag.NewFlagSet("rexa", pflag.ExitOnError)
	cfg := config{}

	flagSet.StringVarP(&cfg.patternFile, "file", "f", "", "read the pattern from a file instead of the command line")
	flagSet.BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress output, only set the exit status")
	flagSet.BoolVarP(&cfg.invert, "invert", "v", false, "print lines that do not match")
	flagSet.BoolVar(&cfg.debug, "debug", false, "log the parsed AST and minimized DFA before matching")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "rexa:", err)
		os.Exit(2)
	}

	rest := flagSet.Args()
	if cfg.patternFile == "" {
		if len(rest) == 0 {
			fmt.Fprintln(os.Stderr, "usage: rexa [-f pattern-file | pattern] [file...]")
			os.Exit(2)
		}
		cfg.pattern = rest[0]
		cfg.files = rest[1:]
	} else {
		cfg.files = rest
	}

	return cfg
}

// run compiles the pattern and scans the input, returning a grep-style
// exit status: 0 if at least one line matched, 1 if none did, 2 on a
// pattern or I/O error.
func run(cfg config, logger *zap.Logger) int {
	source := cfg.pattern
	if cfg.patternFile != "" {
		data, err := os.ReadFile(cfg.patternFile)
		if err != nil {
			logger.Error("failed to read pattern file", zap.String("path", cfg.patternFile), zap.Error(err))
			return 2
		}
		source = string(data)
	}

	matcher, err := rexa.Compile(source)
	if err != nil {
		logger.Error("failed to compile pattern", zap.String("pattern", source), zap.Error(err))
		return 2
	}

	if cfg.debug {
		logger.Debug("parsed pattern", zap.String("ast", matcher.DebugAST()))
		logger.Debug("minimized DFA", zap.String("dfa", matcher.DebugDFA()))
	}

	if len(cfg.files) == 0 {
		return scan(os.Stdin, "<stdin>", matcher, cfg, logger)
	}

	matched := false
	for _, name := range cfg.files {
		f, err := os.Open(name)
		if err != nil {
			logger.Error("failed to open input file", zap.String("path", name), zap.Error(err))
			return 2
		}
		status := scan(f, name, matcher, cfg, logger)
		f.Close()
		if status == 2 {
			return 2
		}
		if status == 0 {
			matched = true
		}
	}
	if matched {
		return 0
	}
	return 1
}

// scan reads r line by line, printing (unless quiet) lines whose match
// status equals cfg.invert's negation, and returns 0 if any line
// matched, 1 otherwise.
func scan(r io.Reader, name string, matcher *rexa.Matcher, cfg config, logger *zap.Logger) int {
	scanner := bufio.NewScanner(r)
	matched := false
	for scanner.Scan() {
		line := scanner.Text()
		if matcher.Accepts(line) != cfg.invert {
			matched = true
			if !cfg.quiet {
				fmt.Println(line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("error reading input", zap.String("source", name), zap.Error(err))
		return 2
	}
	if matched {
		return 0
	}
	return 1
}
