// Command seq-pipe applies a TOML-configured pipeline of list
// operations to bracketed list literals, one per line of standard
// input (or per command-line argument), and prints each result.
//
// Example:
//
//	echo '[4, 3, 2, 1]' | seq-pipe -config pipeline.toml
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/alice39/own-stl/list"
)

var configPath string
var verbose bool

func init() {
	flag.StringVar(&configPath, "config", "", "path to a TOML pipeline description")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
}

func run(cfg *Config, line string) error {
	l, err := list.Parse[int64](line)
	if err != nil {
		return err
	}

	out, err := cfg.Apply(l)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func main() {
	flag.Parse()

	if isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			logrus.Fatal(err)
		}
	}

	failed := 0
	for _, line := range inputs {
		if err := run(cfg, line); err != nil {
			logrus.Errorf("%q: %s", line, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
