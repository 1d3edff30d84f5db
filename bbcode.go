// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility validates BBCode source and renders it to HTML.
//
// Usage:
//   bbcode [command]
//
// Available Commands:
//   check       validate a BBCode source file
//   help        Help about any command
//   html        HTML output generator for BBCode source files
//
// Flags:
//   -c, --config    path to a TOML or YAML configuration file
//   -h, --help      help for bbcode
//   -v, --verbose   log debug messages
//
// Use "bbcode [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"akhil.cc/bbcode/ast"
	"akhil.cc/bbcode/gen/html"
	"akhil.cc/bbcode/internal/config"
	"akhil.cc/bbcode/internal/logger"
	"akhil.cc/bbcode/parser"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("document is not valid BBCode")

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

// readInput returns the contents and display name of the input file, or of
// standard input when args is empty.
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return nil, "", errors.New("no input file given and standard input is a terminal")
		}
		src, err := io.ReadAll(os.Stdin)
		return src, "<stdin>", err
	}
	src, err := os.ReadFile(args[0])
	return src, args[0], err
}

func newLogger(verbose bool) *logger.Logger {
	if verbose {
		return logger.NewWithLevel(os.Stderr, log.DebugLevel)
	}
	return logger.New(os.Stderr)
}

func countTags(tree ast.Tree) int {
	n := 0
	for _, node := range tree {
		ast.Walk(node, func(node ast.Node) (ast.Node, error) {
			if _, ok := node.(*ast.Tag); ok {
				n++
			}
			return node, nil
		})
	}
	return n
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "bbcode",
		Short: "validation and HTML output for BBCode source files",
		Long: `This CLI utility validates BBCode source and renders it to HTML.
Forum settings such as the base URL and permissions are read from
a TOML or YAML file given with --config.`,
		SilenceUsage: true,
	}
	var configfile string
	var verbose bool
	rootCmd.PersistentFlags().StringVarP(&configfile, "config", "c", "", "``path to a TOML or YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "``log debug messages")

	var outputfile string
	var timeout time.Duration
	var signature bool
	prefixHTML := "(HTML) "
	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML output generator for BBCode source files",
		Long: `This command validates BBCode source and converts it to HTML.
Text is escaped, smilies and bare URLs are replaced according to the
configuration, and the result is wrapped in paragraphs. If the source
is not valid, a warning is logged and it is rendered as plain text.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger(verbose)
			cfg, err := config.Load(configfile)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			l.ConfigLoaded(configfile, cfg.BaseURL, cfg.QuoteDepth)
			cat, err := cfg.Catalog()
			if err != nil {
				return prefix(prefixHTML, err)
			}
			opts, err := cfg.GenOptions(signature, cat)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			src, name, err := readInput(args)
			if err != nil {
				return prefix(prefixHTML, err)
			}

			start := time.Now()
			var body string
			tree, err := parser.ParseOptions(string(src), cfg.ParserOptions())
			if err != nil {
				l.ParseFailed(name, cat.Error(err))
				body = html.RenderFallback(string(src), opts)
			} else {
				ctx := context.Background()
				if timeout > -1 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, timeout)
					defer cancel()
				}
				b, err := html.GenContext(ctx, tree, opts).Output()
				if err != nil {
					return prefix(prefixHTML, err)
				}
				body = string(b)
			}
			if cfg.Sanitize {
				body = html.Sanitize(body)
			}

			out := os.Stdout
			if len(outputfile) != 0 {
				out, err = os.Create(outputfile)
				if err != nil {
					return prefix(prefixHTML, err)
				}
			}
			defer out.Close()
			if _, err := io.WriteString(out, body+"\n"); err != nil {
				return prefix(prefixHTML, err)
			}
			l.Rendered(name, len(body), time.Since(start))
			return nil
		},
	}
	htmlCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixHTML, err)
		}
		return nil
	})
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	htmlCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	htmlCmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the generator on large documents")
	htmlCmd.Flags().BoolVar(&signature, "signature", false, "``render with the signature image policy")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	htmlCmd.Flags().Lookup("timeout").DefValue = "0"

	prefixCheck := "(check) "
	checkCmd := &cobra.Command{
		Use:   "check [input]",
		Short: "validate a BBCode source file",
		Long: `This command validates BBCode source and prints the first
error found, using the messages of the configured locale file.
It exits with status 1 if the source is not valid.

If no input file is specified, input is read from standard input.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger(verbose)
			cfg, err := config.Load(configfile)
			if err != nil {
				return prefix(prefixCheck, err)
			}
			l.ConfigLoaded(configfile, cfg.BaseURL, cfg.QuoteDepth)
			cat, err := cfg.Catalog()
			if err != nil {
				return prefix(prefixCheck, err)
			}
			src, name, err := readInput(args)
			if err != nil {
				return prefix(prefixCheck, err)
			}
			tree, err := parser.ParseOptions(string(src), cfg.ParserOptions())
			if err != nil {
				var list parser.ErrorList
				if errors.As(err, &list) && len(list) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s\n", name, list[0].Pos, cat.Error(list[0]))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, cat.Error(err))
				}
				return prefix(prefixCheck, errInvalid)
			}
			l.Checked(name, countTags(tree))
			return nil
		},
	}
	checkCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixCheck, err)
		}
		return nil
	})

	rootCmd.AddCommand(htmlCmd, checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
