// Command punctguess replaces ASCII punctuation in titles by the Unicode
// punctuation it most likely stands for.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"punctguess/config"
	"punctguess/logging"
	"punctguess/process"
	"punctguess/processor"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Config   string `name:"config" short:"c" help:"Config file path" type:"path" default:"${config_file}"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFile  string `name:"log-file" help:"Also write logs to this file" type:"path"`

	Guess   GuessCmd   `cmd:"" help:"Guess punctuation for the given titles"`
	File    FileCmd    `cmd:"" help:"Guess punctuation for every line of .txt files"`
	Rules   RulesCmd   `cmd:"" help:"List the punctuation rules in the order they run"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// Context is handed to every command's Run.
type Context struct {
	Ctx    context.Context
	Fs     afero.Fs
	Out    io.Writer
	Proc   *processor.Processor
	Config config.Values
}

// GuessCmd guesses each argument and prints one result per line.
type GuessCmd struct {
	Markup bool     `help:"Keep wiki markup and link targets untouched"`
	Text   []string `arg:"" help:"Titles to guess"`
}

// Run prints the guessed text of every argument.
func (c *GuessCmd) Run(ctx *Context) error {
	markup := c.Markup || ctx.Config.PreserveMarkup
	fields := make([]process.Field, len(c.Text))
	for i, text := range c.Text {
		fields[i] = process.Field{Name: fmt.Sprintf("arg %d", i+1), Value: text, Markup: markup}
	}
	for _, r := range process.Fields(ctx.Proc, fields) {
		out := r.Field.Value
		if r.Changed {
			out = r.Guessed
		}
		fmt.Fprintln(ctx.Out, out)
	}
	return nil
}

// FileCmd processes an input file into an output file, or several
// input/output pairs at once.
type FileCmd struct {
	Markup bool     `help:"Keep wiki markup and link targets untouched"`
	Paths  []string `arg:"" help:"Input and output .txt files, in pairs"`
}

// Run processes the file pairs and prints a summary per input.
func (c *FileCmd) Run(ctx *Context) error {
	if len(c.Paths)%2 != 0 {
		return fmt.Errorf("expected input and output pairs, got %d paths", len(c.Paths))
	}

	jobs := make([]process.Job, 0, len(c.Paths)/2)
	for i := 0; i < len(c.Paths); i += 2 {
		jobs = append(jobs, process.Job{In: c.Paths[i], Out: c.Paths[i+1]})
	}

	markup := c.Markup || ctx.Config.PreserveMarkup
	sums, err := process.Files(ctx.Ctx, ctx.Fs, ctx.Proc, jobs, markup)
	if err != nil {
		return err
	}
	for _, s := range sums {
		fmt.Fprintf(ctx.Out, "%s: %d of %d lines changed\n", s.Path, s.Changed, s.Lines)
	}
	return nil
}

// RulesCmd prints the rule table.
type RulesCmd struct{}

// Run lists the rules in application order.
func (c *RulesCmd) Run(ctx *Context) error {
	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	for i, r := range ctx.Proc.Rules().Rules() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r.Name(), r.Pattern())
	}
	return w.Flush()
}

// VersionCmd prints the program version.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Out, "punctguess %s\n", version)
	return nil
}

// run parses args, loads config and logging, and runs the chosen command.
func run(args []string, fsys afero.Fs, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("punctguess"),
		kong.Description("Guess Unicode punctuation for titles."),
		kong.UsageOnError(),
		kong.Vars{"config_file": config.CfgFile},
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	vals, err := config.Load(fsys, cli.Config, config.BaseDefaults)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		vals.LogLevel = cli.LogLevel
	}
	if cli.LogFile != "" {
		vals.LogFile = cli.LogFile
	}
	if err := logging.Init(vals.LogLevel, vals.LogFile); err != nil {
		return err
	}
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}()
	log.Debug().Interface("config", vals).Msg("loaded config")

	return kctx.Run(&Context{
		Ctx:    context.Background(),
		Fs:     fsys,
		Out:    stdout,
		Proc:   processor.Default(),
		Config: vals,
	})
}

func main() {
	if err := run(os.Args[1:], afero.NewOsFs(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
