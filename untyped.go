// Untyped is an interpreter for the untyped lambda calculus in de Bruijn
// notation. With a file argument it reduces every line of the file to
// normal form; without one it starts an interactive session.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/germanalen/lambda-interpreter/config"
	"github.com/germanalen/lambda-interpreter/run"
)

var (
	configFile = flag.String("config", "", "YAML configuration `file`")
	allParens  = flag.Bool("parens", false, "parenthesize every application operand")
	trace      = flag.Bool("trace", false, "log every reduction pass")
	prompt     = flag.String("prompt", "", "interactive prompt")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: untyped [flags] [file]\n\n")
	fmt.Fprint(os.Stderr, "untyped is an interpreter for the untyped lambda calculus in de Bruijn notation.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
	}

	conf := new(config.Config)
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			errExit(err)
		}
		conf = c
	}
	// Flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parens":
			conf.SetAllParens(*allParens)
		case "trace":
			conf.SetTrace(*trace)
		case "prompt":
			conf.SetPrompt(*prompt)
		}
	})

	level := slog.LevelInfo
	if conf.Trace() {
		level = slog.LevelDebug
	}
	conf.SetLogger(slog.New(slog.NewTextHandler(conf.ErrOutput(), &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 1 {
		name := flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			errExit(fmt.Errorf("couldn't open '%s'", name))
		}
		defer f.Close()
		if err := run.Batch(conf, f); err != nil {
			f.Close()
			os.Exit(1)
		}
		return
	}
	if err := repl(conf); err != nil {
		errExit(err)
	}
}

func repl(conf *config.Config) error {
	s, err := run.NewSession(conf)
	if err != nil {
		return err
	}
	log := conf.Logger()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := conf.History()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				log.Warn("saving history", "err", err)
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				log.Warn("saving history", "err", err)
			}
		}()
	}

	for {
		line, err := ln.Prompt(conf.Prompt())
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(conf.Output())
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.Exec(line) {
			return nil
		}
	}
}
