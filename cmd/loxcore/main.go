package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"loxcore/internal/interp"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitSyntax  = 65
	exitRuntime = 70
	exitIO      = 74
)

type stdPrinter struct {
	out io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

type options struct {
	printAST bool
	maxDepth int
	logLevel string
	noColor  bool
	eval     string
	file     string
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	flags := flag.NewFlagSet("loxcore", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: loxcore [flags] [/path/to/source.lox]")
		flags.PrintDefaults()
	}
	flags.BoolVar(&opts.printAST, "ast", false, "print the parsed tree instead of evaluating it")
	flags.IntVar(&opts.maxDepth, "max-depth", interp.DefaultConfig().MaxDepth, "maximum expression nesting during evaluation and printing, 0 disables the limit")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	flags.StringVarP(&opts.eval, "eval", "e", "", "evaluate one expression and exit")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	switch flags.NArg() {
	case 0:
	case 1:
		opts.file = flags.Arg(0)
	default:
		flags.Usage()
		return nil, fmt.Errorf("expected at most one source file, got %d", flags.NArg())
	}
	return opts, nil
}

func newLogger(out io.Writer, opts *options) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.Out = out
	logger.Level = level
	logger.Formatter = &logrus.TextFormatter{
		DisableColors:    opts.noColor,
		DisableTimestamp: true,
	}
	return logger, nil
}

func run(args []string, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := newLogger(stderr, opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	s := newSession(opts, logger, stdPrinter{out: stdout}, stderr)

	switch {
	case opts.eval != "":
		return s.runLine(opts.eval, 1)
	case opts.file != "":
		source, err := afero.ReadFile(fs, opts.file)
		if err != nil {
			logger.WithError(err).WithField("file", opts.file).Error("cannot read source")
			return exitIO
		}
		return s.runSource(string(source))
	default:
		return s.repl(stdin, stdout)
	}
}

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr))
}
