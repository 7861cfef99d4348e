package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"loxcore/internal/ast"
	"loxcore/internal/interp"
	"loxcore/internal/lexer"
	"loxcore/internal/parser"
	"loxcore/internal/report"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// session evaluates lines against one shared environment
type session struct {
	printAST   bool
	astPrinter ast.Printer
	interp     *interp.Interpreter
	reporter   *report.Reporter
	printer    IPrinter
	log        logrus.FieldLogger
}

func newSession(opts *options, logger logrus.FieldLogger, p IPrinter, errOut io.Writer) *session {
	env := interp.NewEnv(nil)
	interp.DefineGlobals(env)
	printDepth := opts.maxDepth
	if printDepth <= 0 {
		printDepth = -1
	}
	return &session{
		printAST:   opts.printAST,
		astPrinter: ast.Printer{MaxDepth: printDepth},
		interp: interp.New(env, interp.Config{
			MaxDepth: opts.maxDepth,
			Logger:   logger,
		}),
		reporter: report.New(errOut, opts.noColor),
		printer:  p,
		log:      logger,
	}
}

// runSource evaluates every non blank line and stops at the first failure
func (s *session) runSource(source string) int {
	for n, line := range strings.Split(source, "\n") {
		if code := s.runLine(line, n+1); code != exitOK {
			return code
		}
	}
	return exitOK
}

// runLine evaluates one expression, line is its 1-based source line
func (s *session) runLine(source string, line int) int {
	if strings.TrimSpace(source) == "" || strings.HasPrefix(strings.TrimSpace(source), "//") {
		return exitOK
	}

	tokens, scanErrs := lexer.ScanFrom(source, line)
	s.reporter.Add(scanErrs...)
	if s.reporter.PrintErrors() {
		return exitSyntax
	}

	expr, parseErrs := parser.Parse(tokens)
	s.reporter.Add(parseErrs...)
	if s.reporter.PrintErrors() {
		return exitSyntax
	}

	if s.printAST {
		out, err := s.astPrinter.Print(expr)
		if err != nil {
			s.reporter.Add(err)
			s.reporter.PrintErrors()
			return exitRuntime
		}
		s.printer.Println(out)
		return exitOK
	}

	value, err := s.interp.Interpret(expr)
	if err != nil {
		s.reporter.Add(err)
		s.reporter.PrintErrors()
		return exitRuntime
	}
	s.printer.Println(interp.Stringify(value))
	return exitOK
}

// repl keeps going after errors
func (s *session) repl(in io.Reader, prompt io.Writer) int {
	scanner := bufio.NewScanner(in)
	line := 0
	for {
		s.printer.Fprintf(prompt, "> ")
		if !scanner.Scan() {
			break
		}
		line++
		if code := s.runLine(scanner.Text(), line); code != exitOK {
			s.log.WithField("line", line).Debug("line failed")
		}
	}
	s.printer.Fprintln(prompt)
	if err := scanner.Err(); err != nil {
		s.log.WithError(err).Error("reading input")
		return exitIO
	}
	return exitOK
}
