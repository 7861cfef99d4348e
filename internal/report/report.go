// Package report collects scanner, parser and runtime errors and prints
// them for humans.
package report

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"

	"loxcore/internal/errs"
)

// Reporter stores the errors of the current run
type Reporter struct {
	out    io.Writer
	color  *color.Color
	errors []error
}

// New returns a reporter writing to out. Colors are only emitted when out
// is a terminal and noColor is false.
func New(out io.Writer, noColor bool) *Reporter {
	c := color.New()
	c.SetOutput(out)
	if noColor {
		c.Disable()
	}
	return &Reporter{
		out:   out,
		color: c,
	}
}

func (r *Reporter) Add(errors ...error) {
	for _, err := range errors {
		if err != nil {
			r.errors = append(r.errors, err)
		}
	}
}

// Valid returns true if no error was reported
func (r *Reporter) Valid() bool {
	return len(r.errors) == 0
}

// HadSyntaxError reports whether any pending error comes from scanning or parsing
func (r *Reporter) HadSyntaxError() bool {
	for _, err := range r.errors {
		if errs.Is(err, errs.SyntaxError) {
			return true
		}
	}
	return false
}

// PrintErrors prints and forgets all errors, returns true if there were any
func (r *Reporter) PrintErrors() bool {
	if r.Valid() {
		return false
	}
	for _, err := range r.errors {
		fmt.Fprint(r.out, r.Format(err))
	}
	r.errors = r.errors[:0]
	return true
}

// Format renders one error as
//
//	Error on line 1:6
//		TypeError at '+': operands must be numbers
func (r *Reporter) Format(err error) string {
	kind := r.color.Red(errs.KindOf(err).String())
	tk, ok := errs.TokenOf(err)
	if !ok {
		return fmt.Sprintf("%s\n\t%s: %s\n", r.color.Bold("Error"), kind, errs.Message(err))
	}
	where := tk.Lexeme
	if where == "" {
		where = "end"
	}
	return fmt.Sprintf(
		"%s\n\t%s at '%s': %s\n",
		r.color.Bold(fmt.Sprintf("Error on line %d:%d", tk.Line, tk.Column)),
		kind,
		where,
		errs.Message(err),
	)
}
