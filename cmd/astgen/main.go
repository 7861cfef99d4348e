package main

import (
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// exprTypes is the closed set of expression nodes, in visitor order
var exprTypes = []string{
	"Assign: Name token.Token, Value Expr",
	"Binary: Left Expr, Operator token.Token, Right Expr",
	"Grouping: Expression Expr",
	"Literal: Value token.Literal",
	"Logical: Left Expr, Operator token.Token, Right Expr",
	"Unary: Operator token.Token, Right Expr",
	"Call: Callee Expr, Paren token.Token, Arguments []Expr",
	"Variable: Name token.Token",
}

func main() {
	output := flag.StringP("output", "o", "", "file to write, stdout when empty")
	flag.Parse()

	src, err := format.Source([]byte(generateAst("Expr", exprTypes)))
	if err != nil {
		log.Fatal(err)
	}

	if *output == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func typeName(t string) string {
	return strings.TrimSpace(strings.Split(t, ":")[0])
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by astgen; DO NOT EDIT.\n\n"
	out += "package ast\n\n"
	out += "import \"loxcore/internal/token\"\n\n"

	// Start base interface
	out += "// " + baseName + " is a node of the expression tree\n"
	out += "type " + baseName + " interface {\n"
	out += "\taccept(dispatcher)\n"
	out += "}\n\n"
	// End base interface

	// Start dispatcher interface
	out += "type dispatcher interface {\n"
	for _, t := range types {
		name := typeName(t)
		out += "\tvisit" + name + baseName + "(expr *" + name + ")\n"
	}
	out += "}\n\n"
	// End dispatcher interface

	// Start Visitor interface
	out += "// Visitor is implemented by every consumer of the expression tree\n"
	out += "type Visitor[R any] interface {\n"
	for _, t := range types {
		name := typeName(t)
		out += "\tVisit" + name + baseName + "(expr *" + name + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start variants
	out += "// Variants returns one zero node of every expression type\n"
	out += "func Variants() []" + baseName + " {\n"
	out += "\treturn []" + baseName + "{\n"
	for _, t := range types {
		out += "\t\t&" + typeName(t) + "{},\n"
	}
	out += "\t}\n"
	out += "}\n\n"
	// End variants

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	out := "type " + name + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start accept Definition
	out += "func (e *" + name + ") accept(d dispatcher) {\n"
	out += "\td.visit" + name + baseName + "(e)\n"
	out += "}\n\n"
	// End accept Definition

	// Start adapter Definition
	out += "func (a *adapter[R]) visit" + name + baseName + "(expr *" + name + ") {\n"
	out += "\tif expr == nil {\n"
	out += "\t\ta.err = malformed(\"" + name + "\")\n"
	out += "\t\treturn\n"
	out += "\t}\n"
	out += "\ta.result, a.err = a.visitor.Visit" + name + baseName + "(expr)\n"
	out += "}\n\n"
	// End adapter Definition

	return out
}
