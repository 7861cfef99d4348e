// Package interp evaluates expression trees to runtime values.
//
// The Interpreter is an ast.Visitor producing Values. Evaluation is
// strictly left to right and stops at the first error, which is returned
// with the position of the token that caused it.
package interp

import (
	"io"

	"github.com/sirupsen/logrus"

	"loxcore/internal/ast"
	"loxcore/internal/errs"
	"loxcore/internal/token"
)

// Config tunes an Interpreter
type Config struct {
	// MaxDepth bounds the nesting of expressions evaluated at once,
	// zero or less disables the bound
	MaxDepth int
	Logger   logrus.FieldLogger
}

func DefaultConfig() Config {
	return Config{MaxDepth: ast.DefaultMaxDepth}
}

// Interpreter is not safe for concurrent use. Several interpreters may
// share one Env.
type Interpreter struct {
	env      Environment
	maxDepth int
	depth    int
	log      logrus.FieldLogger
}

func New(env Environment, config Config) *Interpreter {
	logger := config.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	return &Interpreter{
		env:      env,
		maxDepth: config.MaxDepth,
		log:      logger,
	}
}

// Env returns the environment variables are resolved in
func (i *Interpreter) Env() Environment {
	return i.env
}

// Interpret evaluates the root expression of one statement
func (i *Interpreter) Interpret(expr ast.Expr) (Value, error) {
	value, err := i.evaluate(expr)
	if err != nil {
		fields := logrus.Fields{"kind": errs.KindOf(err)}
		if tk, ok := errs.TokenOf(err); ok {
			fields["pos"] = tk.Pos()
		}
		i.log.WithFields(fields).Debug(errs.Message(err))
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	if i.maxDepth > 0 && i.depth >= i.maxDepth {
		return nil, errs.DepthExceeded.Errorf(token.Token{}, "expression nested deeper than %d levels", i.maxDepth)
	}
	i.depth++
	defer func() {
		i.depth--
	}()
	return ast.Evaluate[Value](i, expr)
}

func (i *Interpreter) VisitAssignExpr(expr *ast.Assign) (Value, error) {
	if expr.Name.Kind != token.IDENTIFIER {
		return nil, errs.MalformedTree.New(expr.Name, "assignment target must be an identifier")
	}
	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	if err := i.env.Assign(expr.Name.Lexeme, value); err != nil {
		return nil, errs.WithToken(err, expr.Name)
	}
	i.log.WithField("name", expr.Name.Lexeme).Debug("assign")
	return value, nil
}

func (i *Interpreter) VisitBinaryExpr(expr *ast.Binary) (Value, error) {
	if !expr.Operator.Kind.IsBinaryOperator() {
		return nil, errs.MalformedTree.New(expr.Operator, "not a binary operator")
	}
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.EQUAL_EQUAL:
		return Bool(Equal(left, right)), nil
	case token.BANG_EQUAL:
		return Bool(!Equal(left, right)), nil
	case token.PLUS:
		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, errs.TypeError.New(expr.Operator, "operands must be two numbers or two strings")
		}
		return l + r, nil
	}

	l, r, ok := numbers(left, right)
	if !ok {
		return nil, errs.TypeError.New(expr.Operator, "operands must be numbers")
	}
	switch expr.Operator.Kind {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		// IEEE semantics: x/0 is ±inf, 0/0 is nan
		return l / r, nil
	case token.GREATER:
		return Bool(l > r), nil
	case token.GREATER_EQUAL:
		return Bool(l >= r), nil
	case token.LESS:
		return Bool(l < r), nil
	case token.LESS_EQUAL:
		return Bool(l <= r), nil
	}
	return nil, errs.MalformedTree.New(expr.Operator, "not a binary operator")
}

func numbers(left, right Value) (Number, Number, bool) {
	l, ok := left.(Number)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(Number)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func (i *Interpreter) VisitGroupingExpr(expr *ast.Grouping) (Value, error) {
	return i.evaluate(expr.Expression)
}

func (i *Interpreter) VisitLiteralExpr(expr *ast.Literal) (Value, error) {
	return FromLiteral(expr.Value)
}

func (i *Interpreter) VisitLogicalExpr(expr *ast.Logical) (Value, error) {
	if !expr.Operator.Kind.IsLogicalOperator() {
		return nil, errs.MalformedTree.New(expr.Operator, "not a logical operator")
	}
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Kind == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else if !Truthy(left) {
		return left, nil
	}

	return i.evaluate(expr.Right)
}

func (i *Interpreter) VisitUnaryExpr(expr *ast.Unary) (Value, error) {
	if !expr.Operator.Kind.IsUnaryOperator() {
		return nil, errs.MalformedTree.New(expr.Operator, "not a unary operator")
	}
	value, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Kind == token.BANG {
		return Bool(!Truthy(value)), nil
	}
	n, ok := value.(Number)
	if !ok {
		return nil, errs.TypeError.New(expr.Operator, "operand must be a number")
	}
	return -n, nil
}

func (i *Interpreter) VisitCallExpr(expr *ast.Call) (Value, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]Value, len(expr.Arguments))
	for n, arg := range expr.Arguments {
		if arguments[n], err = i.evaluate(arg); err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(Callable)
	if !isFn {
		return nil, errs.NotCallable.Errorf(expr.Paren, "can only call functions, got %s", TypeName(callee))
	}

	if len(arguments) != fn.Arity() {
		return nil, errs.ArityMismatch.Errorf(expr.Paren, "expected %d arguments but got %d", fn.Arity(), len(arguments))
	}

	i.log.WithFields(logrus.Fields{
		"callee": fn.String(),
		"arity":  fn.Arity(),
	}).Debug("call")

	result, err := fn.Call(i, arguments)
	if err != nil {
		return nil, errs.WithToken(err, expr.Paren)
	}
	if result == nil {
		return Nil{}, nil
	}
	return result, nil
}

func (i *Interpreter) VisitVariableExpr(expr *ast.Variable) (Value, error) {
	if expr.Name.Kind != token.IDENTIFIER {
		return nil, errs.MalformedTree.New(expr.Name, "variable name must be an identifier")
	}
	value, err := i.env.Lookup(expr.Name.Lexeme)
	if err != nil {
		return nil, errs.WithToken(err, expr.Name)
	}
	if value == nil {
		return Nil{}, nil
	}
	return value, nil
}
