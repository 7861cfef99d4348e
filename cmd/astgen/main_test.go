package main

import (
	"go/format"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFileIsUpToDate(t *testing.T) {
	src, err := format.Source([]byte(generateAst("Expr", exprTypes)))
	require.NoError(t, err)

	current, err := os.ReadFile("../../internal/ast/expr.go")
	require.NoError(t, err)

	assert.Equal(t, string(current), string(src), "run go generate ./internal/ast")
}
