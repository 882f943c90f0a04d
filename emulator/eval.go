// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	reExpression  = regexp.MustCompile(`^[0-9+\- \t\n\v\f\r]*$`)
	reSpace       = regexp.MustCompile(`[\t\n\v\f\r]`)
	reLeadingZero = regexp.MustCompile(`\b0+([0-9])`)
)

// Evaluate computes an additive expression with Starlark arithmetic, for
// cross-checking compiled programs.
func Evaluate(expr string) (value int64, err error) {
	if !reExpression.MatchString(expr) || len(strings.TrimSpace(expr)) == 0 {
		err = ErrParseExpression(expr)
		return
	}

	// Starlark rejects control white space inside an expression, and octal
	// style leading zeros.
	src := reSpace.ReplaceAllString(expr, " ")
	src = reLeadingZero.ReplaceAllString(src, "$1")

	thread := starlark.Thread{Name: "evaluate"}
	opts := syntax.FileOptions{}
	prog := "rc=" + src + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}
