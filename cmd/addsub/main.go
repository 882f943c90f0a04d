// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command addsub compiles an expression of integers, '+' and '-' into x86-64
// assembly. The program computes the expression and returns it from main.
//
//	addsub '10-3+2' > tmp.s && cc -o tmp tmp.s && ./tmp; echo $?
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/ezrec/addsub/codegen"
	"github.com/ezrec/addsub/translate"
)

var ErrUsage = errors.New(translate.From("invalid number of arguments"))

// run compiles the single expression argument to stdout.
func run(args []string, stdout io.Writer) (err error) {
	if len(args) != 2 {
		err = ErrUsage
		return
	}

	return codegen.Compile(stdout, args[1])
}

func main() {
	log.SetFlags(0)

	err := run(os.Args, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
