// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command addsubrun executes an addsub listing and exits with its status.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/addsub/emulator"
	"github.com/ezrec/addsub/translate"
)

// ErrArguments reports positional arguments, which are not accepted.
type ErrArguments []string

func (err ErrArguments) Error() string {
	return translate.From("unknown arguments: %v", []string(err))
}

// run executes the listing named by args, reading "-" from stdin.
func run(args []string, stdin io.Reader) (exitCode int, err error) {
	var compile string
	var expr string
	var verbose bool

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.StringVar(&compile, "c", "-", ".s file to run")
	flags.StringVar(&expr, "e", "", "Expression to check the result against")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args[1:])
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = ErrArguments(flags.Args())
		return
	}

	defer func() {
		if err != nil {
			err = fmt.Errorf("%v: %w", compile, err)
		}
	}()

	input := stdin
	if compile != "-" {
		var inf *os.File
		inf, err = os.Open(compile)
		if err != nil {
			return
		}
		defer inf.Close()
		input = inf
	}

	asm := &emulator.Assembler{Verbose: verbose}
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	exitCode, err = emu.Run()
	if err != nil {
		return
	}

	if verbose {
		log.Printf("%v", emu.Cpu)
	}

	if len(expr) != 0 {
		err = emu.Check(expr)
	}

	return
}

func main() {
	log.SetFlags(0)

	code, err := run(os.Args, os.Stdin)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	os.Exit(code)
}
