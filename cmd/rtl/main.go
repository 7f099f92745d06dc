package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/pawan-git-space/Pawan-Kumar-RTL/datapath"
	"github.com/pawan-git-space/Pawan-Kumar-RTL/emulator"
	"github.com/pawan-git-space/Pawan-Kumar-RTL/io"
)

func main() {
	var compile string
	var input string
	var output string
	var verbose bool
	var dump bool
	var hex bool
	var list bool
	var literal string

	flag.StringVar(&compile, "c", "", "source file to assemble and run")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump registers after the run")
	flag.BoolVar(&hex, "x", false, "Write tape output as hex")
	flag.BoolVar(&list, "l", false, "List the assembled program, do not execute")
	flag.StringVar(&literal, "s", "", "Tape input from a literal string, instead of -i")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: no source file (-c)", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &datapath.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	emu.Program, err = asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if list {
		for _, op := range emu.Program.Steps() {
			fmt.Printf("%4d: %02x  %v\n", op.LineNo, uint8(op.Instruction), op)
		}
		return
	}

	if len(literal) != 0 {
		emu.Input = &io.Rom{Data: []uint8(literal)}
	} else if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
		// Raw bytes are unreadable on an interactive terminal.
		hex = hex || term.IsTerminal(int(os.Stdout.Fd()))
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}
	emu.Tape.Hex = hex

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if dump {
		fmt.Fprint(os.Stderr, emu.Core.String())
		fmt.Fprintf(os.Stderr, "power: %d\n", emu.Power())
	}
}
