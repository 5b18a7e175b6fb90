// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/rvcore/cpu"
	"github.com/ezrec/rvcore/expr"
	"github.com/ezrec/rvcore/internal"
	"github.com/ezrec/rvcore/isa"
	"github.com/ezrec/rvcore/translate"
)

func main() {
	var input string
	var dumpCpu bool
	var listDefines bool
	var verbose bool

	flag.StringVar(&input, "i", "-", "File of expressions, one per line, when no arguments are given")
	flag.BoolVar(&dumpCpu, "cpu", false, "Print the reset state of the CPU")
	flag.BoolVar(&listDefines, "l", false, "List the names usable in expressions")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if verbose {
		log.Printf("%v: language %v", os.Args[0], translate.Language())
	}

	if dumpCpu {
		hart := cpu.NewCpu()
		hart.Verbose = verbose
		hart.Reset()
		if verbose {
			spew.Dump(hart)
		}
		fmt.Print(hart.String())
		return
	}

	if listDefines {
		for key, value := range internal.Sorted2(expr.Defines()) {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	dec := &isa.Decoder{Verbose: verbose}

	if flag.NArg() != 0 {
		for _, arg := range flag.Args() {
			err := decodeExpr(os.Stdout, dec, arg, verbose)
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
		}
		return
	}

	inf := os.Stdin
	if input != "-" {
		var err error
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
	}

	scanner := bufio.NewScanner(inf)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		err := decodeExpr(os.Stdout, dec, line, verbose)
		if err != nil {
			log.Fatalf("%v:%d: %v", input, lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("%v: %v", input, err)
	}
}

// decodeExpr evaluates an expression to a word, and prints its decode.
func decodeExpr(out io.Writer, dec *isa.Decoder, text string, verbose bool) (err error) {
	word, err := expr.Eval(text)
	if err != nil {
		return
	}

	inst, ok := dec.Decode(word)
	if !ok {
		_, err = fmt.Fprintf(out, "0x%08x: illegal instruction\n", word)
		return
	}

	_, err = fmt.Fprintf(out, "0x%08x: %v\n", word, inst)
	if err == nil && verbose {
		_, err = io.WriteString(out, spew.Sdump(inst))
	}

	return
}
