package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/asmvm/asmvm/vm"
)

func main() {
	var listing bool
	var debug bool
	var verbose bool

	flag.BoolVar(&listing, "i", false, "Print parsed instructions")
	flag.BoolVar(&debug, "d", false, "Dump machine state after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected a single .asm file argument", os.Args[0])
	}

	name := flag.Arg(0)

	inf, err := os.Open(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer inf.Close()

	asm := &vm.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if listing {
		for n, inst := range prog.Instructions {
			fmt.Printf("%4d: %v\n", n, inst)
		}
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		defer logger.Sync()
	}

	m := vm.NewMachine(prog, vm.LoggerOpt(logger))

	out, ok, err := m.Run()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if debug {
		fmt.Print(m)
	}

	if ok {
		fmt.Println(out)
	} else {
		fmt.Println("(no output)")
	}
}
