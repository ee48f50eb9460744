package main

import (
	"flag"
	"fmt"
	"os"

	"ctrans/pkg/transpiler"
	log "github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"
)

var version = "0.1.0"

var (
	output = flag.String("o", "default", `output target.
- default: output to stdout
- <path>: output to file, eg: -o out.c`)
	depth   = flag.Int("depth", 64, "max tracked delimiter nesting depth")
	verbose = flag.Bool("v", false, "verbose logging")
)

func usage() {
	fmt.Printf("%v %v\n", "ctrans", version)
	fmt.Println()
	fmt.Println("source to source transpiler")
	fmt.Println()
	fmt.Printf("%v <input> [-o <output>] [-depth=..] [-v]\n", "ctrans")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	fmt.Printf("%v %v\n", "ctrans", version)

	log.Infof("reading input file %s", input)
	src, err := os.ReadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	var wr transpiler.Writer
	switch *output {
	case "default":
		wr = transpiler.NewFileWriter(os.Stdout)
	default:
		f, err := os.OpenFile(*output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		wr = transpiler.NewFileWriter(f)
	}

	t := transpiler.New(*depth)
	t.SetWriter(wr)
	if err := t.Run(src); err != nil {
		log.Fatal(err)
	}
}
