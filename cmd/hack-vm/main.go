// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.


package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/terminal"
	"github.com/lassandro/gohack/pkg/translator"
)

var helpvar bool
var asmvar bool
var outvar string

const usage = "hack-vm [-asm] [-out outfile] filename"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&asmvar, "asm", false,
		"Assembles the translation and writes a '.hack' image instead of "+
			"assembly source",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.Parse()
}

func hack_vm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	color := terminal.IsTerminal(os.Stderr.Fd())
	args := flag.Args()

	var name string
	var input io.Reader

	if stat, _ := os.Stdin.Stat(); len(args) == 0 &&
		stat != nil && stat.Mode()&os.ModeCharDevice == 0 {
		input = os.Stdin
		name = "out"
		log.SetPrefix(terminal.Style("<stdin>:", terminal.STYLE_BOLD, color))
	} else {
		if len(args) != 1 {
			log.Println(usage)
			return 1
		}

		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return 1
		}

		defer file.Close()

		filename := filepath.Base(file.Name())
		name = strings.TrimSuffix(filename, filepath.Ext(filename))
		input = file
		log.SetPrefix(terminal.Style(filename+":", terminal.STYLE_BOLD, color))
	}

	result, err := translator.TranslateVMSource(input, name)

	if err != nil {
		log.Println(err)
		return 1
	}

	output := strings.Join(result, "\n")

	if asmvar {
		image, err := assembler.AssembleHackSource(
			strings.NewReader(output), nil,
		)

		if err != nil {
			log.Println("Error assembling translation")
			log.Println(err)
			return 1
		}

		output = strings.Join(image, "\n")
	}

	if outvar == "" {
		if asmvar {
			outvar = name + ".hack"
		} else {
			outvar = name + ".asm"
		}
	}

	if err := os.WriteFile(outvar, []byte(output), 0666); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(hack_vm())
}
