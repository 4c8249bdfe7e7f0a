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
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/encoding"
	"github.com/lassandro/gohack/pkg/terminal"
)

var helpvar bool
var debugvar bool
var outvar string
var formatvar string

var colorvar bool

const usage = "hack-asm [-debug] [-format text|bin] [-out outfile] filename"

func init() {
	colorvar = terminal.IsTerminal(os.Stderr.Fd())

	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.hackdb'",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.StringVar(
		&formatvar, "format", "text",
		"Selects the output format: 'text' writes one binary string per "+
			"line, 'bin' writes big-endian 16-bit words",
	)
	flag.Parse()
}

func outputExt() string {
	if formatvar == "bin" {
		return ".bin"
	}

	return ".hack"
}

func report(err error, input io.ReadSeeker) {
	tokenErr, ok := err.(assembler.TokenError)

	if !ok {
		log.Println(err)
		return
	}

	cursor := tokenErr.GetPosition()

	if _, seekErr := input.Seek(cursor.LineByte, io.SeekStart); seekErr != nil {
		log.Println(err)
		return
	}

	line, _ := bufio.NewReader(input).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	column := cursor.Column - 1

	if column < 0 || column > len(line) {
		column = 0
	}

	// Keep tabs so the underline lines up with the source
	indent := []byte(line[:column])

	for i, char := range indent {
		if char != '\t' {
			indent[i] = ' '
		}
	}

	underline := string(indent) + "^" + strings.Repeat("~", int(cursor.Size)-1)

	log.Printf(
		"%s\n%s\n%s",
		err,
		line,
		terminal.Style(underline, terminal.STYLE_RED, colorvar),
	)
}

func writeImage(result []string) error {
	var buffer bytes.Buffer

	if formatvar == "bin" {
		words := make([]uint16, len(result))

		for i, word := range result {
			value, err := encoding.DecodeBinary(word)

			if err != nil {
				return err
			}

			words[i] = value
		}

		if err := binary.Write(&buffer, binary.BigEndian, words); err != nil {
			return err
		}
	} else {
		buffer.WriteString(strings.Join(result, "\n"))
	}

	return os.WriteFile(outvar, buffer.Bytes(), 0666)
}

func writeDebugTable(debug *assembler.DebugTable) error {
	filename := filepath.Join(
		filepath.Dir(outvar),
		strings.TrimSuffix(filepath.Base(outvar), filepath.Ext(outvar))+".hackdb",
	)

	file, err := os.Create(filename)

	if err != nil {
		return err
	}

	defer file.Close()

	return gob.NewEncoder(file).Encode(debug)
}

func hack_asm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	if formatvar != "text" && formatvar != "bin" {
		log.Println(usage)
		return 1
	}

	args := flag.Args()

	var infile string
	var input io.ReadSeeker

	if stat, _ := os.Stdin.Stat(); len(args) == 0 &&
		stat != nil && stat.Mode()&os.ModeCharDevice == 0 {
		// Pipes cannot be rewound for the second pass
		source, err := io.ReadAll(os.Stdin)

		if err != nil {
			log.Println(err)
			return 1
		}

		input = bytes.NewReader(source)
		log.SetPrefix(terminal.Style("<stdin>:", terminal.STYLE_BOLD, colorvar))

		if outvar == "" {
			outvar = "out" + outputExt()
		}
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

		if stat, err := file.Stat(); err != nil {
			log.Println(err)
			return 1
		} else if stat.IsDir() {
			log.Printf("%s is not a valid Hack assembly file", filename)
			return 1
		}

		input = file
		infile = file.Name()
		log.SetPrefix(terminal.Style(filename+":", terminal.STYLE_BOLD, colorvar))

		if outvar == "" {
			outvar = strings.TrimSuffix(filename, filepath.Ext(filename)) +
				outputExt()
		}
	}

	var debug *assembler.DebugTable = nil

	if debugvar {
		debug = assembler.NewDebugTable("")

		if infile != "" {
			if source, err := filepath.Abs(infile); err == nil {
				debug.Source = source
			} else {
				log.Println(err)
			}
		}
	}

	result, err := assembler.AssembleHackSource(input, debug)

	if err != nil {
		report(err, input)
		return 1
	}

	if err := writeImage(result); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	if debugvar {
		if err := writeDebugTable(debug); err != nil {
			log.Println("Error writing symbol table")
			log.Println(err)
			return 1
		}
	}

	return 0
}

func main() {
	os.Exit(hack_asm())
}
