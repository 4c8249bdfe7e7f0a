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


package assembler_test

import (
	"strconv"
	"testing"

	"github.com/lassandro/gohack/pkg/assembler"
)

func TestSymbolTableSeed(t *testing.T) {
	symbols := assembler.NewSymbolTable()

	want := map[string]uint16{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": 16384,
		"KBD":    24576,
	}

	for i := 0; i < 16; i++ {
		want["R"+strconv.Itoa(i)] = uint16(i)
	}

	for name, addr := range want {
		have, exists := symbols.Lookup(name)

		if !exists {
			t.Fatalf("Missing predefined symbol '%s'", name)
		} else if have != addr {
			t.Fatalf(
				"Predefined symbol mismatch (%s)\nwant:%d\nhave:%d",
				name,
				addr,
				have,
			)
		}

		if kind, _ := symbols.Kind(name); kind != assembler.SYMBOL_PREDEFINED {
			t.Fatalf("Predefined symbol '%s' has kind %d", name, kind)
		}
	}

	if have := symbols.Symbols(assembler.SYMBOL_PREDEFINED); len(have) != len(want) {
		t.Fatalf(
			"Predefined symbol count mismatch\nwant:%d\nhave:%d",
			len(want),
			len(have),
		)
	}

	if _, exists := symbols.Lookup("r0"); exists {
		t.Fatal("Symbol lookup is not case-sensitive")
	}
}

func TestSymbolTableVariables(t *testing.T) {
	symbols := assembler.NewSymbolTable()

	if have := symbols.AllocateVariable("x"); have != assembler.VARIABLE_BASE {
		t.Fatalf("Variable x\nwant:%d\nhave:%d", assembler.VARIABLE_BASE, have)
	}

	if have := symbols.AllocateVariable("y"); have != assembler.VARIABLE_BASE+1 {
		t.Fatalf("Variable y\nwant:%d\nhave:%d", assembler.VARIABLE_BASE+1, have)
	}

	if have := symbols.AllocateVariable("x"); have != assembler.VARIABLE_BASE {
		t.Fatalf("Variable x reuse\nwant:%d\nhave:%d", assembler.VARIABLE_BASE, have)
	}

	// Bound names are returned without advancing the counter
	if have := symbols.AllocateVariable("R5"); have != 5 {
		t.Fatalf("Variable R5\nwant:5\nhave:%d", have)
	}

	if have := symbols.AllocateVariable("z"); have != assembler.VARIABLE_BASE+2 {
		t.Fatalf("Variable z\nwant:%d\nhave:%d", assembler.VARIABLE_BASE+2, have)
	}

	variables := symbols.Symbols(assembler.SYMBOL_VARIABLE)

	if len(variables) != 3 {
		t.Fatalf("Variable count mismatch\nwant:3\nhave:%d", len(variables))
	}
}

func TestSymbolTableBind(t *testing.T) {
	symbols := assembler.NewSymbolTable()

	symbols.Bind("LOOP", 4)
	symbols.Bind("LOOP", 9)

	if have, _ := symbols.Lookup("LOOP"); have != 9 {
		t.Fatalf("Rebound label\nwant:9\nhave:%d", have)
	}

	if kind, _ := symbols.Kind("LOOP"); kind != assembler.SYMBOL_LABEL {
		t.Fatalf("Label kind mismatch\nwant:%d\nhave:%d", assembler.SYMBOL_LABEL, kind)
	}

	if have := symbols.AllocateVariable("LOOP"); have != 9 {
		t.Fatalf("Label allocated as variable\nwant:9\nhave:%d", have)
	}

	if _, exists := symbols.Lookup("missing"); exists {
		t.Fatal("Lookup bound a missing symbol")
	}
}
