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


package assembler

import (
	"io"
)

type assembly struct {
	symbols *SymbolTable
	debug   *DebugTable
	result  []string
}

// AssembleHackSource translates Hack assembly into one 16-character binary
// string per address or computation instruction. The input is read twice,
// so it must be seekable. When debug is non-nil it is filled with line,
// label and variable information on success.
func AssembleHackSource(input io.ReadSeeker, debug *DebugTable) ([]string, error) {
	asm := assembly{symbols: NewSymbolTable()}

	if debug != nil {
		asm.debug = NewDebugTable(debug.Source)
	}

	// Pass 1:
	// - Bind labels to the address of the instruction that follows them
	if err := asm.firstPass(input); err != nil {
		return nil, err
	}

	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{err}
	}

	// Pass 2:
	// - Resolve symbols, allocating variables on first use
	// - Encode instructions
	if err := asm.secondPass(input); err != nil {
		return nil, err
	}

	if debug != nil {
		asm.debug.Labels = asm.symbols.Symbols(SYMBOL_LABEL)
		asm.debug.Variables = asm.symbols.Symbols(SYMBOL_VARIABLE)
		*debug = *asm.debug
	}

	return asm.result, nil
}

func (asm *assembly) firstPass(input io.Reader) error {
	var program uint32 = 0

	return scanSource(input, func(line string, cursor Cursor) error {
		instruction, err := parseLine(line, cursor, nil)

		if err != nil {
			return err
		}

		switch inst := instruction.(type) {
		case LabelDefinition:
			if _, exists := asm.symbols.Lookup(inst.Symbol); exists {
				return &RedeclaredLabelError{cursor, inst.Symbol}
			}

			asm.symbols.Bind(inst.Symbol, uint16(program))

		case AddressInstruction, ComputationInstruction:
			program++

			if program > PROGRAM_LIMIT {
				return &OversizedProgramError{}
			}

		case Empty:
		}

		return nil
	})
}

func (asm *assembly) secondPass(input io.Reader) error {
	return scanSource(input, func(line string, cursor Cursor) error {
		instruction, err := parseLine(line, cursor, asm.symbols)

		if err != nil {
			return err
		}

		switch instruction.(type) {
		case LabelDefinition, Empty:
			return nil

		case AddressInstruction, ComputationInstruction:
			word, err := encodeInstruction(instruction, cursor)

			if err != nil {
				return err
			}

			if asm.debug != nil {
				asm.debug.Lines[uint16(len(asm.result))] = cursor.LineByte
			}

			asm.result = append(asm.result, word)
		}

		return nil
	})
}
