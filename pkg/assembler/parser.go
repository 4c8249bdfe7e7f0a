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
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lassandro/gohack/pkg/encoding"
)

// NormalizeLine strips all whitespace from line and then drops everything
// from the first comment marker onwards.
func NormalizeLine(line string) string {
	line = strings.Map(func(char rune) rune {
		if unicode.IsSpace(char) {
			return -1
		}

		return char
	}, line)

	if i := strings.Index(line, SIGIL_COMMENT); i != -1 {
		line = line[:i]
	}

	return line
}

// Parse classifies a source line. With a nil table address symbols are left
// as written; otherwise every non-literal symbol is replaced by the decimal
// address it resolves to, allocating a variable on first use.
func Parse(line string, symbols *SymbolTable) (Instruction, error) {
	return parseLine(line, statementCursor(line, Cursor{Line: 1}), symbols)
}

func parseLine(
	line string, position Cursor, symbols *SymbolTable,
) (Instruction, error) {
	statement := NormalizeLine(line)

	if len(statement) == 0 {
		return Empty{}, nil
	}

	// @symbol
	if statement[0] == SIGIL_ADDRESS {
		symbol := statement[1:]

		if len(symbol) == 0 {
			return nil, &SyntaxError{position, strings.TrimSpace(line)}
		}

		if symbols != nil && !encoding.IsDecimal(symbol) {
			addr := symbols.AllocateVariable(symbol)
			symbol = strconv.Itoa(int(addr))
		}

		return AddressInstruction{symbol}, nil
	}

	// (symbol)
	if statement[0] == SIGIL_LABEL_OPEN {
		if len(statement) < 3 || statement[len(statement)-1] != SIGIL_LABEL_END {
			return nil, &SyntaxError{position, strings.TrimSpace(line)}
		}

		return LabelDefinition{statement[1 : len(statement)-1]}, nil
	}

	// dest=comp;jump, dest=comp, comp;jump
	dest, rest, assigns := strings.Cut(statement, SIGIL_ASSIGN)

	if !assigns {
		dest, rest = "", statement
	}

	comp, jump, jumps := strings.Cut(rest, SIGIL_JUMP)

	if !assigns && !jumps {
		return nil, &SyntaxError{position, strings.TrimSpace(line)}
	}

	return ComputationInstruction{dest, comp, jump}, nil
}

// Locates the statement on a line, ignoring surrounding whitespace and any
// trailing comment.
func statementCursor(line string, cursor Cursor) Cursor {
	content := line

	if i := strings.Index(content, SIGIL_COMMENT); i != -1 {
		content = content[:i]
	}

	start := len(content) - len(strings.TrimLeftFunc(content, unicode.IsSpace))
	end := len(strings.TrimRightFunc(content, unicode.IsSpace))

	if end <= start {
		start, end = 0, len(line)
	}

	cursor.Column = start + 1
	cursor.Byte = cursor.LineByte + int64(start)
	cursor.Size = int64(end - start)

	if cursor.Size == 0 {
		cursor.Size = 1
	}

	return cursor
}

// Calls visit for every line of input with the cursor of its statement
func scanSource(input io.Reader, visit func(string, Cursor) error) error {
	reader := bufio.NewReader(input)
	cursor := Cursor{Line: 1}

	for {
		raw, err := reader.ReadString('\n')

		if len(raw) > 0 {
			line := strings.TrimRight(raw, "\r\n")

			if err := visit(line, statementCursor(line, cursor)); err != nil {
				return err
			}

			cursor.Line++
			cursor.LineByte += int64(len(raw))
		}

		if err == io.EOF {
			return nil
		} else if err != nil {
			return &IOError{err}
		}
	}
}
