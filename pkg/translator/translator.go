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


package translator

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/encoding"
)

func parseOperator(ident string) CommandType {
	switch ident {
	case "add":
		return COMMAND_ADD
	case "sub":
		return COMMAND_SUB
	case "neg":
		return COMMAND_NEG
	case "eq":
		return COMMAND_EQ
	case "gt":
		return COMMAND_GT
	case "lt":
		return COMMAND_LT
	case "and":
		return COMMAND_AND
	case "or":
		return COMMAND_OR
	case "not":
		return COMMAND_NOT
	case "push":
		return COMMAND_PUSH
	}

	return COMMAND_INVALID
}

// ParseCommand parses a single VM command with comments already removed
func ParseCommand(line string) (Command, error) {
	return parseCommand(line, 0)
}

func parseCommand(line string, lineNo int) (Command, error) {
	words := strings.Fields(line)

	if len(words) == 0 {
		return Command{}, &CommandError{lineNo, line, "expected operator"}
	}

	command := Command{Type: parseOperator(words[0])}

	switch command.Type {
	case COMMAND_INVALID:
		return Command{}, &CommandError{
			lineNo, line, fmt.Sprintf("unknown operator '%s'", words[0]),
		}

	case COMMAND_PUSH:
		if len(words) != 3 {
			return Command{}, &CommandError{
				lineNo, line, "expected \"push constant <value>\"",
			}
		}

		if words[1] != SEGMENT_CONSTANT {
			return Command{}, &CommandError{
				lineNo, line, fmt.Sprintf("unsupported segment '%s'", words[1]),
			}
		}

		value, err := encoding.DecodeUint(words[2], assembler.ADDRESS_BITS)

		if err != nil {
			return Command{}, &CommandError{
				lineNo,
				line,
				fmt.Sprintf(
					"constant must be between 0 and %d", assembler.ADDRESS_LIMIT,
				),
			}
		}

		command.Constant = value

	default:
		if len(words) != 1 {
			return Command{}, &CommandError{
				lineNo,
				line,
				fmt.Sprintf("'%s' takes no arguments", words[0]),
			}
		}
	}

	return command, nil
}

// Translator expands VM commands into Hack assembly. Comparison labels are
// numbered per translator, so every file translated by the same value gets
// distinct labels.
type Translator struct {
	Name        string
	comparisons int
}

func NewTranslator(name string) *Translator {
	return &Translator{Name: name}
}

// TranslateVMSource translates a complete VM program with a new translator
func TranslateVMSource(input io.Reader, name string) ([]string, error) {
	return NewTranslator(name).Translate(input)
}

func (tr *Translator) Translate(input io.Reader) ([]string, error) {
	var result []string
	var scanner = bufio.NewScanner(input)
	var lineNo = 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if i := strings.Index(line, "//"); i != -1 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)

		if len(line) == 0 {
			continue
		}

		command, err := parseCommand(line, lineNo)

		if err != nil {
			return nil, err
		}

		result = append(result, tr.Expand(command)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, &IOError{err}
	}

	return result, nil
}

func (tr *Translator) nextLabel() string {
	var label string

	if tr.Name != "" {
		label = fmt.Sprintf("%s.CMP.%d", tr.Name, tr.comparisons)
	} else {
		label = fmt.Sprintf("CMP.%d", tr.comparisons)
	}

	tr.comparisons++
	return label
}

// Expand returns the assembly for a single command, preceded by a comment
// naming it.
func (tr *Translator) Expand(command Command) []string {
	result := []string{"// " + command.String()}

	switch command.Type {
	// *SP = constant, SP++
	case COMMAND_PUSH:
		result = append(result,
			fmt.Sprintf("@%d", command.Constant),
			"D=A",
			"@SP",
			"A=M",
			"M=D",
			"@SP",
			"M=M+1",
		)

	// SP--, *(SP-1) = *(SP-1) op *SP
	case COMMAND_ADD, COMMAND_SUB, COMMAND_AND, COMMAND_OR:
		var op string

		switch command.Type {
		case COMMAND_ADD:
			op = "M=D+M"
		case COMMAND_SUB:
			op = "M=M-D"
		case COMMAND_AND:
			op = "M=D&M"
		case COMMAND_OR:
			op = "M=D|M"
		}

		result = append(result,
			"@SP",
			"AM=M-1",
			"D=M",
			"A=A-1",
			op,
		)

	// *(SP-1) = op *(SP-1)
	case COMMAND_NEG, COMMAND_NOT:
		op := "M=-M"

		if command.Type == COMMAND_NOT {
			op = "M=!M"
		}

		result = append(result,
			"@SP",
			"A=M-1",
			op,
		)

	// SP--, *(SP-1) = *(SP-1) cmp *SP ? -1 : 0
	case COMMAND_EQ, COMMAND_GT, COMMAND_LT:
		var jump string

		switch command.Type {
		case COMMAND_EQ:
			jump = "JEQ"
		case COMMAND_GT:
			jump = "JGT"
		case COMMAND_LT:
			jump = "JLT"
		}

		label := tr.nextLabel()

		result = append(result,
			"@SP",
			"AM=M-1",
			"D=M",
			"A=A-1",
			"D=M-D",
			"M=-1",
			"@"+label,
			"D;"+jump,
			"@SP",
			"A=M-1",
			"M=0",
			"("+label+")",
		)
	}

	return result
}
