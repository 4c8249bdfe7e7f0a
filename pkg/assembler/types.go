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
	"fmt"
)

type FieldType uint
type SymbolKind uint

func (field FieldType) String() string {
	switch field {
	case FIELD_DEST:
		return "destination"
	case FIELD_COMP:
		return "computation"
	case FIELD_JUMP:
		return "jump"
	}

	return "<invalid>"
}

type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

// Instruction is one of AddressInstruction, ComputationInstruction,
// LabelDefinition or Empty.
type Instruction interface {
	isInstruction()
}

// @symbol
type AddressInstruction struct {
	Symbol string
}

// dest=comp;jump
type ComputationInstruction struct {
	Dest string
	Comp string
	Jump string
}

// (symbol)
type LabelDefinition struct {
	Symbol string
}

// Blank or comment-only line
type Empty struct{}

func (AddressInstruction) isInstruction()     {}
func (ComputationInstruction) isInstruction() {}
func (LabelDefinition) isInstruction()        {}
func (Empty) isInstruction()                  {}

// DebugTable describes an assembled image for tooling. Lines maps each
// instruction address to the byte offset of its source line.
type DebugTable struct {
	Source    string
	Lines     map[uint16]int64
	Labels    map[string]uint16
	Variables map[string]uint16
}

func NewDebugTable(source string) *DebugTable {
	return &DebugTable{
		Source:    source,
		Lines:     make(map[uint16]int64),
		Labels:    make(map[string]uint16),
		Variables: make(map[string]uint16),
	}
}

type TokenError interface {
	GetPosition() Cursor
}

type SyntaxError struct {
	Position Cursor
	Line     string
}

func (err *SyntaxError) GetPosition() Cursor {
	return err.Position
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Syntax error: \"%s\" could not be parsed",
		err.Position.Line,
		err.Position.Column,
		err.Line,
	)
}

type EncodingError struct {
	Position Cursor
	Field    FieldType
	Mnemonic string
}

func (err *EncodingError) GetPosition() Cursor {
	return err.Position
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid %s mnemonic '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Field,
		err.Mnemonic,
	)
}

type OverflowError struct {
	Position Cursor
	Limit    int
	Received string
}

func (err *OverflowError) GetPosition() Cursor {
	return err.Position
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Address exceeds allowed size\n\twant:%d\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Limit,
		err.Received,
	)
}

type UnresolvedSymbolError struct {
	Position Cursor
	Received string
}

func (err *UnresolvedSymbolError) GetPosition() Cursor {
	return err.Position
}

func (err *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unresolved symbol '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type RedeclaredLabelError struct {
	Position Cursor
	Received string
}

func (err *RedeclaredLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type NotEncodableError struct {
	Instruction Instruction
}

func (err *NotEncodableError) Error() string {
	return fmt.Sprintf("%T does not produce a machine word", err.Instruction)
}

type OversizedProgramError struct{}

func (err *OversizedProgramError) Error() string {
	return "Program exceeds instruction memory"
}

type IOError struct {
	Err error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("Error reading source: %v", err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}
