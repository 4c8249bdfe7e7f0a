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

const (
	// Only the low 15 bits of an address instruction carry the operand
	ADDRESS_BITS  = 15
	ADDRESS_LIMIT = (1 << ADDRESS_BITS) - 1

	// Instruction memory holds 32K words
	PROGRAM_LIMIT = 1 << 15

	// Variables are allocated upwards from the first free data word
	VARIABLE_BASE = 16
)

const (
	ADDRESS_SP     = 0
	ADDRESS_LCL    = 1
	ADDRESS_ARG    = 2
	ADDRESS_THIS   = 3
	ADDRESS_THAT   = 4
	ADDRESS_SCREEN = 0x4000
	ADDRESS_KBD    = 0x6000
)

const (
	FIELD_DEST FieldType = iota
	FIELD_COMP
	FIELD_JUMP
)

const (
	SYMBOL_PREDEFINED SymbolKind = iota
	SYMBOL_LABEL
	SYMBOL_VARIABLE
)

const (
	SIGIL_ADDRESS    = '@'
	SIGIL_LABEL_OPEN = '('
	SIGIL_LABEL_END  = ')'
	SIGIL_ASSIGN     = "="
	SIGIL_JUMP       = ";"
	SIGIL_COMMENT    = "//"
)
