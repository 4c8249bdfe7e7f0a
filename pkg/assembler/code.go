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
	"github.com/lassandro/gohack/pkg/encoding"
)

// A    |0|value                         | Load address register
// C    |111|a|c1..c6    |d1d2d3|j1j2j3  | Compute, store, jump
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]

var destCodes = map[string]string{
	"":    "000",
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

// The leading bit selects M (a=1) over A (a=0) as the second ALU operand
var compCodes = map[string]string{
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"D+1": "0011111",
	"A+1": "0110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"D+A": "0000010",
	"D-A": "0010011",
	"A-D": "0000111",
	"D&A": "0000000",
	"D|A": "0010101",
	"M":   "1110000",
	"!M":  "1110001",
	"-M":  "1110011",
	"M+1": "1110111",
	"M-1": "1110010",
	"D+M": "1000010",
	"D-M": "1010011",
	"M-D": "1000111",
	"D&M": "1000000",
	"D|M": "1010101",
}

var jumpCodes = map[string]string{
	"":    "000",
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

func lookupCode(
	table map[string]string, field FieldType, mnemonic string, position Cursor,
) (string, error) {
	code, exists := table[mnemonic]

	if !exists {
		return "", &EncodingError{position, field, mnemonic}
	}

	return code, nil
}

func DestCode(mnemonic string) (string, error) {
	return lookupCode(destCodes, FIELD_DEST, mnemonic, Cursor{})
}

func CompCode(mnemonic string) (string, error) {
	return lookupCode(compCodes, FIELD_COMP, mnemonic, Cursor{})
}

func JumpCode(mnemonic string) (string, error) {
	return lookupCode(jumpCodes, FIELD_JUMP, mnemonic, Cursor{})
}

// Encode renders a resolved address or computation instruction as a
// 16-character string of '0' and '1'.
func Encode(instruction Instruction) (string, error) {
	return encodeInstruction(instruction, Cursor{})
}

func encodeInstruction(instruction Instruction, position Cursor) (string, error) {
	switch inst := instruction.(type) {
	case AddressInstruction:
		if !encoding.IsDecimal(inst.Symbol) {
			return "", &UnresolvedSymbolError{position, inst.Symbol}
		}

		value, err := encoding.DecodeUint(inst.Symbol, ADDRESS_BITS)

		if err != nil {
			return "", &OverflowError{position, ADDRESS_LIMIT, inst.Symbol}
		}

		return "0" + encoding.EncodeBinary(value, ADDRESS_BITS), nil

	case ComputationInstruction:
		comp, err := lookupCode(compCodes, FIELD_COMP, inst.Comp, position)

		if err != nil {
			return "", err
		}

		dest, err := lookupCode(destCodes, FIELD_DEST, inst.Dest, position)

		if err != nil {
			return "", err
		}

		jump, err := lookupCode(jumpCodes, FIELD_JUMP, inst.Jump, position)

		if err != nil {
			return "", err
		}

		return "111" + comp + dest + jump, nil

	case LabelDefinition, Empty:
		return "", &NotEncodableError{instruction}
	}

	return "", &NotEncodableError{instruction}
}
