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
	"reflect"
	"testing"

	"github.com/lassandro/gohack/pkg/assembler"
)

func TestCodeTables(t *testing.T) {
	tests := []struct {
		Lookup   func(string) (string, error)
		Field    assembler.FieldType
		Mnemonic string
		Code     string
	}{
		{assembler.DestCode, assembler.FIELD_DEST, "", "000"},
		{assembler.DestCode, assembler.FIELD_DEST, "AMD", "111"},
		{assembler.CompCode, assembler.FIELD_COMP, "D|M", "1010101"},
		{assembler.CompCode, assembler.FIELD_COMP, "-1", "0111010"},
		{assembler.JumpCode, assembler.FIELD_JUMP, "", "000"},
		{assembler.JumpCode, assembler.FIELD_JUMP, "JNE", "101"},
	}

	for _, test := range tests {
		have, err := test.Lookup(test.Mnemonic)

		if err != nil {
			t.Fatal(err)
		}

		if have != test.Code {
			t.Fatalf(
				"%s code mismatch (%q)\nwant:%s\nhave:%s",
				test.Field,
				test.Mnemonic,
				test.Code,
				have,
			)
		}
	}
}

func TestCodeTablesInvalid(t *testing.T) {
	tests := []struct {
		Lookup   func(string) (string, error)
		Field    assembler.FieldType
		Mnemonic string
	}{
		{assembler.DestCode, assembler.FIELD_DEST, "Q"},
		{assembler.CompCode, assembler.FIELD_COMP, ""},
		{assembler.CompCode, assembler.FIELD_COMP, "A+D"},
		{assembler.JumpCode, assembler.FIELD_JUMP, "jmp"},
	}

	for _, test := range tests {
		_, err := test.Lookup(test.Mnemonic)

		encodingErr, ok := err.(*assembler.EncodingError)

		if !ok {
			t.Fatalf(
				"%q produced error of incorrect type"+
					"\nwant:*assembler.EncodingError\nhave:%T",
				test.Mnemonic,
				err,
			)
		}

		if encodingErr.Field != test.Field ||
			encodingErr.Mnemonic != test.Mnemonic {
			t.Fatalf(
				"Encoding error mismatch\nwant:%s %q\nhave:%s %q",
				test.Field,
				test.Mnemonic,
				encodingErr.Field,
				encodingErr.Mnemonic,
			)
		}
	}
}

func TestEncode(t *testing.T) {
	for n, want := range map[string]string{
		"0":     "0000000000000000",
		"1":     "0000000000000001",
		"21845": "0101010101010101",
		"32767": "0111111111111111",
	} {
		have, err := assembler.Encode(assembler.AddressInstruction{Symbol: n})

		if err != nil {
			t.Fatal(err)
		}

		if have != want {
			t.Fatalf("Address encoding mismatch (%s)\nwant:%s\nhave:%s", n, want, have)
		}
	}

	fails := []struct {
		Instruction assembler.Instruction
		Error       error
	}{
		{assembler.AddressInstruction{Symbol: "32768"}, &assembler.OverflowError{}},
		{assembler.AddressInstruction{Symbol: "65535"}, &assembler.OverflowError{}},
		{assembler.AddressInstruction{Symbol: "LOOP"}, &assembler.UnresolvedSymbolError{}},
		{assembler.LabelDefinition{Symbol: "LOOP"}, &assembler.NotEncodableError{}},
		{assembler.Empty{}, &assembler.NotEncodableError{}},
		{assembler.ComputationInstruction{Comp: "D", Jump: "JMPX"}, &assembler.EncodingError{}},
	}

	for _, fail := range fails {
		_, err := assembler.Encode(fail.Instruction)

		if reflect.TypeOf(err) != reflect.TypeOf(fail.Error) {
			t.Fatalf(
				"%#v produced error of incorrect type"+
					"\nwant:%T (fail.Error)\nhave:%T",
				fail.Instruction,
				fail.Error,
				err,
			)
		}
	}
}
