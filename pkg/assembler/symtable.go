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
	"strconv"
)

// SymbolTable maps symbol names to addresses. A fresh table already holds
// the register, pointer and memory-mapped I/O names.
type SymbolTable struct {
	addrs    map[string]uint16
	kinds    map[string]SymbolKind
	variable uint16
}

func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		addrs:    make(map[string]uint16, 32),
		kinds:    make(map[string]SymbolKind, 32),
		variable: VARIABLE_BASE,
	}

	for i := uint16(0); i < 16; i++ {
		st.seed("R"+strconv.Itoa(int(i)), i)
	}

	st.seed("SP", ADDRESS_SP)
	st.seed("LCL", ADDRESS_LCL)
	st.seed("ARG", ADDRESS_ARG)
	st.seed("THIS", ADDRESS_THIS)
	st.seed("THAT", ADDRESS_THAT)
	st.seed("SCREEN", ADDRESS_SCREEN)
	st.seed("KBD", ADDRESS_KBD)

	return st
}

func (st *SymbolTable) seed(name string, addr uint16) {
	st.addrs[name] = addr
	st.kinds[name] = SYMBOL_PREDEFINED
}

// Bind maps name to addr as a label, replacing any previous binding
func (st *SymbolTable) Bind(name string, addr uint16) {
	st.addrs[name] = addr
	st.kinds[name] = SYMBOL_LABEL
}

// AllocateVariable returns the address bound to name, binding it to the next
// free variable address first if it is not bound yet.
func (st *SymbolTable) AllocateVariable(name string) uint16 {
	if addr, exists := st.addrs[name]; exists {
		return addr
	}

	addr := st.variable
	st.addrs[name] = addr
	st.kinds[name] = SYMBOL_VARIABLE
	st.variable++

	return addr
}

func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, exists := st.addrs[name]
	return addr, exists
}

func (st *SymbolTable) Kind(name string) (SymbolKind, bool) {
	kind, exists := st.kinds[name]
	return kind, exists
}

// Symbols returns a copy of every binding of the given kind
func (st *SymbolTable) Symbols(kind SymbolKind) map[string]uint16 {
	result := make(map[string]uint16)

	for name, k := range st.kinds {
		if k == kind {
			result[name] = st.addrs[name]
		}
	}

	return result
}
