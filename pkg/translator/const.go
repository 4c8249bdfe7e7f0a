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

const (
	COMMAND_INVALID CommandType = iota

	// Arithmetic
	COMMAND_ADD
	COMMAND_SUB
	COMMAND_NEG

	// Comparison
	COMMAND_EQ
	COMMAND_GT
	COMMAND_LT

	// Logic
	COMMAND_AND
	COMMAND_OR
	COMMAND_NOT

	// Memory access
	COMMAND_PUSH
)

const (
	SEGMENT_CONSTANT = "constant"
)
