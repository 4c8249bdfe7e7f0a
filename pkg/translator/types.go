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
	"fmt"
)

type CommandType uint

func (command CommandType) String() string {
	switch command {
	case COMMAND_ADD:
		return "add"
	case COMMAND_SUB:
		return "sub"
	case COMMAND_NEG:
		return "neg"
	case COMMAND_EQ:
		return "eq"
	case COMMAND_GT:
		return "gt"
	case COMMAND_LT:
		return "lt"
	case COMMAND_AND:
		return "and"
	case COMMAND_OR:
		return "or"
	case COMMAND_NOT:
		return "not"
	case COMMAND_PUSH:
		return "push"
	}

	return "<invalid>"
}

type Command struct {
	Type     CommandType
	Constant uint16
}

func (command Command) String() string {
	if command.Type == COMMAND_PUSH {
		return fmt.Sprintf("push %s %d", SEGMENT_CONSTANT, command.Constant)
	}

	return command.Type.String()
}

type CommandError struct {
	Line   int
	Text   string
	Reason string
}

func (err *CommandError) Error() string {
	return fmt.Sprintf(
		"%02d: Invalid command \"%s\": %s",
		err.Line,
		err.Text,
		err.Reason,
	)
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
