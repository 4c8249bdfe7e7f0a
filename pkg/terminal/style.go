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


package terminal

const (
	STYLE_BOLD  = "\033[1m"
	STYLE_RED   = "\033[31m"
	STYLE_RESET = "\033[0m"
)

// Style wraps s in the given escape sequence when enabled
func Style(s string, style string, enabled bool) string {
	if !enabled {
		return s
	}

	return style + s + STYLE_RESET
}
