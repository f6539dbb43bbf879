// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package performance

// nullDisplay swallows all story output. Stories run flat out when nothing
// is rendered.
type nullDisplay struct{}

func (n *nullDisplay) Print(s string) {}

func (n *nullDisplay) SplitWindow(lines int) {}

func (n *nullDisplay) SelectWindow(window int) {}

func (n *nullDisplay) EraseWindow(window int) {}

func (n *nullDisplay) EraseLine() {}

func (n *nullDisplay) SetCursor(line int, column int) {}

func (n *nullDisplay) GetCursor() (int, int) {
	return 1, 1
}

func (n *nullDisplay) SetTextStyle(style int) {}

func (n *nullDisplay) SetBufferMode(buffered bool) {}

func (n *nullDisplay) ShowStatus(left string, right string) {}

func (n *nullDisplay) ScreenSize() (int, int) {
	return 80, 24
}
