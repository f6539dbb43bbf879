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

package machine

import (
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
)

// undo states live entirely in memory. the story asks for one before every
// turn so they are kept on a bounded stack, oldest dropped first

type undoState struct {
	resumePC uint32
	dynamic  []byte
	frames   []cpu.Frame
	stack    []uint16
}

// saveUndo pushes the machine's current state onto the undo stack.
func (m *Machine) saveUndo(pc uint32) (bool, error) {
	depth := m.Env.Prefs.UndoDepth
	if depth <= 0 {
		return false, nil
	}

	st := undoState{
		resumePC: pc,
		dynamic:  m.Mem.SnapshotDynamic(),
		stack:    append([]uint16(nil), m.CPU.Stack()...),
	}

	// frames hold a reference to their locals so the copy must go one
	// level deeper
	st.frames = append([]cpu.Frame(nil), m.CPU.Frames()...)
	for i := range st.frames {
		st.frames[i].Locals = append([]uint16(nil), st.frames[i].Locals...)
	}

	m.undo = append(m.undo, st)
	if len(m.undo) > depth {
		m.undo = m.undo[1:]
	}

	return true, nil
}

// restoreUndo pops the most recent undo state and commits it.
func (m *Machine) restoreUndo() (bool, error) {
	if len(m.undo) == 0 {
		return false, nil
	}

	st := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	return true, m.commit(st.resumePC, st.dynamic, st.frames, st.stack)
}
