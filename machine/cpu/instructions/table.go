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

package instructions

// the operations of versions 3 to 5. opcodes whose meaning changed between
// versions appear more than once with disjoint version ranges
var definitions = []Definition{
	// two operand operations
	{Opcode: 0x01, Table: TwoOp, Mnemonic: "je", Branch: true, MinVersion: 1},
	{Opcode: 0x02, Table: TwoOp, Mnemonic: "jl", Branch: true, MinVersion: 1},
	{Opcode: 0x03, Table: TwoOp, Mnemonic: "jg", Branch: true, MinVersion: 1},
	{Opcode: 0x04, Table: TwoOp, Mnemonic: "dec_chk", Branch: true, MinVersion: 1},
	{Opcode: 0x05, Table: TwoOp, Mnemonic: "inc_chk", Branch: true, MinVersion: 1},
	{Opcode: 0x06, Table: TwoOp, Mnemonic: "jin", Branch: true, MinVersion: 1},
	{Opcode: 0x07, Table: TwoOp, Mnemonic: "test", Branch: true, MinVersion: 1},
	{Opcode: 0x08, Table: TwoOp, Mnemonic: "or", Store: true, MinVersion: 1},
	{Opcode: 0x09, Table: TwoOp, Mnemonic: "and", Store: true, MinVersion: 1},
	{Opcode: 0x0a, Table: TwoOp, Mnemonic: "test_attr", Branch: true, MinVersion: 1},
	{Opcode: 0x0b, Table: TwoOp, Mnemonic: "set_attr", MinVersion: 1},
	{Opcode: 0x0c, Table: TwoOp, Mnemonic: "clear_attr", MinVersion: 1},
	{Opcode: 0x0d, Table: TwoOp, Mnemonic: "store", MinVersion: 1},
	{Opcode: 0x0e, Table: TwoOp, Mnemonic: "insert_obj", MinVersion: 1},
	{Opcode: 0x0f, Table: TwoOp, Mnemonic: "loadw", Store: true, MinVersion: 1},
	{Opcode: 0x10, Table: TwoOp, Mnemonic: "loadb", Store: true, MinVersion: 1},
	{Opcode: 0x11, Table: TwoOp, Mnemonic: "get_prop", Store: true, MinVersion: 1},
	{Opcode: 0x12, Table: TwoOp, Mnemonic: "get_prop_addr", Store: true, MinVersion: 1},
	{Opcode: 0x13, Table: TwoOp, Mnemonic: "get_next_prop", Store: true, MinVersion: 1},
	{Opcode: 0x14, Table: TwoOp, Mnemonic: "add", Store: true, MinVersion: 1},
	{Opcode: 0x15, Table: TwoOp, Mnemonic: "sub", Store: true, MinVersion: 1},
	{Opcode: 0x16, Table: TwoOp, Mnemonic: "mul", Store: true, MinVersion: 1},
	{Opcode: 0x17, Table: TwoOp, Mnemonic: "div", Store: true, MinVersion: 1},
	{Opcode: 0x18, Table: TwoOp, Mnemonic: "mod", Store: true, MinVersion: 1},
	{Opcode: 0x19, Table: TwoOp, Mnemonic: "call_2s", Store: true, MinVersion: 4},
	{Opcode: 0x1a, Table: TwoOp, Mnemonic: "call_2n", MinVersion: 5},
	{Opcode: 0x1b, Table: TwoOp, Mnemonic: "set_colour", MinVersion: 5},
	{Opcode: 0x1c, Table: TwoOp, Mnemonic: "throw", MinVersion: 5},

	// one operand operations
	{Opcode: 0x00, Table: OneOp, Mnemonic: "jz", Branch: true, MinVersion: 1},
	{Opcode: 0x01, Table: OneOp, Mnemonic: "get_sibling", Store: true, Branch: true, MinVersion: 1},
	{Opcode: 0x02, Table: OneOp, Mnemonic: "get_child", Store: true, Branch: true, MinVersion: 1},
	{Opcode: 0x03, Table: OneOp, Mnemonic: "get_parent", Store: true, MinVersion: 1},
	{Opcode: 0x04, Table: OneOp, Mnemonic: "get_prop_len", Store: true, MinVersion: 1},
	{Opcode: 0x05, Table: OneOp, Mnemonic: "inc", MinVersion: 1},
	{Opcode: 0x06, Table: OneOp, Mnemonic: "dec", MinVersion: 1},
	{Opcode: 0x07, Table: OneOp, Mnemonic: "print_addr", MinVersion: 1},
	{Opcode: 0x08, Table: OneOp, Mnemonic: "call_1s", Store: true, MinVersion: 4},
	{Opcode: 0x09, Table: OneOp, Mnemonic: "remove_obj", MinVersion: 1},
	{Opcode: 0x0a, Table: OneOp, Mnemonic: "print_obj", MinVersion: 1},
	{Opcode: 0x0b, Table: OneOp, Mnemonic: "ret", MinVersion: 1},
	{Opcode: 0x0c, Table: OneOp, Mnemonic: "jump", MinVersion: 1},
	{Opcode: 0x0d, Table: OneOp, Mnemonic: "print_paddr", MinVersion: 1},
	{Opcode: 0x0e, Table: OneOp, Mnemonic: "load", Store: true, MinVersion: 1},
	{Opcode: 0x0f, Table: OneOp, Mnemonic: "not", Store: true, MinVersion: 1, MaxVersion: 4},
	{Opcode: 0x0f, Table: OneOp, Mnemonic: "call_1n", MinVersion: 5},

	// zero operand operations
	{Opcode: 0x00, Table: ZeroOp, Mnemonic: "rtrue", MinVersion: 1},
	{Opcode: 0x01, Table: ZeroOp, Mnemonic: "rfalse", MinVersion: 1},
	{Opcode: 0x02, Table: ZeroOp, Mnemonic: "print", Text: true, MinVersion: 1},
	{Opcode: 0x03, Table: ZeroOp, Mnemonic: "print_ret", Text: true, MinVersion: 1},
	{Opcode: 0x04, Table: ZeroOp, Mnemonic: "nop", MinVersion: 1},
	{Opcode: 0x05, Table: ZeroOp, Mnemonic: "save", Branch: true, MinVersion: 1, MaxVersion: 3},
	{Opcode: 0x05, Table: ZeroOp, Mnemonic: "save", Store: true, MinVersion: 4, MaxVersion: 4},
	{Opcode: 0x06, Table: ZeroOp, Mnemonic: "restore", Branch: true, MinVersion: 1, MaxVersion: 3},
	{Opcode: 0x06, Table: ZeroOp, Mnemonic: "restore", Store: true, MinVersion: 4, MaxVersion: 4},
	{Opcode: 0x07, Table: ZeroOp, Mnemonic: "restart", MinVersion: 1},
	{Opcode: 0x08, Table: ZeroOp, Mnemonic: "ret_popped", MinVersion: 1},
	{Opcode: 0x09, Table: ZeroOp, Mnemonic: "pop", MinVersion: 1, MaxVersion: 4},
	{Opcode: 0x09, Table: ZeroOp, Mnemonic: "catch", Store: true, MinVersion: 5},
	{Opcode: 0x0a, Table: ZeroOp, Mnemonic: "quit", MinVersion: 1},
	{Opcode: 0x0b, Table: ZeroOp, Mnemonic: "new_line", MinVersion: 1},
	{Opcode: 0x0c, Table: ZeroOp, Mnemonic: "show_status", MinVersion: 3, MaxVersion: 3},
	{Opcode: 0x0d, Table: ZeroOp, Mnemonic: "verify", Branch: true, MinVersion: 3},
	{Opcode: 0x0f, Table: ZeroOp, Mnemonic: "piracy", Branch: true, MinVersion: 5},

	// variable operand operations
	{Opcode: 0x00, Table: VarOp, Mnemonic: "call", Store: true, MinVersion: 1, MaxVersion: 3},
	{Opcode: 0x00, Table: VarOp, Mnemonic: "call_vs", Store: true, MinVersion: 4},
	{Opcode: 0x01, Table: VarOp, Mnemonic: "storew", MinVersion: 1},
	{Opcode: 0x02, Table: VarOp, Mnemonic: "storeb", MinVersion: 1},
	{Opcode: 0x03, Table: VarOp, Mnemonic: "put_prop", MinVersion: 1},
	{Opcode: 0x04, Table: VarOp, Mnemonic: "sread", MinVersion: 1, MaxVersion: 4},
	{Opcode: 0x04, Table: VarOp, Mnemonic: "aread", Store: true, MinVersion: 5},
	{Opcode: 0x05, Table: VarOp, Mnemonic: "print_char", MinVersion: 1},
	{Opcode: 0x06, Table: VarOp, Mnemonic: "print_num", MinVersion: 1},
	{Opcode: 0x07, Table: VarOp, Mnemonic: "random", Store: true, MinVersion: 1},
	{Opcode: 0x08, Table: VarOp, Mnemonic: "push", MinVersion: 1},
	{Opcode: 0x09, Table: VarOp, Mnemonic: "pull", MinVersion: 1},
	{Opcode: 0x0a, Table: VarOp, Mnemonic: "split_window", MinVersion: 3},
	{Opcode: 0x0b, Table: VarOp, Mnemonic: "set_window", MinVersion: 3},
	{Opcode: 0x0c, Table: VarOp, Mnemonic: "call_vs2", Store: true, DoubleTypes: true, MinVersion: 4},
	{Opcode: 0x0d, Table: VarOp, Mnemonic: "erase_window", MinVersion: 4},
	{Opcode: 0x0e, Table: VarOp, Mnemonic: "erase_line", MinVersion: 4},
	{Opcode: 0x0f, Table: VarOp, Mnemonic: "set_cursor", MinVersion: 4},
	{Opcode: 0x10, Table: VarOp, Mnemonic: "get_cursor", MinVersion: 4},
	{Opcode: 0x11, Table: VarOp, Mnemonic: "set_text_style", MinVersion: 4},
	{Opcode: 0x12, Table: VarOp, Mnemonic: "buffer_mode", MinVersion: 4},
	{Opcode: 0x13, Table: VarOp, Mnemonic: "output_stream", MinVersion: 3},
	{Opcode: 0x14, Table: VarOp, Mnemonic: "input_stream", MinVersion: 3},
	{Opcode: 0x15, Table: VarOp, Mnemonic: "sound_effect", MinVersion: 3},
	{Opcode: 0x16, Table: VarOp, Mnemonic: "read_char", Store: true, MinVersion: 4},
	{Opcode: 0x17, Table: VarOp, Mnemonic: "scan_table", Store: true, Branch: true, MinVersion: 4},
	{Opcode: 0x18, Table: VarOp, Mnemonic: "not", Store: true, MinVersion: 5},
	{Opcode: 0x19, Table: VarOp, Mnemonic: "call_vn", MinVersion: 5},
	{Opcode: 0x1a, Table: VarOp, Mnemonic: "call_vn2", DoubleTypes: true, MinVersion: 5},
	{Opcode: 0x1b, Table: VarOp, Mnemonic: "tokenise", MinVersion: 5},
	{Opcode: 0x1c, Table: VarOp, Mnemonic: "encode_text", MinVersion: 5},
	{Opcode: 0x1d, Table: VarOp, Mnemonic: "copy_table", MinVersion: 5},
	{Opcode: 0x1e, Table: VarOp, Mnemonic: "print_table", MinVersion: 5},
	{Opcode: 0x1f, Table: VarOp, Mnemonic: "check_arg_count", Branch: true, MinVersion: 5},

	// extended operations. the extended table only exists from version 5
	{Opcode: 0x00, Table: ExtOp, Mnemonic: "save", Store: true, MinVersion: 5},
	{Opcode: 0x01, Table: ExtOp, Mnemonic: "restore", Store: true, MinVersion: 5},
	{Opcode: 0x02, Table: ExtOp, Mnemonic: "log_shift", Store: true, MinVersion: 5},
	{Opcode: 0x03, Table: ExtOp, Mnemonic: "art_shift", Store: true, MinVersion: 5},
	{Opcode: 0x04, Table: ExtOp, Mnemonic: "set_font", Store: true, MinVersion: 5},
	{Opcode: 0x09, Table: ExtOp, Mnemonic: "save_undo", Store: true, MinVersion: 5},
	{Opcode: 0x0a, Table: ExtOp, Mnemonic: "restore_undo", Store: true, MinVersion: 5},
	{Opcode: 0x0b, Table: ExtOp, Mnemonic: "print_unicode", MinVersion: 5},
	{Opcode: 0x0c, Table: ExtOp, Mnemonic: "check_unicode", Store: true, MinVersion: 5},
}
