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

package dictionary

import "strings"

// Tokenize splits an input line into words. Spaces separate words and are
// discarded. The story's separator characters also separate words but each
// one becomes a token of its own.
func (dct *Dictionary) Tokenize(line string) []Token {
	line = strings.ToLower(line)

	var tokens []Token
	start := -1

	endWord := func(i int) {
		if start != -1 {
			tokens = append(tokens, Token{Text: line[start:i], Offset: start})
			start = -1
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		if c == ' ' {
			endWord(i)
			continue
		}

		isSep := false
		for _, s := range dct.separators {
			if c == s {
				isSep = true
				break
			}
		}

		if isSep {
			endWord(i)
			tokens = append(tokens, Token{Text: line[i : i+1], Offset: i})
			continue
		}

		if start == -1 {
			start = i
		}
	}
	endWord(len(line))

	return tokens
}
