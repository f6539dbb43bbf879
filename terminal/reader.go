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

package terminal

import (
	"bufio"
	"io"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
)

// runeReader turns a file into a channel of runes so that reads can be
// multiplexed with a timeout
type runeReader struct {
	runes chan rune
	errs  chan error
}

func initRuneReader(input io.Reader) *runeReader {
	rr := &runeReader{
		runes: make(chan rune),
		errs:  make(chan error),
	}

	go func() {
		buf := bufio.NewReader(input)
		for {
			r, _, err := buf.ReadRune()
			if err != nil {
				if err == io.EOF {
					rr.errs <- curated.Errorf(peripherals.EndOfInput)
				} else {
					rr.errs <- curated.Errorf(TerminalError, err)
				}
				return
			}
			rr.runes <- r
		}
	}()

	return rr
}

// readRune blocks until a rune arrives or the timeout expires. a zero
// timeout blocks forever
func (rr *runeReader) readRune(timeout time.Duration) (rune, error) {
	if timeout == 0 {
		select {
		case r := <-rr.runes:
			return r, nil
		case err := <-rr.errs:
			return 0, err
		}
	}

	select {
	case r := <-rr.runes:
		return r, nil
	case err := <-rr.errs:
		return 0, err
	case <-time.After(timeout):
		return 0, curated.Errorf(peripherals.Timeout)
	}
}
