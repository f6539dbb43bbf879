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

package savestate

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/skeptomai/gruesome-sub000/curated"
)

// saved states are IFF files: a FORM container holding typed chunks, each
// a four character id and a big-endian length. chunks with odd lengths are
// padded to an even boundary

const formID = "FORM"
const containerType = "IFZS"

type chunk struct {
	id   string
	data []byte
}

// writeIFF writes the FORM container and its chunks.
func writeIFF(w io.Writer, chunks []chunk) error {
	body := &bytes.Buffer{}
	body.WriteString(containerType)

	for _, c := range chunks {
		body.WriteString(c.id)
		_ = binary.Write(body, binary.BigEndian, uint32(len(c.data)))
		body.Write(c.data)
		if len(c.data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	_, err := w.Write([]byte(formID))
	if err != nil {
		return curated.Errorf(Corrupt, err)
	}
	err = binary.Write(w, binary.BigEndian, uint32(body.Len()))
	if err != nil {
		return curated.Errorf(Corrupt, err)
	}
	_, err = w.Write(body.Bytes())
	if err != nil {
		return curated.Errorf(Corrupt, err)
	}

	return nil
}

// readIFF reads a FORM container and returns its chunks in file order.
func readIFF(r io.Reader) ([]chunk, error) {
	var head [12]byte
	_, err := io.ReadFull(r, head[:])
	if err != nil {
		return nil, curated.Errorf(Corrupt, err)
	}

	if string(head[0:4]) != formID {
		return nil, curated.Errorf(Corrupt, "not an IFF file")
	}
	if string(head[8:12]) != containerType {
		return nil, curated.Errorf(Corrupt, "not a saved state")
	}

	remaining := int(binary.BigEndian.Uint32(head[4:8])) - 4

	var chunks []chunk
	for remaining >= 8 {
		var chunkHead [8]byte
		_, err = io.ReadFull(r, chunkHead[:])
		if err != nil {
			return nil, curated.Errorf(Corrupt, err)
		}
		remaining -= 8

		length := int(binary.BigEndian.Uint32(chunkHead[4:8]))
		data := make([]byte, length)
		_, err = io.ReadFull(r, data)
		if err != nil {
			return nil, curated.Errorf(Corrupt, err)
		}
		remaining -= length

		if length%2 == 1 {
			var pad [1]byte
			_, err = io.ReadFull(r, pad[:])
			if err != nil {
				return nil, curated.Errorf(Corrupt, err)
			}
			remaining--
		}

		chunks = append(chunks, chunk{id: string(chunkHead[0:4]), data: data})
	}

	return chunks, nil
}
