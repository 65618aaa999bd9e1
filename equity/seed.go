package equity

import (
	"encoding/binary"
	"hash/adler32"

	"github.com/lox/holdthem/poker"
)

// SeedFor derives a simulation seed from the query itself, so asking for the
// same features twice gives the same answer without the caller managing seeds.
// The order in which board cards were dealt does not matter.
func SeedFor(hero poker.HoleCards, board poker.Board, trials int64) int64 {
	var buf [8 + 2 + 5]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(trials))
	n := 8
	buf[n] = byte(hero[0])
	buf[n+1] = byte(hero[1])
	n += 2
	for _, c := range board.Set().Cards() {
		buf[n] = byte(c)
		n++
	}
	return int64(adler32.Checksum(buf[:n]))
}
