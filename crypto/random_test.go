package crypto

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/lsag/types"
)

// deterministicTestGenerator Keccak-256 counter mode stream
type deterministicTestGenerator struct {
	state   types.Hash
	counter uint64
	buf     []byte
}

func newDeterministicTestGenerator() *deterministicTestGenerator {
	return &deterministicTestGenerator{
		state: Keccak256("lsag deterministic test generator"),
	}
}

func (g *deterministicTestGenerator) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(g.buf) == 0 {
			var counter [8]byte
			binary.LittleEndian.PutUint64(counter[:], g.counter)
			g.counter++
			block := Keccak256Var(g.state[:], counter[:])
			g.buf = block[:]
		}
		c := copy(p[n:], g.buf)
		g.buf = g.buf[c:]
		n += c
	}
	return n, nil
}
