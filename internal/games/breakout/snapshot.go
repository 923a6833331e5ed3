package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash returns a hash of the state for determinism testing.
func (st State) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}

	putFloat(st.Paddle.X)
	putFloat(st.Paddle.W)
	putFloat(st.Ball.X)
	putFloat(st.Ball.Y)
	putFloat(st.Ball.DX)
	putFloat(st.Ball.DY)

	// Brick visibility as a bitmask, 64 bricks per word.
	var mask uint64
	for i, b := range st.Bricks {
		if b.Visible {
			mask |= 1 << (i % 64)
		}
		if i%64 == 63 || i == len(st.Bricks)-1 {
			binary.LittleEndian.PutUint64(buf[:], mask)
			h.Write(buf[:])
			mask = 0
		}
	}

	putInt(st.Score)
	putInt(st.Lives)
	putInt(int(st.Outcome))
	binary.LittleEndian.PutUint64(buf[:], st.Tick)
	h.Write(buf[:])

	return h.Sum64()
}
