package shooter

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash returns a hash of the state for determinism testing.
// Two runs with the same seed and inputs produce equal hashes.
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
	putEntity := func(e Entity) {
		putFloat(e.X)
		putFloat(e.Y)
		putFloat(e.W)
		putFloat(e.H)
		putFloat(e.Speed)
	}

	putEntity(st.Player)
	putInt(len(st.Enemies))
	for _, e := range st.Enemies {
		putEntity(e)
	}
	putInt(len(st.Bullets))
	for _, b := range st.Bullets {
		putEntity(b)
	}
	putInt(st.Score)
	putInt(st.Lives)
	if st.GameOver {
		putInt(1)
	} else {
		putInt(0)
	}
	binary.LittleEndian.PutUint64(buf[:], st.Tick)
	h.Write(buf[:])

	return h.Sum64()
}
