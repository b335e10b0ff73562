package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes every entity position plus the move counter and state label.
// Identical worlds yield identical digests; used to assert determinism and
// to verify a blocked move left the world untouched
func Digest(w *World) uint64 {
	h := xxhash.New()
	var buf [11]byte

	for _, e := range w.Query().With(w.Components.Position).Execute() {
		pos, _ := w.Components.Position.Get(e)
		binary.LittleEndian.PutUint64(buf[0:8], uint64(e))
		buf[8] = pos.X
		buf[9] = pos.Y
		buf[10] = pos.Z
		_, _ = h.Write(buf[:])
	}

	binary.LittleEndian.PutUint32(buf[0:4], w.Resources.Gameplay.MovesCount())
	buf[4] = byte(w.Resources.Gameplay.State())
	_, _ = h.Write(buf[:5])

	return h.Sum64()
}
