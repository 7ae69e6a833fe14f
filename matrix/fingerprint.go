package matrix

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// fingerprintEnvelope is the canonical encoding fed to the hash. Shape is
// encoded alongside the data so a 1×4 and a 2×2 with the same elements do
// not collide.
type fingerprintEnvelope struct {
	N    int       `msgpack:"n"`
	Data []float64 `msgpack:"data"`
}

// Fingerprint returns a stable 64-bit identity for the matrix value: equal
// shape and elements always hash equal, across calls and across processes.
// Fingerprints show up in diagnostic log fields and cache observability;
// they are never consulted for cache validity.
func (m Matrix) Fingerprint() uint64 {
	enc, err := msgpack.Marshal(fingerprintEnvelope{N: m.n, Data: m.data})
	if err != nil {
		// msgpack cannot realistically fail on these types; prioritize
		// stability over perfection and hash the formatted value instead.
		return xxhash.Sum64String(fmt.Sprintf("%d:%v", m.n, m.data))
	}
	return xxhash.Sum64(enc)
}
