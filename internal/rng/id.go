package rng

import (
	"github.com/google/uuid"
)

// NewID mints "<prefix>_<uuid>" with the UUID bytes drawn from src,
// so a seeded source reproduces the same identifiers.
func NewID(prefix string, src Source) string {
	id, err := uuid.NewRandomFromReader(reader{src})
	if err != nil {
		// reader never fails
		id = uuid.New()
	}
	return prefix + "_" + id.String()
}

// reader adapts a Source to io.Reader, one roll per byte.
type reader struct {
	src Source
}

func (r reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(Pick(r.src, 256))
	}
	return len(p), nil
}
