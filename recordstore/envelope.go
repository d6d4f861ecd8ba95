package recordstore

import (
	"bytes"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

const envelopeVersion = 1

// envelope is the stored form of a record: the serialized document plus the
// bookkeeping needed to list records without parsing them.
type envelope struct {
	Ver       int       `msgpack:"v"`
	Namespace string    `msgpack:"ns"`
	Root      string    `msgpack:"root"`
	ModCount  uint64    `msgpack:"mc"`
	Saved     time.Time `msgpack:"saved"`
	Checksum  uint64    `msgpack:"sum"`
	Data      []byte    `msgpack:"data"`
}

// Meta describes a stored record.
type Meta struct {
	ID       string
	ModCount uint64
	Saved    time.Time
	Size     int
	Checksum uint64
}

func sealEnvelope(env *envelope, data []byte) {
	env.Ver = envelopeVersion
	env.Data = data
	env.Checksum = xxhash.Sum64(data)
}

func encodeEnvelope(env *envelope) ([]byte, error) {
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	var buf bytesBuilder
	enc.Reset(&buf)
	if err := enc.Encode(env); err != nil {
		return nil, err
	}
	return buf.Buf, nil
}

// decodeEnvelope decodes raw and verifies the version and the checksum of the
// payload. raw may point into the Bolt mmap, so nothing returned aliases it.
func decodeEnvelope(id string, raw []byte) (*envelope, error) {
	raw = bytes.Clone(raw)
	var env envelope
	if err := msgpack.Unmarshal(raw, &env); err != nil {
		return nil, dataErrf(id, raw, err, "failed to decode msgpack envelope")
	}
	if env.Ver != envelopeVersion {
		return nil, dataErrf(id, raw, nil, "unsupported envelope version %d", env.Ver)
	}
	if sum := xxhash.Sum64(env.Data); sum != env.Checksum {
		return nil, dataErrf(id, raw, nil, "checksum mismatch: stored %016x, computed %016x", env.Checksum, sum)
	}
	return &env, nil
}

func (env *envelope) meta(id string) Meta {
	return Meta{
		ID:       id,
		ModCount: env.ModCount,
		Saved:    env.Saved.UTC(),
		Size:     len(env.Data),
		Checksum: env.Checksum,
	}
}

type bytesBuilder struct {
	Buf []byte
}

func (bb *bytesBuilder) Write(b []byte) (int, error) {
	bb.Buf = append(bb.Buf, b...)
	return len(b), nil
}
