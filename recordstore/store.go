// Package recordstore keeps formdoc documents in a Bolt database, one bucket
// per document type, keyed by record ID.
package recordstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"

	"github.com/andreyvit/formdoc"
)

type Options struct {
	Logger     zerolog.Logger
	IsTesting  bool
	Timeout    time.Duration // wait for the file lock, 0 waits forever
	Registerer prometheus.Registerer
}

type Store struct {
	bdb     *bbolt.DB
	schema  *formdoc.Schema
	bucket  []byte
	log     zerolog.Logger
	metrics *Metrics
}

// Open opens or creates the database at path for documents of schema.
func Open(path string, schema *formdoc.Schema, opt Options) (*Store, error) {
	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = opt.Timeout
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
	} else {
		bopt.FreelistType = bbolt.FreelistMapType
	}

	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("recordstore: %w", err)
	}

	s := &Store{
		bdb:     bdb,
		schema:  schema,
		bucket:  []byte(schema.RootName()),
		log:     opt.Logger.With().Str("component", "recordstore").Str("bucket", schema.RootName()).Logger(),
		metrics: NewMetrics(opt.Registerer),
	}
	err = bdb.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("recordstore: %w", err)
	}
	s.log.Debug().Str("path", path).Msg("store opened")
	return s, nil
}

func (s *Store) Schema() *formdoc.Schema { return s.schema }
func (s *Store) Metrics() *Metrics       { return s.metrics }

func (s *Store) Close() error {
	return s.bdb.Close()
}

// NewID returns a fresh random record ID.
func NewID() string {
	return uuid.NewString()
}

// Put stores doc under id, replacing any previous version. An empty id
// allocates a new one. The returned Meta carries the ID actually used.
func (s *Store) Put(id string, doc *formdoc.Document) (meta Meta, err error) {
	start := time.Now()
	defer func() { s.metrics.observe("put", start, err) }()

	if doc.Schema() != s.schema {
		return Meta{}, fmt.Errorf("recordstore: %w: got %v, wanted %v", ErrSchemaMismatch, doc.Schema(), s.schema)
	}
	if id == "" {
		id = NewID()
	}
	data, err := doc.Serialize()
	if err != nil {
		return Meta{}, err
	}

	env := &envelope{
		Namespace: s.schema.Namespace(),
		Root:      s.schema.RootName(),
		Saved:     time.Now().UTC(),
	}
	sealEnvelope(env, data)

	err = s.bdb.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		key := []byte(id)
		if raw := b.Get(key); raw != nil {
			old, err := decodeEnvelope(id, raw)
			if err != nil {
				return err
			}
			env.ModCount = old.ModCount
		}
		env.ModCount++
		raw, err := encodeEnvelope(env)
		if err != nil {
			return err
		}
		return b.Put(key, raw)
	})
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("put failed")
		return Meta{}, err
	}
	s.metrics.RecordBytes.Observe(float64(len(data)))
	meta = env.meta(id)
	s.log.Debug().Str("id", id).Uint64("mod_count", meta.ModCount).Int("size", meta.Size).Msg("record stored")
	return meta, nil
}

// Get loads the record with the given id. Parse failures are returned as is;
// a damaged envelope yields a *DataError.
func (s *Store) Get(id string) (doc *formdoc.Document, meta Meta, err error) {
	start := time.Now()
	defer func() { s.metrics.observe("get", start, err) }()

	var env *envelope
	err = s.bdb.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(id))
		if raw == nil {
			return ErrNotFound
		}
		var err error
		env, err = decodeEnvelope(id, raw)
		return err
	})
	if err != nil {
		return nil, Meta{}, err
	}
	if env.Namespace != s.schema.Namespace() || env.Root != s.schema.RootName() {
		return nil, Meta{}, dataErrf(id, nil, ErrSchemaMismatch, "stored as {%s}%s", env.Namespace, env.Root)
	}

	doc, err = formdoc.Parse(env.Data, s.schema)
	if err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("stored document does not parse")
		return nil, Meta{}, err
	}
	return doc, env.meta(id), nil
}

// Delete removes the record. Fails with ErrNotFound if there is none.
func (s *Store) Delete(id string) (err error) {
	start := time.Now()
	defer func() { s.metrics.observe("delete", start, err) }()

	err = s.bdb.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		key := []byte(id)
		if b.Get(key) == nil {
			return ErrNotFound
		}
		return b.Delete(key)
	})
	if err == nil {
		s.log.Debug().Str("id", id).Msg("record deleted")
	}
	return err
}

// List returns the metadata of all records ordered by ID.
func (s *Store) List() (metas []Meta, err error) {
	start := time.Now()
	defer func() { s.metrics.observe("list", start, err) }()

	err = s.bdb.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, v []byte) error {
			id := string(k)
			env, err := decodeEnvelope(id, v)
			if err != nil {
				return err
			}
			metas = append(metas, env.meta(id))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return metas, nil
}
