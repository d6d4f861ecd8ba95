package recordstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/andreyvit/formdoc"
	"github.com/andreyvit/formdoc/ar2005"
)

func setup(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "records.db"), ar2005.Record, Options{
		IsTesting:  true,
		Registerer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(t *testing.T, id int64) *formdoc.Document {
	doc := ar2005.NewRecord()
	ar1 := doc.Root().Child("AR1")
	require.NoError(t, ar1.Field("id").SetInt(id))
	require.NoError(t, ar1.Field("providerNo").SetText("P001"))
	lab := doc.Root().Child("AR2").AddChild("additionalLabInvestigations")
	require.NoError(t, lab.Field("bloodGroup").SetEnum("A"))
	lab.Field("rh").SetNil()
	return doc
}

func TestStore_PutGet(t *testing.T) {
	s := setup(t)
	doc := sampleRecord(t, 12345)

	meta, err := s.Put("r1", doc)
	require.NoError(t, err)
	assert.Equal(t, "r1", meta.ID)
	assert.Equal(t, uint64(1), meta.ModCount)
	assert.False(t, meta.Saved.IsZero())
	assert.Positive(t, meta.Size)

	got, gotMeta, err := s.Get("r1")
	require.NoError(t, err)
	assert.True(t, got.Equal(doc))
	assert.Equal(t, meta.Checksum, gotMeta.Checksum)
	assert.True(t, got.Root().Child("AR2").Child("additionalLabInvestigations").Field("rh").IsNil())
}

func TestStore_ModCount(t *testing.T) {
	s := setup(t)
	doc := sampleRecord(t, 1)
	for i := 1; i <= 3; i++ {
		meta, err := s.Put("r1", doc)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), meta.ModCount)
	}
}

func TestStore_NewID(t *testing.T) {
	s := setup(t)
	meta, err := s.Put("", sampleRecord(t, 1))
	require.NoError(t, err)
	_, err = uuid.Parse(meta.ID)
	assert.NoError(t, err)

	_, _, err = s.Get(meta.ID)
	assert.NoError(t, err)
}

func TestStore_NotFound(t *testing.T) {
	s := setup(t)
	_, _, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("missing"), ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().OpsTotal.WithLabelValues("get", "not_found")))
}

func TestStore_DeleteList(t *testing.T) {
	s := setup(t)
	for _, id := range []string{"b", "a", "c"} {
		_, err := s.Put(id, sampleRecord(t, 1))
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete("b"))

	metas, err := s.List()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "a", metas[0].ID)
	assert.Equal(t, "c", metas[1].ID)

	assert.Equal(t, 3.0, testutil.ToFloat64(s.Metrics().OpsTotal.WithLabelValues("put", "ok")))
}

func TestStore_SchemaMismatch(t *testing.T) {
	s := setup(t)
	_, err := s.Put("x", formdoc.NewDocument(ar2005.RecordSet))
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestStore_Corruption(t *testing.T) {
	s := setup(t)
	_, err := s.Put("r1", sampleRecord(t, 1))
	require.NoError(t, err)

	// flip a byte inside the payload
	require.NoError(t, s.bdb.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		raw := append([]byte(nil), b.Get([]byte("r1"))...)
		raw[len(raw)-10] ^= 0x01
		return b.Put([]byte("r1"), raw)
	}))

	_, _, err = s.Get("r1")
	var derr *DataError
	require.True(t, errors.As(err, &derr), "got %v", err)
	assert.Equal(t, "r1", derr.ID)
	assert.Contains(t, err.Error(), "checksum mismatch")

	_, err = s.List()
	assert.Error(t, err)

	require.NoError(t, s.bdb.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte("r2"), []byte{0xc1})
	}))
	_, _, err = s.Get("r2")
	assert.ErrorAs(t, err, &derr)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	s, err := Open(path, ar2005.Record, Options{IsTesting: true})
	require.NoError(t, err)
	_, err = s.Put("r1", sampleRecord(t, 7))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, ar2005.Record, Options{IsTesting: true})
	require.NoError(t, err)
	defer s.Close()
	doc, meta, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), meta.ModCount)
	assert.Equal(t, int64(7), doc.Root().Child("AR1").Field("id").Int())
}
