package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/store"
)

// counter is a minimal model to exercise the bucket
type counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3"`
}

var _ Model = (*counter)(nil)

func (c *counter) Reset()         { *c = counter{} }
func (c *counter) String() string { return proto.CompactTextString(c) }
func (c *counter) ProtoMessage()  {}

func (c *counter) Marshal() ([]byte, error) {
	return proto.Marshal(c)
}

func (c *counter) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, c)
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func newCounterObj(key []byte, count int64) Object {
	return NewSimpleObj(key, &counter{Count: count})
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewBucket("l", nil) })
	assert.Panics(t, func() { NewBucket("WHAT", nil) })
	b := NewBucket("good", newCounterObj(nil, 0))
	assert.Equal(t, "good", b.Name())
}

func TestBucketSaveGet(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", newCounterObj(nil, 0))

	// empty read
	obj, err := b.Get(db, []byte("foo"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	// save and read back
	require.NoError(t, b.Save(db, newCounterObj([]byte("foo"), 88)))
	obj, err = b.Get(db, []byte("foo"))
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, []byte("foo"), obj.Key())
	assert.Equal(t, int64(88), obj.Value().(*counter).Count)

	// a different key is untouched
	obj, err = b.Get(db, []byte("bar"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	// delete it
	require.NoError(t, b.Delete(db, []byte("foo")))
	obj, err = b.Get(db, []byte("foo"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", newCounterObj(nil, 0))

	// missing key
	err := b.Save(db, newCounterObj(nil, 5))
	assert.True(t, errors.ErrEmpty.Is(err))

	// invalid value
	err = b.Save(db, newCounterObj([]byte("foo"), -20))
	assert.True(t, errors.ErrState.Is(err))
}

func TestBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("one", newCounterObj(nil, 0))
	two := NewBucket("two", newCounterObj(nil, 0))

	require.NoError(t, one.Save(db, newCounterObj([]byte("key"), 1)))
	require.NoError(t, two.Save(db, newCounterObj([]byte("key"), 2)))

	o, err := one.Get(db, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.Value().(*counter).Count)

	o, err = two.Get(db, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), o.Value().(*counter).Count)
}
