package geolib

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type emptyReader struct{}

func (emptyReader) Lookup(net.IP) (Record, error) {
	return nil, nil
}

func (emptyReader) Ready() error {
	return nil
}

func TestResolverSequentialHasNoWorkerPool(t *testing.T) {
	r, err := NewResolver(emptyReader{}, Opts{Workers: 2})
	assert.NoError(t, err)

	defer r.Shutdown()

	assert.Nil(t, r.workerPool)

	_, err = r.Geolocate([]string{"1.1.1.1", "x"}, []string{"city"}, false, 1)
	assert.NoError(t, err)
	assert.Nil(t, r.workerPool)

	_, err = r.Geolocate([]string{"1.1.1.1", "x"}, []string{"city"}, true, 1)
	assert.NoError(t, err)
	assert.NotNil(t, r.workerPool)
	assert.Equal(t, 2, r.workerPool.Cap())

	pool := r.workerPool

	_, err = r.Geolocate([]string{"1.1.1.1"}, []string{"city"}, true, 1)
	assert.NoError(t, err)
	assert.Same(t, pool, r.workerPool)
}

func TestResolverShutdownWithoutWorkerPool(t *testing.T) {
	r, err := NewResolver(emptyReader{}, Opts{})
	assert.NoError(t, err)

	r.Shutdown()

	_, err = r.Geolocate([]string{"1.1.1.1"}, []string{"city"}, true, 1)
	assert.ErrorIs(t, err, ErrResolverShutdown)
	assert.Nil(t, r.workerPool)
}

func TestGeolocateSequentialOneShot(t *testing.T) {
	batch, err := Geolocate([]string{"1.1.1.1"}, emptyReader{}, []string{"country"}, Opts{})

	assert.NoError(t, err)
	assert.Equal(t, 1, batch.Len())
}
