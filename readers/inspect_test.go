package readers_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/9seconds/geoframe/internal/mmdbtest"
	"github.com/9seconds/geoframe/readers"
)

func TestInspectCity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.mmdb")

	assert.NoError(t, mmdbtest.WriteFile(afero.NewOsFs(), path))

	city, err := readers.InspectCity(path, "132.206.246.203")

	assert.NoError(t, err)
	assert.Equal(t, "CA", city.Country.IsoCode)
	assert.Equal(t, "Montreal", city.City.Names["en"])
	assert.Equal(t, "H3A", city.Postal.Code)
	assert.EqualValues(t, 5, city.Location.AccuracyRadius)

	empty, err := readers.InspectCity(path, mmdbtest.NotFoundIP)

	assert.NoError(t, err)
	assert.Empty(t, empty.City.Names)
}

func TestInspectCityIncorrectIP(t *testing.T) {
	_, err := readers.InspectCity("/does/not/matter", "not-an-ip")

	assert.True(t, errors.Is(err, readers.ErrIncorrectIP))
}

func TestInspectCityMissingDatabase(t *testing.T) {
	_, err := readers.InspectCity(filepath.Join(t.TempDir(), "missing.mmdb"), "1.1.1.1")

	assert.True(t, errors.Is(err, readers.ErrReaderOpenFailure))
}
