package readers_test

import (
	"errors"
	"net"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/geoframe/geolib"
	"github.com/9seconds/geoframe/internal/mmdbtest"
	"github.com/9seconds/geoframe/readers"
)

type MaxmindReaderTestSuite struct {
	suite.Suite

	path   string
	memory *readers.MaxmindReader
	mmap   *readers.MaxmindReader
}

func (suite *MaxmindReaderTestSuite) SetupSuite() {
	suite.path = filepath.Join(suite.T().TempDir(), "city.mmdb")

	if err := mmdbtest.WriteFile(afero.NewOsFs(), suite.path); err != nil {
		panic(err)
	}
}

func (suite *MaxmindReaderTestSuite) SetupTest() {
	memory, err := readers.Open(suite.path, readers.ModeMemory)
	if err != nil {
		panic(err)
	}

	mmap, err := readers.Open(suite.path, readers.ModeMmap)
	if err != nil {
		panic(err)
	}

	suite.memory = memory
	suite.mmap = mmap
}

func (suite *MaxmindReaderTestSuite) TearDownTest() {
	suite.memory.Close()
	suite.mmap.Close()
}

func (suite *MaxmindReaderTestSuite) eachReader(callback func(*readers.MaxmindReader)) {
	for _, v := range []*readers.MaxmindReader{suite.memory, suite.mmap} {
		callback(v)
	}
}

func (suite *MaxmindReaderTestSuite) TestModes() {
	suite.Equal(readers.ModeMemory, suite.memory.Mode())
	suite.Equal(readers.ModeMmap, suite.mmap.Mode())
}

func (suite *MaxmindReaderTestSuite) TestReferenceRecords() {
	suite.eachReader(func(r *readers.MaxmindReader) {
		for _, v := range mmdbtest.Reference {
			record, err := r.Lookup(net.ParseIP(v.IP))

			suite.NoError(err)
			suite.NotNil(record, v.IP)

			row := geolib.Project(record, geolib.AllFields)

			country, _ := row.Get(geolib.FieldCountry).Str()
			suite.Equal(v.Country, country)

			lat, ok := row.Get(geolib.FieldLatitude).Float()
			suite.True(ok)
			suite.Equal(v.Latitude, lat)

			radius, ok := row.Get(geolib.FieldAccuracyRadius).Int()
			suite.True(ok)
			suite.EqualValues(v.AccuracyRadius, radius)
		}
	})
}

func (suite *MaxmindReaderTestSuite) TestNotFound() {
	suite.eachReader(func(r *readers.MaxmindReader) {
		record, err := r.Lookup(net.ParseIP(mmdbtest.NotFoundIP))

		suite.NoError(err)
		suite.Nil(record)
	})
}

func (suite *MaxmindReaderTestSuite) TestModesAreIdentical() {
	ips := []string{mmdbtest.NotFoundIP, mmdbtest.MismatchIP, "10.0.0.1", "::1"}

	for _, v := range mmdbtest.Reference {
		ips = append(ips, v.IP)
	}

	for _, v := range ips {
		ip := net.ParseIP(v)

		fromMemory, errMemory := suite.memory.Lookup(ip)
		fromMmap, errMmap := suite.mmap.Lookup(ip)

		suite.Equal(errMemory, errMmap)
		suite.Equal(fromMemory, fromMmap, v)
	}
}

func (suite *MaxmindReaderTestSuite) TestClosed() {
	suite.eachReader(func(r *readers.MaxmindReader) {
		suite.NoError(r.Ready())
		suite.NoError(r.Close())
		suite.NoError(r.Close())

		_, err := r.Lookup(net.ParseIP("75.63.106.74"))
		suite.True(errors.Is(err, readers.ErrDatabaseIsNotReadyYet))
		suite.True(errors.Is(r.Ready(), readers.ErrDatabaseIsNotReadyYet))

		_, err = r.Metadata()
		suite.True(errors.Is(err, readers.ErrDatabaseIsNotReadyYet))
	})
}

func (suite *MaxmindReaderTestSuite) TestMetadata() {
	suite.eachReader(func(r *readers.MaxmindReader) {
		meta, err := r.Metadata()

		suite.NoError(err)
		suite.Equal("GeoIP2-City", meta.DatabaseType)
		suite.Equal([]string{"en"}, meta.Languages)
		suite.EqualValues(6, meta.IPVersion)
		suite.EqualValues(24, meta.RecordSize)
		suite.NotZero(meta.NodeCount)
		suite.NotZero(meta.Size)
		suite.Equal(r.Mode(), meta.Mode)
	})
}

func (suite *MaxmindReaderTestSuite) TestUnknownMode() {
	_, err := readers.Open(suite.path, "disk")

	suite.True(errors.Is(err, readers.ErrUnknownMode))
}

func (suite *MaxmindReaderTestSuite) TestGeolocate() {
	ips := []string{
		"75.63.106.74",
		"132.206.246.203",
		"94.226.237.31",
		"128.119.189.49",
		"2.30.253.245",
		"gibberish",
		mmdbtest.NotFoundIP,
		mmdbtest.MismatchIP,
	}

	suite.eachReader(func(r *readers.MaxmindReader) {
		batch, err := geolib.Geolocate(ips, r, geolib.FieldNames(geolib.AllFields), geolib.Opts{
			Parallel:  true,
			ChunkSize: 3,
		})

		suite.NoError(err)
		suite.Equal(len(ips), batch.Len())

		cities, _ := batch.Column(geolib.FieldCity)
		states, _ := batch.Column(geolib.FieldState)
		postcodes, _ := batch.Column(geolib.FieldPostcode)

		suite.Equal("Houston", cities[0].String())
		suite.Equal("TX", states[0].String())
		suite.Equal("77070", postcodes[0].String())
		suite.Equal("Kapellen", cities[2].String())
		suite.Equal("VLG", states[2].String())
		suite.Equal("01060", postcodes[3].String())

		for i := 5; i < len(ips); i++ {
			for _, field := range batch.Fields() {
				column, _ := batch.Column(field)

				suite.True(column[i].IsNull(), "%s %s", ips[i], field)
			}
		}
	})
}

func TestMaxmindReader(t *testing.T) {
	suite.Run(t, &MaxmindReaderTestSuite{})
}

type OpenFailureTestSuite struct {
	suite.Suite

	fs afero.Fs
}

func (suite *OpenFailureTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
}

func (suite *OpenFailureTestSuite) TestMissingFile() {
	_, err := readers.NewMemory(suite.fs, "/nothing.mmdb")
	suite.True(errors.Is(err, readers.ErrReaderOpenFailure))

	_, err = readers.NewMmap(filepath.Join(suite.T().TempDir(), "nothing.mmdb"))
	suite.True(errors.Is(err, readers.ErrReaderOpenFailure))
}

func (suite *OpenFailureTestSuite) TestCorruptFile() {
	suite.NoError(afero.WriteFile(suite.fs, "/corrupt.mmdb", []byte("definitely not a database"), 0644))

	_, err := readers.NewMemory(suite.fs, "/corrupt.mmdb")
	suite.True(errors.Is(err, readers.ErrReaderOpenFailure))
}

func (suite *OpenFailureTestSuite) TestMemoryFromMemMapFs() {
	suite.NoError(mmdbtest.WriteFile(suite.fs, "/city.mmdb"))

	r, err := readers.NewMemory(suite.fs, "/city.mmdb")
	suite.NoError(err)

	defer r.Close()

	record, err := r.Lookup(net.ParseIP("2.30.253.245"))

	suite.NoError(err)
	suite.NotNil(record)
}

func TestOpenFailure(t *testing.T) {
	suite.Run(t, &OpenFailureTestSuite{})
}
