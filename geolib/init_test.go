package geolib_test

import (
	"net"

	"github.com/stretchr/testify/mock"

	"github.com/9seconds/geoframe/geolib"
)

type ReaderMock struct {
	mock.Mock
}

func (m *ReaderMock) Lookup(ip net.IP) (geolib.Record, error) {
	args := m.Called(ip.String())

	var record geolib.Record

	if v := args.Get(0); v != nil {
		record = v.(geolib.Record)
	}

	return record, args.Error(1)
}

func (m *ReaderMock) Ready() error {
	return m.Called().Error(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(ip net.IP, err error) {
	m.Called(ip.String(), err)
}

func (m *LoggerMock) BatchDone(summary geolib.BatchSummary) {
	m.Called(summary)
}

// mapReader is a static reader keyed by canonical address.
type mapReader map[string]geolib.Record

func (m mapReader) Lookup(ip net.IP) (geolib.Record, error) {
	return m[ip.String()], nil
}

func (m mapReader) Ready() error {
	return nil
}

func cityRecord(country, city, state string, lat, lon float64, radius uint64) geolib.Record {
	return geolib.Record{
		"country": map[string]interface{}{
			"iso_code": country,
		},
		"city": map[string]interface{}{
			"names": map[string]interface{}{
				"en": city,
			},
		},
		"subdivisions": []interface{}{
			map[string]interface{}{
				"iso_code": state,
			},
		},
		"postal": map[string]interface{}{
			"code": "00" + state,
		},
		"location": map[string]interface{}{
			"latitude":        lat,
			"longitude":       lon,
			"accuracy_radius": radius,
		},
	}
}
