// Package mmdbtest builds small GeoIP2-City compatible databases for
// tests of readers and resolvers.
package mmdbtest

import (
	"bytes"
	"fmt"
	"net"

	"github.com/maxmind/mmdbwriter"
	"github.com/maxmind/mmdbwriter/mmdbtype"
	"github.com/spf13/afero"
)

// Entry is a network with City-like data. Empty strings and zero
// radius are not written at all.
type Entry struct {
	Network        string
	IP             string
	Country        string
	City           string
	States         []string
	Postcode       string
	Latitude       float64
	Longitude      float64
	AccuracyRadius uint16
}

// MismatchIP points to a network which record has every geo key with
// unexpected types.
const MismatchIP = "5.6.7.8"

// NotFoundIP is not covered by any network of the reference database.
const NotFoundIP = "255.255.255.255"

// Reference is a database with well-known addresses.
var Reference = []Entry{
	{
		Network:        "75.63.106.0/24",
		IP:             "75.63.106.74",
		Country:        "US",
		City:           "Houston",
		States:         []string{"TX"},
		Postcode:       "77070",
		Latitude:       29.9787,
		Longitude:      -95.5728,
		AccuracyRadius: 10,
	},
	{
		Network:        "132.206.246.0/24",
		IP:             "132.206.246.203",
		Country:        "CA",
		City:           "Montreal",
		States:         []string{"QC"},
		Postcode:       "H3A",
		Latitude:       45.5063,
		Longitude:      -73.5794,
		AccuracyRadius: 5,
	},
	{
		Network:        "94.226.237.0/24",
		IP:             "94.226.237.31",
		Country:        "BE",
		City:           "Kapellen",
		States:         []string{"VLG", "VAN"},
		Postcode:       "2950",
		Latitude:       51.3167,
		Longitude:      4.4333,
		AccuracyRadius: 20,
	},
	{
		Network:        "128.119.189.0/24",
		IP:             "128.119.189.49",
		Country:        "US",
		City:           "Northampton",
		States:         []string{"MA"},
		Postcode:       "01060",
		Latitude:       42.3251,
		Longitude:      -72.6412,
		AccuracyRadius: 100,
	},
	{
		Network:        "2.30.253.0/24",
		IP:             "2.30.253.245",
		Country:        "GB",
		City:           "London",
		States:         []string{"ENG"},
		Postcode:       "EC2V",
		Latitude:       51.5142,
		Longitude:      -0.0931,
		AccuracyRadius: 50,
	},
	{
		Network:        "2001:4860:4860::/48",
		IP:             "2001:4860:4860::8888",
		Country:        "US",
		Latitude:       37.751,
		Longitude:      -97.822,
		AccuracyRadius: 1000,
	},
}

func (e Entry) record() mmdbtype.Map {
	rv := mmdbtype.Map{}

	if e.Country != "" {
		rv["country"] = mmdbtype.Map{
			"iso_code": mmdbtype.String(e.Country),
			"names":    mmdbtype.Map{"en": mmdbtype.String(e.Country)},
		}
	}

	if e.City != "" {
		rv["city"] = mmdbtype.Map{
			"names": mmdbtype.Map{"en": mmdbtype.String(e.City)},
		}
	}

	if len(e.States) > 0 {
		subdivisions := mmdbtype.Slice{}

		for _, v := range e.States {
			subdivisions = append(subdivisions, mmdbtype.Map{
				"iso_code": mmdbtype.String(v),
			})
		}

		rv["subdivisions"] = subdivisions
	}

	if e.Postcode != "" {
		rv["postal"] = mmdbtype.Map{"code": mmdbtype.String(e.Postcode)}
	}

	location := mmdbtype.Map{
		"latitude":  mmdbtype.Float64(e.Latitude),
		"longitude": mmdbtype.Float64(e.Longitude),
	}

	if e.AccuracyRadius > 0 {
		location["accuracy_radius"] = mmdbtype.Uint16(e.AccuracyRadius)
	}

	rv["location"] = location

	return rv
}

func mismatchRecord() mmdbtype.Map {
	return mmdbtype.Map{
		"country":      mmdbtype.String("US"),
		"city":         mmdbtype.Map{"names": mmdbtype.Slice{mmdbtype.String("Houston")}},
		"subdivisions": mmdbtype.Slice{},
		"postal":       mmdbtype.Map{"code": mmdbtype.Uint32(77070)},
		"location": mmdbtype.Map{
			"latitude":        mmdbtype.String("29.9787"),
			"longitude":       mmdbtype.Bool(true),
			"accuracy_radius": mmdbtype.Float64(10),
		},
	}
}

// Build writes a database with given entries and a network with
// mismatched types for MismatchIP.
func Build(entries []Entry) ([]byte, error) {
	writer, err := mmdbwriter.New(mmdbwriter.Options{
		DatabaseType: "GeoIP2-City",
		Description:  map[string]string{"en": "geoframe test database"},
		Languages:    []string{"en"},
		RecordSize:   24,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create a writer: %w", err)
	}

	for _, v := range entries {
		if err := insert(writer, v.Network, v.record()); err != nil {
			return nil, err
		}
	}

	if err := insert(writer, "5.6.7.0/24", mismatchRecord()); err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}

	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("cannot serialize a database: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile builds the reference database and stores it into fs.
func WriteFile(fs afero.Fs, path string) error {
	data, err := Build(Reference)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0644)
}

func insert(writer *mmdbwriter.Tree, network string, record mmdbtype.Map) error {
	_, ipNet, err := net.ParseCIDR(network)
	if err != nil {
		return fmt.Errorf("incorrect network %s: %w", network, err)
	}

	if err := writer.Insert(ipNet, record); err != nil {
		return fmt.Errorf("cannot insert %s: %w", network, err)
	}

	return nil
}
