package readers

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// InspectCity opens a database with a typed GeoIP2 decoder and returns
// a full City record for the given address. It is intended for manual
// debugging of what database actually stores. Unknown address gives an
// empty record.
func InspectCity(path, ip string) (*geoip2.City, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("%w: %s", ErrIncorrectIP, ip)
	}

	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReaderOpenFailure, err)
	}

	defer db.Close()

	city, err := db.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("cannot lookup %s: %w", ip, err)
	}

	return city, nil
}
