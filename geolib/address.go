package geolib

import (
	"net"
	"strings"
)

// AddressKind is a tag of parsed address.
type AddressKind uint8

const (
	AddressMalformed AddressKind = iota
	AddressV4
	AddressV6
)

func (a AddressKind) String() string {
	switch a {
	case AddressV4:
		return "v4"
	case AddressV6:
		return "v6"
	}

	return "malformed"
}

// Address is a parsed row of the input column. Malformed addresses
// keep their raw value so they can be reported, but never reach a
// reader.
type Address struct {
	kind AddressKind
	ip   net.IP
	raw  string
}

func (a Address) Kind() AddressKind {
	return a.kind
}

func (a Address) Malformed() bool {
	return a.kind == AddressMalformed
}

// IP returns parsed IP address. It is nil for malformed addresses.
func (a Address) IP() net.IP {
	return a.ip
}

func (a Address) Raw() string {
	return a.raw
}

func (a Address) String() string {
	if a.ip == nil {
		return a.raw
	}

	return a.ip.String()
}

// ParseAddress converts a raw string into Address. This function never
// fails: anything which is not a dotted-quad IPv4 or colon-hex IPv6
// literal becomes a malformed address.
//
// IPv4-mapped IPv6 literals like ::ffff:1.2.3.4 are tagged as V6 because
// this is how they are written.
func ParseAddress(raw string) Address {
	rv := Address{raw: raw}

	ip := net.ParseIP(raw)
	if ip == nil {
		return rv
	}

	rv.ip = ip

	if strings.Contains(raw, ":") {
		rv.kind = AddressV6
	} else {
		rv.ip = ip.To4()
		rv.kind = AddressV4
	}

	return rv
}
