// Package frame is a minimal host table for geolib: named columns of
// equal length which can be read from and written to CSV and extended
// with geolocation columns.
package frame
