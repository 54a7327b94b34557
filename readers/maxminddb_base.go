package readers

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/oschwald/maxminddb-golang"
	"github.com/spf13/afero"

	"github.com/9seconds/geoframe/geolib"
)

// Metadata is a short description of an opened database.
type Metadata struct {
	DatabaseType string            `json:"database_type"`
	Description  map[string]string `json:"description"`
	Languages    []string          `json:"languages"`
	BuildTime    time.Time         `json:"build_time"`
	IPVersion    uint              `json:"ip_version"`
	NodeCount    uint              `json:"node_count"`
	RecordSize   uint              `json:"record_size"`
	Size         int64             `json:"size"`
	Mode         string            `json:"mode"`
}

// MaxmindReader is a geolib.Reader over MaxMind DB file. Both storage
// strategies share this type and differ only by a constructor. Lookup
// is safe for concurrent use.
type MaxmindReader struct {
	mode         string
	size         int64
	dbReader     *maxminddb.Reader
	dbReaderLock sync.RWMutex
}

// Lookup returns a nested record for the given address. If database
// has no network for this address, it returns nil record and no error.
func (m *MaxmindReader) Lookup(ip net.IP) (geolib.Record, error) {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	if m.dbReader == nil {
		return nil, ErrDatabaseIsNotReadyYet
	}

	var record interface{}

	_, ok, err := m.dbReader.LookupNetwork(ip, &record)

	switch {
	case err != nil:
		return nil, fmt.Errorf("cannot lookup this ip address: %w", err)
	case !ok:
		return nil, nil
	}

	if asMap, ok := record.(map[string]interface{}); ok {
		return geolib.Record(asMap), nil
	}

	return geolib.Record{}, nil
}

// Ready returns an error if reader was closed.
func (m *MaxmindReader) Ready() error {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	if m.dbReader == nil {
		return ErrDatabaseIsNotReadyYet
	}

	return nil
}

// Mode returns ModeMemory or ModeMmap.
func (m *MaxmindReader) Mode() string {
	return m.mode
}

// Metadata returns a description of the database.
func (m *MaxmindReader) Metadata() (Metadata, error) {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	if m.dbReader == nil {
		return Metadata{}, ErrDatabaseIsNotReadyYet
	}

	meta := m.dbReader.Metadata

	return Metadata{
		DatabaseType: meta.DatabaseType,
		Description:  meta.Description,
		Languages:    meta.Languages,
		BuildTime:    time.Unix(int64(meta.BuildEpoch), 0).UTC(),
		IPVersion:    meta.IPVersion,
		NodeCount:    meta.NodeCount,
		RecordSize:   meta.RecordSize,
		Size:         m.size,
		Mode:         m.mode,
	}, nil
}

// Close releases a database. It is safe to call it many times.
func (m *MaxmindReader) Close() error {
	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader == nil {
		return nil
	}

	err := m.dbReader.Close()
	m.dbReader = nil

	return err
}

// NewMemory reads a whole database file into memory.
func NewMemory(fs afero.Fs, path string) (*MaxmindReader, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %w", ErrReaderOpenFailure, path, err)
	}

	reader, err := maxminddb.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot initialize a reader of maxminddb: %w", ErrReaderOpenFailure, err)
	}

	return &MaxmindReader{
		mode:     ModeMemory,
		size:     int64(len(data)),
		dbReader: reader,
	}, nil
}

// NewMmap memory-maps a database file.
func NewMmap(path string) (*MaxmindReader, error) {
	reader, err := maxminddb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot initialize a reader of maxminddb: %w", ErrReaderOpenFailure, err)
	}

	rv := &MaxmindReader{
		mode:     ModeMmap,
		dbReader: reader,
	}

	if stat, err := afero.NewOsFs().Stat(path); err == nil {
		rv.size = stat.Size()
	}

	return rv, nil
}

// Open opens a database from OS filesystem in a given mode.
func Open(path, mode string) (*MaxmindReader, error) {
	switch mode {
	case ModeMemory:
		return NewMemory(afero.NewOsFs(), path)
	case ModeMmap:
		return NewMmap(path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}
