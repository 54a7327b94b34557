package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/9seconds/geoframe/geolib"
	"github.com/9seconds/geoframe/readers"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func makeReader(conf *config, log *logger) (geolib.Reader, *readers.MaxmindReader, error) {
	if conf.GetDatabase() == "" {
		return nil, nil, fmt.Errorf("database path is not set")
	}

	dbReader, err := readers.Open(conf.GetDatabase(), conf.GetMode())
	if err != nil {
		return nil, nil, err
	}

	meta, err := dbReader.Metadata()
	if err != nil {
		dbReader.Close()

		return nil, nil, fmt.Errorf("cannot read metadata: %w", err)
	}

	log.DatabaseOpened(conf.GetDatabase(), meta)

	if log.metrics != nil {
		log.metrics.SetDatabase(meta)
	}

	if conf.GetCacheSize() == 0 {
		return dbReader, dbReader, nil
	}

	return geolib.NewCachingReader(dbReader, conf.GetCacheSize(), conf.GetCacheTTL()), dbReader, nil
}

func openInput(fs afero.Fs, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	fp, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}

	return fp, nil
}

func openOutput(fs afero.Fs, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	fp, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create output file: %w", err)
	}

	return fp, nil
}

// splitFields accepts both repeated flags and comma-separated lists.
func splitFields(values []string) []string {
	rv := []string{}

	for _, v := range values {
		for _, chunk := range strings.Split(v, ",") {
			if chunk = strings.TrimSpace(chunk); chunk != "" {
				rv = append(rv, chunk)
			}
		}
	}

	return rv
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("cannot encode json: %w", err)
	}

	return nil
}
