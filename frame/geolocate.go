package frame

import "github.com/9seconds/geoframe/geolib"

// Opts defines how a frame is geolocated. Empty Fields means
// geolib.DefaultFields.
type Opts struct {
	Fields    []string
	Parallel  bool
	ChunkSize int
	Workers   int
	Logger    geolib.Logger
}

// Geolocate resolves addresses from the given column and assigns one
// column per requested field, named after the field. Existing columns
// with the same names are replaced. If batch fails, frame is not
// modified.
func Geolocate(f *Frame, column string, reader geolib.Reader, opts Opts) error {
	ips, err := f.Strings(column)
	if err != nil {
		return err
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = geolib.FieldNames(geolib.DefaultFields)
	}

	batch, err := geolib.Geolocate(ips, reader, fields, geolib.Opts{
		Parallel:  opts.Parallel,
		ChunkSize: opts.ChunkSize,
		Workers:   opts.Workers,
		Logger:    opts.Logger,
	})
	if err != nil {
		return err
	}

	batch.Each(func(field geolib.Field, values []geolib.Value) {
		f.setColumn(field.String(), values)
	})

	return nil
}
