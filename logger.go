package main

import (
	"io"
	"net"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/9seconds/geoframe/geolib"
	"github.com/9seconds/geoframe/readers"
)

type logger struct {
	lookupLog   zerolog.Logger
	batchLog    zerolog.Logger
	databaseLog zerolog.Logger
	metrics     *metrics
}

func (l *logger) LookupError(ip net.IP, err error) {
	l.lookupLog.Error().Stringer("ip", ip).Err(err).Msg("")
}

func (l *logger) BatchDone(summary geolib.BatchSummary) {
	if l.metrics != nil {
		l.metrics.ObserveBatch(summary)
	}

	rate := 0.0
	if seconds := summary.Elapsed.Seconds(); seconds > 0 {
		rate = float64(summary.Rows) / seconds
	}

	l.batchLog.Info().
		Str("rows", humanize.Comma(int64(summary.Rows))).
		Int("found", summary.Found).
		Int("not_found", summary.NotFound).
		Int("malformed", summary.Malformed).
		Int("lookup_error", summary.LookupError).
		Int("chunks", summary.Chunks).
		Bool("parallel", summary.Parallel).
		Dur("elapsed", summary.Elapsed).
		Str("rate", humanize.Commaf(float64(int64(rate)))+" rows/s").
		Msg("Batch is done")
}

func (l *logger) DatabaseOpened(path string, meta readers.Metadata) {
	l.databaseLog.Info().
		Str("path", path).
		Str("mode", meta.Mode).
		Str("type", meta.DatabaseType).
		Str("size", humanize.Bytes(uint64(meta.Size))).
		Str("built", humanize.Time(meta.BuildTime)).
		Uint("node_count", meta.NodeCount).
		Msg("Database is opened")
}

func newLogger(w io.Writer, m *metrics) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		lookupLog:   zerolog.New(w).With().Timestamp().Stack().Str("event_name", "lookup").Logger(),
		batchLog:    zerolog.New(w).With().Timestamp().Str("event_name", "batch").Logger(),
		databaseLog: zerolog.New(w).With().Timestamp().Str("event_name", "database").Logger(),
		metrics:     m,
	}
}
