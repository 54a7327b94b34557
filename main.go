package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/geoframe/frame"
	"github.com/9seconds/geoframe/readers"
)

var version = "dev"

var (
	app = kingpin.New(
		"geoframe",
		"Batch IP geolocation of CSV columns against MaxMind DB files")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOFRAME_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the hjson config.").
			Envar("GEOFRAME_CONFIG").
			String()

	geolocateCmd = app.Command("geolocate", "Add geolocation columns to CSV.").
			Default()
	geolocateDatabase = geolocateCmd.Arg("database", "Path to the MaxMind DB file.").
				String()
	geolocateInput = geolocateCmd.Arg("input", "Path to CSV file. Stdin if omitted.").
			String()
	geolocateColumn = geolocateCmd.Flag("column", "Name of the column with IP addresses.").
			Short('c').
			Action(markSet("column")).
			String()
	geolocateFields = geolocateCmd.Flag("fields", "Geolocation fields. Can be repeated or comma-separated.").
			Short('f').
			Action(markSet("fields")).
			Strings()
	geolocateMmap = geolocateCmd.Flag("mmap", "Memory-map a database instead of reading it.").
			Action(markSet("mmap")).
			Bool()
	geolocateParallel = geolocateCmd.Flag("parallel", "Resolve chunks on a worker pool.").
				Short('p').
				Action(markSet("parallel")).
				Bool()
	geolocateChunkSize = geolocateCmd.Flag("chunk-size", "Number of rows per worker task.").
				Action(markSet("chunk-size")).
				Int()
	geolocateWorkers = geolocateCmd.Flag("workers", "Size of the worker pool. 0 is a number of cores.").
				Action(markSet("workers")).
				Int()
	geolocateCacheSize = geolocateCmd.Flag("cache-size", "Number of cached addresses. 0 disables a cache.").
				Action(markSet("cache-size")).
				Uint()
	geolocateCacheTTL = geolocateCmd.Flag("cache-ttl", "Time to live of cached addresses.").
				Action(markSet("cache-ttl")).
				Duration()
	geolocateOutput = geolocateCmd.Flag("output", "Path to the output CSV. Stdout if omitted.").
			Short('o').
			String()
	geolocateMetrics = geolocateCmd.Flag("metrics-textfile", "Write prometheus metrics to this file.").
				String()

	inspectCmd      = app.Command("inspect", "Show a full City record for the address.")
	inspectDatabase = inspectCmd.Arg("database", "Path to the MaxMind DB file.").
			Required().
			String()
	inspectIP = inspectCmd.Arg("ip", "IP address.").
			Required().
			String()

	metadataCmd      = app.Command("metadata", "Show database metadata.")
	metadataDatabase = metadataCmd.Arg("database", "Path to the MaxMind DB file.").
				Required().
				String()

	flagsSet = map[string]bool{}
	appFs    = afero.NewOsFs()
)

func markSet(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		flagsSet[name] = true

		return nil
	}
}

func init() {
	app.Version(version)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error

	switch command {
	case geolocateCmd.FullCommand():
		err = runGeolocate(context.Background())
	case inspectCmd.FullCommand():
		err = runInspect()
	case metadataCmd.FullCommand():
		err = runMetadata()
	}

	if err != nil {
		app.Fatalf("%v", err)
	}
}

func runGeolocate(ctx context.Context) error {
	conf, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	appMetrics := newMetrics()
	log := newLogger(os.Stderr, appMetrics)

	reader, dbReader, err := makeReader(conf, log)
	if err != nil {
		return err
	}

	defer dbReader.Close()

	input, err := openInput(appFs, *geolocateInput)
	if err != nil {
		return err
	}

	defer input.Close()

	table, err := frame.ReadCSV(input)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	err = frame.Geolocate(table, conf.GetColumn(), reader, frame.Opts{
		Fields:    conf.GetFields(),
		Parallel:  conf.GetParallel(),
		ChunkSize: conf.GetChunkSize(),
		Workers:   conf.GetWorkers(),
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("cannot geolocate: %w", err)
	}

	output, err := openOutput(appFs, *geolocateOutput)
	if err != nil {
		return err
	}

	if err := table.WriteCSV(output); err != nil {
		output.Close()

		return err
	}

	if err := output.Close(); err != nil {
		return fmt.Errorf("cannot close output: %w", err)
	}

	if *geolocateMetrics != "" {
		return appMetrics.WriteToTextfile(*geolocateMetrics)
	}

	return nil
}

func runInspect() error {
	city, err := readers.InspectCity(*inspectDatabase, *inspectIP)
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, city)
}

func runMetadata() error {
	dbReader, err := readers.Open(*metadataDatabase, readers.ModeMmap)
	if err != nil {
		return err
	}

	defer dbReader.Close()

	meta, err := dbReader.Metadata()
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, meta)
}

func makeConfig(ctx context.Context) (*config, error) {
	conf := &config{}

	if *configPath != "" {
		parsed, err := parseConfig(ctx, appFs, *configPath)
		if err != nil {
			return nil, fmt.Errorf("cannot parse config %s: %w", *configPath, err)
		}

		conf = parsed
	}

	applyFlags(conf)

	return conf, nil
}

// applyFlags overrides config values with flags which were given
// explicitly.
func applyFlags(conf *config) {
	if *geolocateDatabase != "" {
		conf.Database = *geolocateDatabase
	}

	if flagsSet["mmap"] {
		conf.Mode = readers.ModeMemory
		if *geolocateMmap {
			conf.Mode = readers.ModeMmap
		}
	}

	if flagsSet["column"] {
		conf.Column = *geolocateColumn
	}

	if flagsSet["fields"] {
		conf.Fields = splitFields(*geolocateFields)
	}

	if flagsSet["parallel"] {
		conf.Parallel = *geolocateParallel
	}

	if flagsSet["chunk-size"] {
		conf.ChunkSize = *geolocateChunkSize
	}

	if flagsSet["workers"] {
		conf.Workers = *geolocateWorkers
	}

	if flagsSet["cache-size"] {
		conf.CacheSize = *geolocateCacheSize
	}

	if flagsSet["cache-ttl"] {
		conf.CacheTTL.Duration = *geolocateCacheTTL
	}
}
