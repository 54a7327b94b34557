package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hjson/hjson-go/v4"
	"github.com/qri-io/jsonschema"
	"github.com/spf13/afero"

	"github.com/9seconds/geoframe/geolib"
	"github.com/9seconds/geoframe/readers"
)

const (
	DefaultColumn   = "ip"
	DefaultCacheTTL = 10 * time.Minute
)

var configJSONSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "additionalProperties": false,
        "properties": {
            "database": {
                "type": "string",
                "minLength": 1
            },
            "mode": {
                "type": "string",
                "enum": ["memory", "mmap"]
            },
            "column": {
                "type": "string",
                "minLength": 1
            },
            "fields": {
                "type": "array",
                "minItems": 1,
                "items": {
                    "type": "string",
                    "enum": [
                        "country",
                        "city",
                        "state",
                        "postcode",
                        "latitude",
                        "longitude",
                        "accuracy_radius"
                    ]
                }
            },
            "parallel": {
                "type": "boolean"
            },
            "chunk_size": {
                "type": "integer",
                "minimum": 1
            },
            "workers": {
                "type": "integer",
                "minimum": 0
            },
            "cache_size": {
                "type": "integer",
                "minimum": 0
            },
            "cache_ttl": {
                "type": "string",
                "minLength": 2
            }
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Database  string   `json:"database"`
	Mode      string   `json:"mode"`
	Column    string   `json:"column"`
	Fields    []string `json:"fields"`
	Parallel  bool     `json:"parallel"`
	ChunkSize int      `json:"chunk_size"`
	Workers   int      `json:"workers"`
	CacheSize uint     `json:"cache_size"`
	CacheTTL  duration `json:"cache_ttl"`
}

func (c config) GetDatabase() string {
	return c.Database
}

func (c config) GetMode() string {
	if c.Mode == "" {
		return readers.ModeMemory
	}

	return c.Mode
}

func (c config) GetColumn() string {
	if c.Column == "" {
		return DefaultColumn
	}

	return c.Column
}

func (c config) GetFields() []string {
	if len(c.Fields) == 0 {
		return geolib.FieldNames(geolib.DefaultFields)
	}

	return c.Fields
}

func (c config) GetParallel() bool {
	return c.Parallel
}

func (c config) GetChunkSize() int {
	if c.ChunkSize == 0 {
		return geolib.DefaultChunkSize
	}

	return c.ChunkSize
}

func (c config) GetWorkers() int {
	return c.Workers
}

func (c config) GetCacheSize() uint {
	return c.CacheSize
}

func (c config) GetCacheTTL() time.Duration {
	if c.CacheTTL.Duration == 0 {
		return DefaultCacheTTL
	}

	return c.CacheTTL.Duration
}

func parseConfig(ctx context.Context, fs afero.Fs, path string) (*config, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse hjson: %w", err)
	}

	rawBytes, err := json.Marshal(rawMap)
	if err != nil {
		return nil, fmt.Errorf("cannot convert config to json: %w", err)
	}

	errs, err := configJSONSchema.ValidateBytes(ctx, rawBytes)
	if err != nil {
		return nil, fmt.Errorf("cannot validate config: %w", err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errs[0])
	}

	conf := &config{}

	if err := json.Unmarshal(rawBytes, conf); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}

	return conf, nil
}
