package pkgconfig

// Config exposes typed getters over a key space such as "engine.max_workers".
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
	Close() error
}

// Defaults holds the value of every key gobrc reads.
//
//nolint:gochecknoglobals // read-only table
var Defaults = map[string]any{
	"log.level":                            "info",
	"engine.max_workers":                   11,
	"engine.buffer_size":                   1 << 20,
	"input.path":                           "data/measurements.txt",
	"server.address.http":                  ":8080",
	"modules.brc.enabled":                  true,
	"modules.brc.archive.enabled":          false,
	"modules.brc.archive.dir":              "archive",
	"modules.brc.archive.compress":         true,
	"modules.brc.consumer.workers":         2,
	"modules.brc.consumer.max_retries":     3,
	"modules.brc.consumer.base_backoff_ms": 200,
	"harness.runs":                         1,
	"snowflake.node":                       -1,
}
