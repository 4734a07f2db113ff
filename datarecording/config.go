package datarecording

import (
	"fmt"
	"strings"
)

// RecorderConfig selects and configures a recording backend.
type RecorderConfig struct {
	// Path is the SQLite file, without the .sqlite3 extension. Empty means
	// a generated name.
	Path string

	// DSN switches to a ClickHouse server when it starts with
	// "clickhouse://".
	DSN string

	// BatchSize overrides DefaultBatchSize for ClickHouse.
	BatchSize int
}

// UsesClickHouse tells if the config points to a ClickHouse server.
func (c RecorderConfig) UsesClickHouse() bool {
	return strings.HasPrefix(c.DSN, "clickhouse://")
}

// Validate checks that the DSN names a supported backend.
func (c RecorderConfig) Validate() error {
	if c.DSN == "" || c.UsesClickHouse() {
		return nil
	}

	scheme, _, _ := strings.Cut(c.DSN, "://")

	return fmt.Errorf("unsupported recorder %q, only clickhouse:// is", scheme)
}

// NewWithConfig creates the recorder described by c. It panics if the config
// is not valid or the server cannot be reached.
func NewWithConfig(c RecorderConfig) DataRecorder {
	err := c.Validate()
	if err != nil {
		panic(err)
	}

	if c.UsesClickHouse() {
		return NewClickHouse(c.DSN, c.BatchSize)
	}

	return New(c.Path)
}
