package datarecording

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/tebeka/atexit"
)

// chRecorder records into a ClickHouse server, so that several simulations
// can share one database. Tables are created if they do not exist yet, and
// rows are sent in batches.
type chRecorder struct {
	conn      clickhouse.Conn
	batchSize int

	mu         sync.Mutex
	tables     map[string]*table
	entryCount int
	closed     bool
}

// NewClickHouse connects to a ClickHouse server, for example
// "clickhouse://localhost:9000/radiosim?username=default".
func NewClickHouse(dsn string, batchSize int) DataRecorder {
	opts, err := clickhouseOptions(dsn)
	if err != nil {
		panic(err)
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		panic(fmt.Errorf("connecting to ClickHouse: %w", err))
	}

	err = conn.Ping(context.Background())
	if err != nil {
		panic(fmt.Errorf("connecting to ClickHouse: %w", err))
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	r := &chRecorder{
		conn:      conn,
		batchSize: batchSize,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { r.Flush() })

	return r
}

func clickhouseOptions(dsn string) (*clickhouse.Options, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid ClickHouse DSN: %w", err)
	}

	if opts.DialTimeout == 0 {
		opts.DialTimeout = 30 * time.Second
	}

	opts.MaxOpenConns = 5
	opts.MaxIdleConns = 5
	opts.ConnOpenStrategy = clickhouse.ConnOpenInOrder

	return opts, nil
}

// chColumnType returns the ClickHouse type of a field kind. The kinds are
// the ones accepted by checkEntryType.
func chColumnType(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "Bool"
	case reflect.Int, reflect.Int64:
		return "Int64"
	case reflect.Int8:
		return "Int8"
	case reflect.Int16:
		return "Int16"
	case reflect.Int32:
		return "Int32"
	case reflect.Uint, reflect.Uint64:
		return "UInt64"
	case reflect.Uint8:
		return "UInt8"
	case reflect.Uint16:
		return "UInt16"
	case reflect.Uint32:
		return "UInt32"
	case reflect.Float32:
		return "Float32"
	case reflect.Float64:
		return "Float64"
	default:
		return "String"
	}
}

func chCreateTableQuery(tableName string, structType reflect.Type) string {
	columns := make([]string, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		f := structType.Field(i)
		columns = append(columns, f.Name+" "+chColumnType(f.Type.Kind()))
	}

	return "CREATE TABLE IF NOT EXISTS " + tableName +
		" (" + strings.Join(columns, ", ") + ")" +
		" ENGINE = MergeTree() ORDER BY tuple()"
}

// chRow lists the field values of an entry, widening int and uint to the
// 64-bit types of their columns.
func chRow(entry any) []any {
	v := reflect.ValueOf(entry)
	row := make([]any, v.NumField())

	for i := range row {
		f := v.Field(i)

		switch f.Kind() {
		case reflect.Int:
			row[i] = f.Int()
		case reflect.Uint:
			row[i] = f.Uint()
		default:
			row[i] = f.Interface()
		}
	}

	return row
}

func (r *chRecorder) CreateTable(tableName string, sampleEntry any) {
	if !tableNameRegexp.MatchString(tableName) {
		panic(fmt.Sprintf("invalid table name %q", tableName))
	}

	err := checkEntryType(sampleEntry)
	if err != nil {
		panic(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[tableName]; exists {
		panic(fmt.Sprintf("table %s already exists", tableName))
	}

	structType := reflect.TypeOf(sampleEntry)

	err = r.conn.Exec(context.Background(),
		chCreateTableQuery(tableName, structType))
	if err != nil {
		panic(fmt.Errorf("creating table %s: %w", tableName, err))
	}

	r.tables[tableName] = &table{structType: structType}
}

func (r *chRecorder) InsertData(tableName string, entry any) {
	r.mu.Lock()

	t, exists := r.tables[tableName]
	if !exists {
		r.mu.Unlock()
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.structType {
		r.mu.Unlock()
		panic(fmt.Sprintf("entry of type %T does not match table %s",
			entry, tableName))
	}

	t.entries = append(t.entries, entry)
	r.entryCount++
	full := r.entryCount >= r.batchSize

	r.mu.Unlock()

	if full {
		r.Flush()
	}
}

func (r *chRecorder) ListTables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (r *chRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entryCount == 0 || r.closed {
		return
	}

	ctx := context.Background()

	for name, t := range r.tables {
		if len(t.entries) == 0 {
			continue
		}

		r.sendBatch(ctx, name, t)
	}

	r.entryCount = 0
}

func (r *chRecorder) sendBatch(ctx context.Context, name string, t *table) {
	batch, err := r.conn.PrepareBatch(ctx, "INSERT INTO "+name)
	if err != nil {
		panic(fmt.Errorf("preparing batch for %s: %w", name, err))
	}

	for _, entry := range t.entries {
		err = batch.Append(chRow(entry)...)
		if err != nil {
			panic(fmt.Errorf("appending to %s: %w", name, err))
		}
	}

	err = batch.Send()
	if err != nil {
		panic(fmt.Errorf("sending batch for %s: %w", name, err))
	}

	t.entries = t.entries[:0]
}

func (r *chRecorder) Close() error {
	r.Flush()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	r.closed = true

	return r.conn.Close()
}
