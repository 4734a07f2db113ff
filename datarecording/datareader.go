package datarecording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// QueryParams selects and orders the rows of a table. Where and OrderBy are
// SQL fragments without their keywords, for example "Receiver = ?" and
// "StartTime DESC".
type QueryParams struct {
	Where   string
	Args    []any
	OrderBy string

	// Limit caps the number of rows. Zero means all of them. Offset only
	// applies together with a Limit.
	Limit  int
	Offset int
}

func (p QueryParams) filter() string {
	if p.Where == "" {
		return ""
	}

	return " WHERE " + p.Where
}

func (p QueryParams) window() string {
	sb := new(strings.Builder)

	if p.OrderBy != "" {
		sb.WriteString(" ORDER BY " + p.OrderBy)
	}

	if p.Limit > 0 {
		fmt.Fprintf(sb, " LIMIT %d", p.Limit)

		if p.Offset > 0 {
			fmt.Fprintf(sb, " OFFSET %d", p.Offset)
		}
	}

	return sb.String()
}

// DataReader reads back the tables of a recording.
type DataReader interface {
	// MapTable tells which struct the rows of a table are read into. A table
	// must be mapped before it is queried.
	MapTable(tableName string, sampleEntry any)

	// ListTables returns the mapped tables, sorted.
	ListTables() []string

	// StoredTables returns the tables present in the file, mapped or not.
	StoredTables(ctx context.Context) ([]string, error)

	// Query returns pointers to the mapped struct, along with the number of
	// rows that match the filter regardless of the limit.
	Query(ctx context.Context, tableName string, params QueryParams) (
		results []any,
		totalCount int,
		err error,
	)

	Close() error
}

// rowMapping places the columns of a table into the fields of a struct.
type rowMapping struct {
	typ    reflect.Type
	fields map[string]int
}

func newRowMapping(sampleEntry any) rowMapping {
	typ := reflect.TypeOf(sampleEntry)
	m := rowMapping{typ: typ, fields: make(map[string]int, typ.NumField())}

	for i := 0; i < typ.NumField(); i++ {
		m.fields[typ.Field(i).Name] = i
	}

	return m
}

// scan reads all the rows. Columns without a matching field are discarded.
func (m rowMapping) scan(rows *sql.Rows) ([]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []any

	for rows.Next() {
		entry := reflect.New(m.typ)
		targets := make([]any, len(columns))

		for i, col := range columns {
			idx, ok := m.fields[col]
			if !ok {
				targets[i] = new(any)
				continue
			}

			targets[i] = entry.Elem().Field(idx).Addr().Interface()
		}

		err = rows.Scan(targets...)
		if err != nil {
			return nil, err
		}

		results = append(results, entry.Interface())
	}

	return results, rows.Err()
}

type sqliteReader struct {
	db       *sql.DB
	mappings map[string]rowMapping
}

// NewReader opens a recording file.
func NewReader(dbFilename string) DataReader {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		panic(err)
	}

	return NewReaderWithDB(db)
}

// NewReaderWithDB reads from an open database.
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:       db,
		mappings: make(map[string]rowMapping),
	}
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	if !tableNameRegexp.MatchString(tableName) {
		panic(fmt.Sprintf("invalid table name %q", tableName))
	}

	r.mappings[tableName] = newRowMapping(sampleEntry)
}

func (r *sqliteReader) ListTables() []string {
	names := make([]string, 0, len(r.mappings))
	for name := range r.mappings {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (r *sqliteReader) StoredTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string

		err = rows.Scan(&name)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

func (r *sqliteReader) Query(
	ctx context.Context,
	tableName string,
	params QueryParams,
) ([]any, int, error) {
	mapping, ok := r.mappings[tableName]
	if !ok {
		return nil, 0, fmt.Errorf("table %s is not mapped", tableName)
	}

	var total int

	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM "+tableName+params.filter(),
		params.Args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT * FROM "+tableName+params.filter()+params.window(),
		params.Args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	results, err := mapping.scan(rows)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}
