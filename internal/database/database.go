// Package database lets xb scripts reach a real SQL database. It is the
// evaluator's sanctioned escape hatch for I/O (spec.md §6: the host MAY
// pre-populate the Environment with native built-ins) and is grounded on
// sentra's internal/database/db_manager.go connection-pool design, wired to
// xb's own value model instead of bare Go maps.
package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mcjo163/xb/internal/value"
)

// Manager owns every open connection a script has asked for, keyed by the
// handle name the script chose.
type Manager struct {
	mu    sync.RWMutex
	conns map[string]*sql.DB
}

func NewManager() *Manager {
	return &Manager{conns: make(map[string]*sql.DB)}
}

var driverNames = map[string]string{
	"sqlite": "sqlite3", "sqlite3": "sqlite3",
	"postgres": "postgres", "postgresql": "postgres",
	"mysql":    "mysql",
	"mssql":    "sqlserver", "sqlserver": "sqlserver",
}

func (m *Manager) Connect(handle, dbType, dsn string) error {
	driver, ok := driverNames[dbType]
	if !ok {
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.conns[handle]; exists {
		return fmt.Errorf("connection %q already exists", handle)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("connect %q: %w", handle, err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("connect %q: %w", handle, err)
	}
	m.conns[handle] = db
	return nil
}

func (m *Manager) get(handle string) (*sql.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	db, ok := m.conns[handle]
	if !ok {
		return nil, fmt.Errorf("no open connection %q", handle)
	}
	return db, nil
}

func (m *Manager) Close(handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	db, ok := m.conns[handle]
	if !ok {
		return fmt.Errorf("no open connection %q", handle)
	}
	delete(m.conns, handle)
	return db.Close()
}

// Query runs a SELECT and returns one Object per row, as an Array, with
// column order preserved (Object is insertion-ordered, so the row's column
// order survives into xb's Display).
func (m *Manager) Query(handle, query string, args []any) (*value.Array, error) {
	db, err := m.get(handle)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []value.Value
	scratch := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range scratch {
		ptrs[i] = &scratch[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		obj := value.NewObject(nil, nil, nil)
		for i, col := range cols {
			obj.Set(col, goToValue(scratch[i]), false)
		}
		out = append(out, obj)
	}
	return value.NewArray(out), rows.Err()
}

// Execute runs a statement that doesn't return rows and reports the number
// of affected rows.
func (m *Manager) Execute(handle, query string, args []any) (int64, error) {
	db, err := m.get(handle)
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("execute failed: %w", err)
	}
	return res.RowsAffected()
}

func goToValue(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.NewEmpty()
	case bool:
		return value.NewBoolean(t)
	case int64:
		return value.NewInt(t)
	case float64:
		return value.NewFloat(t)
	case []byte:
		return value.NewString(string(t))
	case string:
		return value.NewString(t)
	case time.Time:
		return value.NewString(t.Format(time.RFC3339))
	default:
		return value.NewString(fmt.Sprint(t))
	}
}
