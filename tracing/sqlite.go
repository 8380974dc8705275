package tracing

import (
	"database/sql"
	"os"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/tebeka/atexit"
)

// SQLiteTraceWriter is a Writer that batches recorded entries into a SQLite
// database, one row per entry, committing a transaction per batch rather
// than per row.
type SQLiteTraceWriter struct {
	db        *sql.DB
	statement *sql.Stmt
	path      string

	batchSize int
	entries   []Entry
}

// NewSQLiteTraceWriter creates a writer rooted at path (without extension).
func NewSQLiteTraceWriter(path string) *SQLiteTraceWriter {
	return &SQLiteTraceWriter{
		path:      path,
		batchSize: 50000,
	}
}

// Init creates (or replaces) the database file and its trace table.
func (w *SQLiteTraceWriter) Init() {
	filename := w.path + ".sqlite3"

	if _, err := os.Stat(filename); err == nil {
		if err := os.Remove(filename); err != nil {
			panic(err)
		}
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}
	w.db = db

	w.createTable()
	w.prepareStatement()

	atexit.Register(func() {
		w.Flush()
		w.Close()
	})
}

func (w *SQLiteTraceWriter) createTable() {
	const stmt = `
	create table trace (
		id integer not null primary key,
		event_id text,
		where_ text,
		what_ text,
		start real,
		end_ real
	);
	`

	if _, err := w.db.Exec(stmt); err != nil {
		panic(err)
	}
}

func (w *SQLiteTraceWriter) prepareStatement() {
	const stmt = `
	insert into trace(event_id, where_, what_, start, end_)
	values(?, ?, ?, ?, ?)
	`

	var err error
	w.statement, err = w.db.Prepare(stmt)
	if err != nil {
		panic(err)
	}
}

// Write buffers entry, flushing once the buffer reaches its batch size.
func (w *SQLiteTraceWriter) Write(entry Entry) {
	w.entries = append(w.entries, entry)
	if len(w.entries) >= w.batchSize {
		w.Flush()
	}
}

// Flush commits every buffered entry in a single transaction.
func (w *SQLiteTraceWriter) Flush() {
	if len(w.entries) == 0 {
		return
	}

	tx, err := w.db.Begin()
	if err != nil {
		panic(err)
	}

	for _, e := range w.entries {
		if _, err := tx.Stmt(w.statement).Exec(e.ID, e.Where, e.What, e.Start, e.End); err != nil {
			panic(err)
		}
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}

	w.entries = w.entries[:0]
}

// Close closes the prepared statement and the database handle.
func (w *SQLiteTraceWriter) Close() {
	if w.statement != nil {
		w.statement.Close()
		w.statement = nil
	}

	if w.db != nil {
		if err := w.db.Close(); err != nil {
			panic(err)
		}
		w.db = nil
	}
}
