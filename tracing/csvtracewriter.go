package tracing

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter is a Writer that appends recorded entries to a CSV file,
// flushing in batches and registering an atexit hook so a forgotten Close
// still lands the last partial batch on disk.
type CSVTraceWriter struct {
	path string
	file *os.File

	entries    []Entry
	bufferSize int
}

// NewCSVTraceWriter creates a writer rooted at path (without extension). An
// empty path gets a unique name so concurrent runs never collide.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the underlying CSV file, refusing to overwrite one that
// already exists.
func (t *CSVTraceWriter) Init() {
	if t.path == "" {
		t.path = "des_trace_" + xid.New().String()
	}

	filename := t.path + ".csv"

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file, "ID, Where, What, Start, End\n")

	atexit.Register(func() {
		t.Flush()
		t.Close()
	})
}

// Write buffers entry, flushing once the buffer reaches its batch size.
func (t *CSVTraceWriter) Write(entry Entry) {
	t.entries = append(t.entries, entry)
	if len(t.entries) >= t.bufferSize {
		t.Flush()
	}
}

// Flush appends every buffered entry to the CSV file.
func (t *CSVTraceWriter) Flush() {
	for _, e := range t.entries {
		fmt.Fprintf(t.file, "%s, %s, %s, %.10f, %.10f\n",
			e.ID, e.Where, e.What, e.Start, e.End)
	}

	t.entries = nil
}

// Close closes the underlying file. Safe to call more than once.
func (t *CSVTraceWriter) Close() {
	if t.file == nil {
		return
	}

	if err := t.file.Close(); err != nil {
		panic(err)
	}

	t.file = nil
}
