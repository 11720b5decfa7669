// Copyright 2026 Prdump Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer assembles records into a JSON array. Records are encoded as they
// arrive; file-backed writers stream them to a temporary file while stream
// writers buffer them in memory. Either way nothing reaches the destination
// until Close succeeds, so a mid-export failure never leaves a truncated
// array behind. An empty output is the literal "[]".
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	count     int
	closeFunc func() error
	abortFunc func() error
}

// NewWriter creates a Writer that buffers the JSON array in memory and
// flushes it to w on Close.
func NewWriter(w io.Writer) *Writer {
	buf := &bytes.Buffer{}
	return &Writer{
		output: buf,
		closeFunc: func() error {
			if _, err := w.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("failed to flush output: %w", err)
			}
			return nil
		},
	}
}

// NewFileWriter creates a Writer that writes the JSON array to a temporary
// file next to filename and atomically renames it into place on Close.
// Readers never observe a partial file: until Close succeeds, filename is
// untouched.
func NewFileWriter(filename string) (*Writer, error) {
	tempFile := filename + ".tmp"

	file, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output: file,
		closeFunc: func() error {
			// Sync to ensure data is flushed to disk before the rename
			if err := file.Sync(); err != nil {
				_ = file.Close()
				_ = os.Remove(tempFile)
				return fmt.Errorf("failed to sync output file: %w", err)
			}
			if err := file.Close(); err != nil {
				_ = os.Remove(tempFile)
				return fmt.Errorf("failed to close output file: %w", err)
			}
			if err := os.Rename(tempFile, filename); err != nil {
				_ = os.Remove(tempFile)
				return fmt.Errorf("failed to rename output file: %w", err)
			}
			return nil
		},
		abortFunc: func() error {
			_ = file.Close()
			_ = os.Remove(tempFile)
			return nil
		},
	}, nil
}

// Write appends a single record to the array. The record is encoded
// immediately; whether it reaches the destination before Close depends on
// the backing writer.
func (w *Writer) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	prefix := "[\n  "
	if w.count > 0 {
		prefix = ",\n  "
	}
	if _, err := io.WriteString(w.output, prefix); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	if _, err := w.output.Write(data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close terminates the array and publishes the result: stream writers
// flush the buffered array, file-backed writers rename the temporary file
// into place.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	terminator := "\n]\n"
	if w.count == 0 {
		terminator = "[]\n"
	}
	if _, err := io.WriteString(w.output, terminator); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}

// Abort discards any partially written output. For file-backed writers the
// temporary file is removed; for stream writers the in-memory buffer is
// dropped. The destination is left untouched either way.
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.abortFunc != nil {
		return w.abortFunc()
	}
	return nil
}
