package classify

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink is the keyed-file emitter of §4.5/§5: one *os.File per classification
// key, opened append-mode on first use and kept open for the Sink's
// lifetime, flushed after every written line.
type Sink struct {
	dir   string
	files map[string]*os.File
}

// NewSink returns a Sink that writes classification files under dir.
func NewSink(dir string) (*Sink, error) {
	if dir == "" {
		dir = "."
	}
	return &Sink{dir: dir, files: make(map[string]*os.File)}, nil
}

// Emit appends one encoded line to the file named by key, opening it in
// append mode on first use, and flushes to disk before returning (§5:
// "implementation must flush after each written line").
func (s *Sink) Emit(key Key, line string) error {
	name := key.FileName()
	f, ok := s.files[name]
	if !ok {
		var err error
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("classify: open %s: %w", name, ErrSinkIO)
		}
		s.files[name] = f
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("classify: write %s: %w", name, ErrSinkIO)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("classify: flush %s: %w", name, ErrSinkIO)
	}
	return nil
}

// Close closes every file this Sink opened.
func (s *Sink) Close() error {
	var firstErr error
	for name, f := range s.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("classify: close %s: %w", name, ErrSinkIO)
		}
	}
	return firstErr
}

// FilesWritten reports the classification keys this Sink has opened so far.
func (s *Sink) FilesWritten() []string {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	return names
}
