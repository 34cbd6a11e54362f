package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Defaults applied by NewFileWriter when the options leave them unset.
const (
	DefaultMaxBytes = 10 * 1024 * 1024
	DefaultMaxFiles = 7
)

// FileOptions tunes rotation for a FileWriter.
type FileOptions struct {
	MaxBytes int64
	MaxFiles int
}

// FileWriter appends log lines to dir/filename, rotating when the file grows
// past MaxBytes or the local day changes. Rotated files are gzip-compressed
// and only the newest MaxFiles archives are kept.
type FileWriter struct {
	mu          sync.Mutex
	dir         string
	filename    string
	maxBytes    int64
	maxFiles    int
	currentFile *os.File
	currentSize int64
	openedDay   string
	now         func() time.Time
	wg          sync.WaitGroup
}

// NewFileWriter creates dir if needed and opens the active log file.
func NewFileWriter(dir, filename string, opts FileOptions) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = DefaultMaxFiles
	}

	fw := &FileWriter{
		dir:      dir,
		filename: filename,
		maxBytes: opts.MaxBytes,
		maxFiles: opts.MaxFiles,
		now:      time.Now,
	}
	if err := fw.openFile(); err != nil {
		return nil, err
	}
	return fw, nil
}

// Path returns the active log file path.
func (fw *FileWriter) Path() string {
	return filepath.Join(fw.dir, fw.filename)
}

func (fw *FileWriter) openFile() error {
	f, err := os.OpenFile(fw.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	fw.currentFile = f
	fw.currentSize = info.Size()
	fw.openedDay = fw.now().Format("2006-01-02")
	return nil
}

func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.currentFile == nil {
		return 0, os.ErrClosed
	}
	if fw.shouldRotate(int64(len(p))) {
		if err := fw.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := fw.currentFile.Write(p)
	fw.currentSize += int64(n)
	return n, err
}

func (fw *FileWriter) shouldRotate(writeSize int64) bool {
	if fw.currentSize > 0 && fw.currentSize+writeSize > fw.maxBytes {
		return true
	}
	return fw.currentSize > 0 && fw.now().Format("2006-01-02") != fw.openedDay
}

func (fw *FileWriter) rotate() error {
	if err := fw.currentFile.Close(); err != nil {
		return fmt.Errorf("close current file: %w", err)
	}
	fw.currentFile = nil

	rotated := fmt.Sprintf("%s.%s", fw.Path(), fw.now().Format("20060102-150405.000"))
	if err := os.Rename(fw.Path(), rotated); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rename log file: %w", err)
	}

	fw.wg.Add(1)
	go func() {
		defer fw.wg.Done()
		compressFile(rotated)
		fw.cleanup()
	}()

	return fw.openFile()
}

func compressFile(path string) {
	in, err := os.Open(path)
	if err != nil {
		return
	}
	defer in.Close()

	gzPath := path + ".gz"
	out, err := os.Create(gzPath)
	if err != nil {
		return
	}
	gz := gzip.NewWriter(out)
	_, copyErr := io.Copy(gz, in)
	closeErr := gz.Close()
	out.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(gzPath)
		return
	}
	os.Remove(path)
}

func (fw *FileWriter) cleanup() {
	matches, err := filepath.Glob(fw.Path() + ".*.gz")
	if err != nil || len(matches) <= fw.maxFiles {
		return
	}
	// Rotation stamps sort lexically in time order.
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-fw.maxFiles] {
		os.Remove(path)
	}
}

// Close waits for pending compression and closes the active file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	f := fw.currentFile
	fw.currentFile = nil
	fw.mu.Unlock()

	fw.wg.Wait()
	if f != nil {
		return f.Close()
	}
	return nil
}
