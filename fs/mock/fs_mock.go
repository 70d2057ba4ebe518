package mock

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ZacxDev/itemsort/fs"
	"github.com/bmatcuk/doublestar/v4"
)

var _ fs.FileSystem = (*MockFileSystem)(nil)

type MockFile struct {
	*bytes.Buffer
	ReadOnly bool
}

type mockFileInfo struct {
	name string
	mode os.FileMode
	size int64
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// MockFileSystem implements the FileSystem interface for testing
type MockFileSystem struct {
	Files    map[string]*MockFile
	Dirs     map[string]bool
	fileMode map[string]os.FileMode
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:    make(map[string]*MockFile),
		Dirs:     make(map[string]bool),
		fileMode: make(map[string]os.FileMode),
	}
}

// AddFile is a test helper that stores content under filename.
func (m *MockFileSystem) AddFile(filename, content string) {
	m.Files[filename] = &MockFile{Buffer: bytes.NewBufferString(content)}
	m.fileMode[filename] = 0644
}

func (m *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if file, ok := m.Files[filename]; ok {
		if file.ReadOnly {
			return nil, os.ErrPermission
		}
		return file.Bytes(), nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if file, ok := m.Files[filename]; ok && file.ReadOnly {
		return os.ErrPermission
	}
	m.Files[filename] = &MockFile{Buffer: bytes.NewBuffer(data)}
	m.fileMode[filename] = perm

	return nil
}

func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.Dirs[path] = true
	return nil
}

func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if file, ok := m.Files[name]; ok {
		return &mockFileInfo{name: filepath.Base(name), mode: m.fileMode[name], size: int64(file.Len())}, nil
	}
	if m.Dirs[name] {
		return &mockFileInfo{name: filepath.Base(name), mode: os.ModeDir | 0755}, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) DoublestarGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	var matches []string
	for filename := range m.Files {
		matched, err := doublestar.Match(pattern, filename)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, filename)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
