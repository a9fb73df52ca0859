package editor

import (
	"errors"
	"io/fs"
	"os"
)

// Storage persists documents.
type Storage interface {
	WriteFile(name string, data []byte) error
}

// FileStorage reads and writes files on the local file system.
type FileStorage struct{}

func (FileStorage) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}

// ReadFile returns the content of name. A missing file is not an error:
// it yields nil data and exists == false.
func (FileStorage) ReadFile(name string) (data []byte, exists bool, err error) {
	data, err = os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
