package godbf

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrFileChanged is returned by SaveInPlace when the source file was modified by
// someone else after it was loaded.
var ErrFileChanged = errors.New("file has changed")

// Save writes the buffer verbatim to fileName, replacing any existing file. The data
// goes to a temporary file next to the target first and is renamed into place.
func (t *Table) Save(fileName string) error {
	if t.buf == nil {
		return ErrClosed
	}
	mode := os.FileMode(0644)
	if stat, err := os.Stat(fileName); err == nil {
		mode = stat.Mode().Perm()
	}
	tmpName := filepath.Join(filepath.Dir(fileName), fmt.Sprintf(".%s.%s.tmp", filepath.Base(fileName), uuid.NewString()))
	f, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if _, err = f.Write(t.buf); err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, fileName)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: save %s: %w", ErrIO, fileName, err)
	}
	if fileName == t.fileName {
		t.fileMd5 = md5String(t.buf)
	}
	return nil
}

// SaveInPlace writes the table back to the file it was loaded from. It refuses to
// overwrite the file if its content changed on disk since the table was loaded.
func (t *Table) SaveInPlace() error {
	if t.fileName == "" {
		return errors.New("table was not loaded from a file")
	}
	changed, err := t.Changed()
	if err != nil {
		return err
	}
	if changed {
		return fmt.Errorf("%w: %s", ErrFileChanged, t.fileName)
	}
	return t.Save(t.fileName)
}

// Changed reports whether the file the table was loaded from differs from the
// content seen at load time or at the last Save.
func (t *Table) Changed() (bool, error) {
	if t.fileName == "" {
		return false, nil
	}
	current, err := getFileMd5(t.fileName)
	if err != nil {
		return false, err
	}
	return current != t.fileMd5, nil
}

func getFileMd5(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func md5String(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
