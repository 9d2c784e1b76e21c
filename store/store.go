// Package store is a file-per-key JSON store standing in for a browser's
// local storage. Reads fall back to caller defaults and writes are
// best-effort; a broken data directory degrades the app to in-memory state
// instead of failing requests.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type Store struct {
	dir string
}

func Open(dir string) *Store {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Println(err)
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Read decodes the value stored under key into out and reports whether it
// succeeded. On a missing file, unreadable storage or JSON that does not fit
// out's shape it logs and returns false, leaving out untouched so the caller
// keeps its default.
func (s *Store) Read(key string, out interface{}) bool {
	path, ok := s.path(key)
	if !ok {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println(err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Println("corrupt value under", key+":", err)
		return false
	}

	return true
}

// Write serializes v under key. Failures are logged and swallowed; the
// previous stored state is left unchanged.
func (s *Store) Write(key string, v interface{}) {
	path, ok := s.path(key)
	if !ok {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Println(err)
		return
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Println(err)
		return
	}

	if err := os.Rename(tmp, path); err != nil {
		log.Println(err)
	}
}

func (s *Store) Delete(key string) {
	path, ok := s.path(key)
	if !ok {
		return
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Println(err)
	}
}

func (s *Store) path(key string) (string, bool) {
	if !keyPattern.MatchString(key) {
		log.Println("invalid store key:", key)
		return "", false
	}
	return filepath.Join(s.dir, key+".json"), true
}
