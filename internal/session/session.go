// Package session persists the active workspace/project context between
// runs. The context is an explicit object handed to components; nothing
// reads it ambiently.
package session

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Session is the active workspace/project context
type Session struct {
	WorkspaceID string `yaml:"workspace_id"`
	ProjectID   string `yaml:"project_id"`
	Layout      string `yaml:"layout,omitempty"`
}

// Store loads and saves the session context
type Store interface {
	Load() (Session, error)
	Save(Session) error
}

// FileStore keeps the session in a yaml file under the app directory
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to ~/.phoenix/session.yaml
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(home, ".phoenix", "session.yaml")}, nil
}

// NewFileStoreAt creates a store writing to an explicit path
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored session. A missing or unreadable file yields the
// zero session rather than an error; the caller falls back to the first
// workspace/project.
func (s *FileStore) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, nil
	}
	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return Session{}, nil
	}
	return sess, nil
}

// Save writes the session, creating the directory if needed
func (s *FileStore) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
