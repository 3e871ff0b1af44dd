package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/deck/internal/validate"
)

// DefaultPath is where the state file lives unless configured otherwise.
const DefaultPath = "~/.config/deck/state.json"

// Data represents the structure of the state file.
type Data struct {
	// Theme is the persisted theme preference; anything other than "light"
	// means dark.
	Theme      string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	InstanceID string `json:"instance_id,omitempty" validate:"omitempty,uuid4"`
}

// Storage handles the loading and saving of the state file.
type Storage struct {
	Path string `validate:"required,filepath"`
	Data Data
}

// NewStorage creates a new Storage instance, loading the file if it exists.
func NewStorage(path string) (*Storage, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Storage{Path: expandedPath}

	if err := s.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Ensure InstanceID present: if not present in storage, generate one.
	if s.Data.InstanceID == "" {
		s.Data.InstanceID = uuid.NewString()
	}

	return s, nil
}

// NewOrExistingStorage returns existing storage if the file exists, or creates a new one otherwise.
// When creating a new storage, it writes the initial structure to disk immediately.
func NewOrExistingStorage(path string) (*Storage, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return NewStorage(path)
	} else if os.IsNotExist(err) {
		s, err := NewStorage(path)
		if err != nil {
			return nil, err
		}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, err
}

func (s *Storage) Load() error {
	logrus.Debug("Loading state file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &s.Data); err != nil {
		return err
	}

	// Validate loaded data and self-heal when possible.
	if err := validate.Struct(s.Data); err != nil {
		changed := false
		if s.Data.InstanceID == "" || validate.Var(s.Data.InstanceID, "uuid4") != nil {
			s.Data.InstanceID = uuid.NewString()
			changed = true
		}
		if s.Data.Theme != "" && validate.Var(s.Data.Theme, "oneof=light dark") != nil {
			logrus.Warn("Invalid theme found in state file; clearing.")
			s.Data.Theme = ""
			changed = true
		}
		if changed {
			if err := s.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the state data to the file.
func (s *Storage) Save() error {
	logrus.Debug("Saving state file to: ", s.Path)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path, data, 0o600)
}

// LoadTheme implements theme.Store.
func (s *Storage) LoadTheme() (string, error) {
	return s.Data.Theme, nil
}

// SaveTheme implements theme.Store.
func (s *Storage) SaveTheme(name string) error {
	s.Data.Theme = name
	return s.Save()
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
