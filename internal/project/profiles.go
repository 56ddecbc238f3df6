// Package project persists named configuration profiles and application
// settings. A profile bundles the joint and back-panel configuration a body
// is resolved with; absence of either file falls back to the documented
// defaults and is never an error.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/woodshop-tools/panelforge/internal/model"
)

// DefaultProfilesDir returns the default directory for storing profiles.
func DefaultProfilesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "panelforge", "profiles"), nil
}

// Store reads and writes configuration profiles under a base directory.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir. An empty dir selects the default
// profiles directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultProfilesDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Store{Dir: dir}, nil
}

func (s *Store) jointPath(profileID string) string {
	return filepath.Join(s.Dir, profileID, "joint.json")
}

func (s *Store) backPath(profileID string) string {
	return filepath.Join(s.Dir, profileID, "back.json")
}

// JointConfig loads the joint configuration of a profile. A missing file
// yields DefaultJointConfig with no error.
func (s *Store) JointConfig(profileID string) (model.JointConfig, error) {
	data, err := os.ReadFile(s.jointPath(profileID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultJointConfig(), nil
		}
		return model.JointConfig{}, err
	}

	var cfg model.JointConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.JointConfig{}, fmt.Errorf("profile %s: invalid joint config: %w", profileID, err)
	}
	if err := cfg.Validate(); err != nil {
		return model.JointConfig{}, fmt.Errorf("profile %s: %w", profileID, err)
	}
	return cfg, nil
}

// SaveJointConfig persists the joint configuration of a profile, creating
// missing directories.
func (s *Store) SaveJointConfig(profileID string, cfg model.JointConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.writeJSON(s.jointPath(profileID), cfg)
}

// BackPanelConfig loads the back-panel configuration of a profile. A
// missing file yields DefaultBackPanelConfig with no error.
func (s *Store) BackPanelConfig(profileID string) (model.BackPanelConfig, error) {
	data, err := os.ReadFile(s.backPath(profileID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultBackPanelConfig(), nil
		}
		return model.BackPanelConfig{}, err
	}

	var cfg model.BackPanelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.BackPanelConfig{}, fmt.Errorf("profile %s: invalid back panel config: %w", profileID, err)
	}
	return cfg, nil
}

// SaveBackPanelConfig persists the back-panel configuration of a profile.
func (s *Store) SaveBackPanelConfig(profileID string, cfg model.BackPanelConfig) error {
	return s.writeJSON(s.backPath(profileID), cfg)
}

// ListProfiles returns the ids of all stored profiles, in directory order.
func (s *Store) ListProfiles() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

func (s *Store) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
