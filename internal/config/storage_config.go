package config

import (
	"os"
	"path/filepath"
)

const (
	folderEnvVar     = "DATA_FOLDER"
	passphraseEnvVar = "TOKEN_PASSPHRASE"
	profileDirName   = "boarding-client"
)

type Storage struct{}

var _ StorageConfig = Storage{}

// GetDataFolder returns the profile scoped folder holding the persisted token
func (Storage) GetDataFolder() string {
	if folder := os.Getenv(folderEnvVar); folder != "" {
		return folder
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "data")
	}
	return filepath.Join(dir, profileDirName)
}

func (Storage) GetTokenPassphrase() string {
	return GetEnv(passphraseEnvVar, "")
}
