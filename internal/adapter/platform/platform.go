package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Platform resolves filesystem paths for the Qdrant data directory.
type Platform struct {
	homeDir string
}

// New creates a Platform rooted at the current user's home directory.
func New() (*Platform, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &Platform{homeDir: home}, nil
}

// ResolveDataDir picks the container storage directory by precedence:
// explicit override, workspace-scoped path, global storage path, user-home
// fallback. The result is fixed once at manager construction; the directory
// itself is only created right before the first container creation.
func (p *Platform) ResolveDataDir(override, workspace string) string {
	if override != "" {
		return override
	}
	if workspace != "" {
		return filepath.Join(workspace, ".vectap", "qdrant")
	}
	return filepath.Join(p.GlobalStorageDir(), "qdrant")
}

// GlobalStorageDir returns the per-user storage root, honoring XDG_DATA_HOME
// the way desktop tooling expects, with a dotdir fallback when no XDG layout
// is available.
func (p *Platform) GlobalStorageDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "vectap")
	}
	if local := filepath.Join(p.homeDir, ".local", "share"); dirExists(local) {
		return filepath.Join(local, "vectap")
	}
	return filepath.Join(p.homeDir, ".vectap")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
