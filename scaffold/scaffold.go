// Package scaffold creates the on-disk project structure around the
// generated DDL: directories, Docker files, environment setup scripts and
// an optional git repository.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dwhforge/dwhforge/config"
)

// Builder materializes a project from its configuration.
type Builder struct {
	cfg *config.ProjectConfig
}

// New returns a builder for the given configuration. The configuration is
// expected to be validated already.
func New(cfg *config.ProjectConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build creates the project directory tree and all auxiliary files. It
// refuses to touch an existing project directory.
func (b *Builder) Build() (string, error) {
	root, err := b.secureRoot()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(root); err == nil {
		return "", fmt.Errorf("project directory already exists: %s", root)
	}

	dirs := []string{"sql", "src", "docs", "scripts"}
	if b.cfg.Docker {
		dirs = append(dirs, "docker")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("creating project root: %w", err)
	}
	for _, dir := range dirs {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			return "", fmt.Errorf("creating %s folder: %w", dir, err)
		}
	}

	if b.cfg.Docker {
		if err := b.writeDockerFiles(filepath.Join(root, "docker")); err != nil {
			return "", err
		}
	}
	if err := b.writeScripts(filepath.Join(root, "scripts")); err != nil {
		return "", err
	}
	if b.cfg.GitInit {
		if err := initGitRepo(root); err != nil {
			return "", err
		}
	}

	return root, nil
}

// secureRoot resolves the project root and rejects project names that
// would escape the base directory.
func (b *Builder) secureRoot() (string, error) {
	base, err := filepath.Abs(b.cfg.BaseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	root := filepath.Clean(filepath.Join(base, b.cfg.ProjectName))

	rel, err := filepath.Rel(base, root)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("project path escapes base directory %s", base)
	}
	return root, nil
}
