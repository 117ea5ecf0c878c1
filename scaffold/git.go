package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const gitignoreContent = `# Security
.env
secrets/

# Python
__pycache__/
*.pyc
*.pyo
*.pyd
venv/

# Database
*.db
*.dump
*.bak
`

func initGitRepo(root string) error {
	cmd := exec.Command("git", "init", "-q")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git init: %v: %s", err, out)
	}

	path := filepath.Join(root, ".gitignore")
	if err := os.WriteFile(path, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
