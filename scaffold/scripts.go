package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dwhforge/dwhforge/dialect"
)

func (b *Builder) writeScripts(dir string) error {
	envName := dialect.Sanitize(b.cfg.ProjectName+"_env", dialect.Generic)

	for _, target := range b.cfg.Scripts {
		switch target {
		case "mac":
			content := fmt.Sprintf(`#!/bin/bash
python -m venv %[1]s
source %[1]s/bin/activate
pip install --upgrade pip
[ -f requirements.txt ] && pip install -r requirements.txt
echo "Activate with: source %[1]s/bin/activate"
`, envName)
			path := filepath.Join(dir, "setup_mac.sh")
			if err := os.WriteFile(path, []byte(content), 0755); err != nil {
				return fmt.Errorf("writing setup_mac.sh: %w", err)
			}
		case "win":
			content := fmt.Sprintf(`@echo off
python -m venv %[1]s
call %[1]s\Scripts\activate.bat
python -m pip install --upgrade pip
if exist requirements.txt pip install -r requirements.txt
echo Activate with: %[1]s\Scripts\activate.bat
pause
`, envName)
			path := filepath.Join(dir, "setup_win.bat")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing setup_win.bat: %w", err)
			}
		}
	}
	return nil
}
