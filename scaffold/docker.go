package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dwhforge/dwhforge/dialect"
)

const composeWarning = "# WARNING: Change default credentials in production!\n"

const dockerfileContent = `# WARNING: Change default credentials in production!
FROM python:3.12-slim
WORKDIR /app
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt
COPY . .
CMD ["python", "src/main.py"]
`

const dockerignoreContent = `# Security
.env
secrets/
*.key
*.pem
*.crt

# Python
__pycache__/
*.pyc
*.pyo
*.pyd
venv/

# Development
.idea/
.vscode/
.DS_Store

# Database
*.db
*.dump
*.bak
`

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]*struct{}      `yaml:"volumes,omitempty"`
}

type composeService struct {
	Build       string            `yaml:"build,omitempty"`
	Image       string            `yaml:"image,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
}

func (b *Builder) writeDockerFiles(dir string) error {
	if err := os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte(dockerfileContent), 0644); err != nil {
		return fmt.Errorf("writing Dockerfile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".dockerignore"), []byte(dockerignoreContent), 0644); err != nil {
		return fmt.Errorf("writing .dockerignore: %w", err)
	}

	content, err := b.composeContent()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "docker-compose.yml"), content, 0644); err != nil {
		return fmt.Errorf("writing docker-compose.yml: %w", err)
	}
	return nil
}

func (b *Builder) composeContent() ([]byte, error) {
	compose := composeFile{
		Services: map[string]composeService{
			"app": {
				Build: ".",
				Ports: []string{"5000:5000"},
			},
		},
	}

	if db, volume, ok := b.dbService(); ok {
		compose.Services["db"] = db
		compose.Volumes = map[string]*struct{}{volume: nil}
	}

	body, err := yaml.Marshal(&compose)
	if err != nil {
		return nil, fmt.Errorf("marshalling docker-compose.yml: %w", err)
	}
	return append([]byte(composeWarning), body...), nil
}

func (b *Builder) dbService() (composeService, string, bool) {
	switch dialect.Kind(b.cfg.Database) {
	case dialect.MSSQL:
		return composeService{
			Image: "mcr.microsoft.com/mssql/server:2019-latest",
			Environment: map[string]string{
				"SA_PASSWORD": "YourStrong!Passw0rd", // CHANGE IN PRODUCTION
				"ACCEPT_EULA": "Y",
			},
			Ports:   []string{"1433:1433"},
			Volumes: []string{"mssql_data:/var/opt/mssql"},
		}, "mssql_data", true
	case dialect.MySQL:
		return composeService{
			Image: "mysql:8",
			Environment: map[string]string{
				"MYSQL_ROOT_PASSWORD": "root", // CHANGE IN PRODUCTION
				"MYSQL_DATABASE":      b.cfg.DatabaseName,
			},
			Ports:   []string{"3306:3306"},
			Volumes: []string{"mysql_data:/var/lib/mysql"},
		}, "mysql_data", true
	case dialect.Postgres:
		return composeService{
			Image: "postgres:16",
			Environment: map[string]string{
				"POSTGRES_DB":       b.cfg.DatabaseName,
				"POSTGRES_PASSWORD": "postgres", // CHANGE IN PRODUCTION
			},
			Ports:   []string{"5432:5432"},
			Volumes: []string{"postgres_data:/var/lib/postgresql/data"},
		}, "postgres_data", true
	}
	return composeService{}, "", false
}
