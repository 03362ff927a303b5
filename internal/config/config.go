package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	GitHubToken   string `json:"github_token,omitempty"`
	Language      string `json:"language"`
	Editor        string `json:"editor"`
	DefaultRemote string `json:"default_remote"`
	Workers       int    `json:"workers"`
	PathFile      string `json:"path_file"`
}

const (
	defaultLang    = "en"
	defaultEditor  = "vim"
	defaultRemote  = "origin"
	defaultWorkers = 4
)

// LoadConfig lee la configuración desde path. Si path no es un archivo .json
// se asume que es el home del usuario y se usa ~/.typomate/config.json,
// creándola con valores por defecto si no existe.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".typomate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

// Token devuelve el token configurado, con fallback a la variable de entorno
// GITHUB_TOKEN.
func (c *Config) Token() string {
	if c.GitHubToken != "" {
		return c.GitHubToken
	}
	return os.Getenv("GITHUB_TOKEN")
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:      defaultLang,
		Editor:        defaultEditor,
		DefaultRemote: defaultRemote,
		Workers:       defaultWorkers,
		PathFile:      path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig persiste la configuración en su PathFile.
func SaveConfig(config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}
	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.Editor == "" {
		config.Editor = defaultEditor
	}
	if config.DefaultRemote == "" {
		config.DefaultRemote = defaultRemote
	}
	if config.Workers <= 0 {
		config.Workers = defaultWorkers
	}
}

func validateConfig(config *Config) error {
	if config.Language != "en" && config.Language != "es" {
		return fmt.Errorf("idioma no soportado: %s", config.Language)
	}
	if config.Workers < 1 {
		return fmt.Errorf("la cantidad de workers debe ser al menos 1")
	}
	return nil
}
