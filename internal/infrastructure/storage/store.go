package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
)

var _ ports.SaveStore = (*Store)(nil)

// Store persiste los RepoSave en un archivo JSON bajo ~/.typomate. Se carga
// completo al construirse y se reescribe en cada Save.
type Store struct {
	path  string
	mu    sync.Mutex
	saves map[string]models.RepoSave
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error obteniendo home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".typomate", "saves.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creando directorio de almacenamiento: %w", err)
	}

	store := &Store{
		path:  path,
		saves: make(map[string]models.RepoSave),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("error leyendo almacenamiento: %w", err)
	}

	if err := json.Unmarshal(data, &store.saves); err != nil {
		return nil, fmt.Errorf("error deserializando almacenamiento: %w", err)
	}
	return store, nil
}

// Get devuelve el save guardado para el repositorio, si existe.
func (s *Store) Get(repoName string) (models.RepoSave, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[repoName]
	return save, ok
}

// Save guarda el fix del repositorio y vuelca todo el mapa a disco.
func (s *Store) Save(repoName string, save models.RepoSave) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves[repoName] = save
	return s.flush()
}

// All devuelve una copia de todos los saves pendientes.
func (s *Store) All() map[string]models.RepoSave {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.RepoSave, len(s.saves))
	for name, save := range s.saves {
		out[name] = save
	}
	return out
}

// Delete elimina el save de un repositorio ya procesado.
func (s *Store) Delete(repoName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.saves, repoName)
	return s.flush()
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.saves, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializando almacenamiento: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error guardando almacenamiento: %w", err)
	}
	return nil
}
