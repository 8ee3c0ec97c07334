package ratioclient

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Tokens é o par emitido pelo login
type Tokens struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	UserRole string `json:"userRole,omitempty"`
}

// TokenStore guarda os tokens entre requisições
type TokenStore interface {
	Load() (Tokens, error)
	Save(tokens Tokens) error
	Clear() error
}

type MemoryStore struct {
	mu     sync.RWMutex
	tokens Tokens
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (Tokens, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokens, nil
}

func (m *MemoryStore) Save(tokens Tokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = tokens
	return nil
}

func (m *MemoryStore) Clear() error {
	return m.Save(Tokens{})
}

// FileStore persiste os tokens em um arquivo JSON com permissão 0600
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load devolve tokens vazios quando o arquivo ainda não existe
func (f *FileStore) Load() (Tokens, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var tokens Tokens
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return tokens, nil
	}
	if err != nil {
		return tokens, errors.Wrap(err, "ratioclient: erro ao ler arquivo de tokens")
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		return tokens, errors.Wrap(err, "ratioclient: arquivo de tokens inválido")
	}
	return tokens, nil
}

func (f *FileStore) Save(tokens Tokens) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "ratioclient: erro ao criar diretório de tokens")
	}

	// grava em arquivo temporário e renomeia para não deixar o arquivo pela metade
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "ratioclient: erro ao gravar tokens")
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
