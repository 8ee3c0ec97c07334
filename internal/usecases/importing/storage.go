package importing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vfg2006/coop-ratio-api/pkg/utils"
)

// FileStore guarda os arquivos enviados
type FileStore interface {
	Save(content []byte, ext string) (string, error)
	Remove(path string) error
}

type diskStore struct {
	dir string
}

// NewDiskStore grava os arquivos em dir com nomes gerados por nanoid
func NewDiskStore(dir string) FileStore {
	return &diskStore{dir: dir}
}

func (d *diskStore) Save(content []byte, ext string) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de upload: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar nome do arquivo: %w", err)
	}

	path := filepath.Join(d.dir, id+ext)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo: %w", err)
	}
	return path, nil
}

func (d *diskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
