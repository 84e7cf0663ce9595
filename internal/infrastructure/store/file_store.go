// Package store ofrece un almacén clave-valor durable sobre un archivo
// JSON en el directorio de configuración del usuario. Es el equivalente
// local del almacenamiento del navegador: las operaciones nunca fallan
// hacia el llamador; en un entorno sin directorio escribible el almacén
// degrada a no-op (las lecturas devuelven vacío, las escrituras se omiten).
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const storeFile = "session.json"

// FileStore almacén clave-valor respaldado por un único documento JSON.
// Cada escritura reescribe el documento completo con rename atómico, de
// modo que un conjunto de claves escrito en una llamada queda persistido
// junto o no queda persistido en absoluto.
type FileStore struct {
	mu   sync.Mutex
	path string // vacío -> almacén deshabilitado (no-op)
}

// New crea el almacén bajo dir. Con dir vacío usa el directorio de
// configuración del usuario; si no existe ninguno disponible, el almacén
// queda deshabilitado en lugar de fallar.
func New(dir string) *FileStore {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return &FileStore{}
		}
		dir = filepath.Join(base, "inventario")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &FileStore{}
	}
	return &FileStore{path: filepath.Join(dir, storeFile)}
}

// Disabled indica si el almacén opera en modo no-op.
func (s *FileStore) Disabled() bool {
	return s.path == ""
}

// Get devuelve el valor de una clave. Ausencia, archivo ilegible o JSON
// corrupto se reportan igual: valor vacío y ok=false.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	v, ok := doc[key]
	return v, ok
}

// SetMany escribe un conjunto de claves en una sola operación atómica.
func (s *FileStore) SetMany(kv map[string]string) {
	if s.path == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	for k, v := range kv {
		doc[k] = v
	}
	s.write(doc)
}

// DeleteMany elimina un conjunto de claves. Idempotente: borrar claves
// inexistentes no es un error.
func (s *FileStore) DeleteMany(keys ...string) {
	if s.path == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	for _, k := range keys {
		delete(doc, k)
	}
	s.write(doc)
}

func (s *FileStore) read() map[string]string {
	doc := map[string]string{}
	if s.path == "" {
		return doc
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string]string{}
	}
	return doc
}

func (s *FileStore) write(doc map[string]string) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return
	}
	_ = os.Rename(tmp, s.path)
}
