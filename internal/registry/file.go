package registry

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rotisserie/eris"

	"github.com/marketscout/compete-cli/internal/model"
)

// FileRegistry stores competitors in a single JSON document that is
// read and rewritten wholesale on every mutation. There is no file
// locking: concurrent mutating callers can race, which is acceptable
// for single-user CLI usage.
type FileRegistry struct {
	path string
}

type fileDocument struct {
	Competitors map[string]model.Competitor `json:"competitors"`
}

// NewFile creates a file registry at the given path. A missing file
// reads as an empty registry.
func NewFile(path string) *FileRegistry {
	return &FileRegistry{path: path}
}

func (r *FileRegistry) load() (*fileDocument, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return &fileDocument{Competitors: map[string]model.Competitor{}}, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "registry: read %s", r.path)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "registry: parse %s", r.path)
	}
	if doc.Competitors == nil {
		doc.Competitors = map[string]model.Competitor{}
	}
	return &doc, nil
}

func (r *FileRegistry) save(doc *fileDocument) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return eris.Wrap(err, "registry: create config dir")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return eris.Wrap(err, "registry: marshal")
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return eris.Wrapf(err, "registry: write %s", r.path)
	}
	return nil
}

func (r *FileRegistry) Add(_ context.Context, c model.Competitor) error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	doc, err := r.load()
	if err != nil {
		return err
	}
	doc.Competitors[c.Name] = c
	return r.save(doc)
}

func (r *FileRegistry) Get(_ context.Context, name string) (*model.Competitor, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	c, ok := doc.Competitors[name]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *FileRegistry) List(_ context.Context) ([]model.Competitor, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	competitors := make([]model.Competitor, 0, len(doc.Competitors))
	for _, c := range doc.Competitors {
		competitors = append(competitors, c)
	}
	sort.Slice(competitors, func(i, j int) bool {
		return competitors[i].Name < competitors[j].Name
	})
	return competitors, nil
}

func (r *FileRegistry) Remove(_ context.Context, name string) (bool, error) {
	doc, err := r.load()
	if err != nil {
		return false, err
	}
	if _, ok := doc.Competitors[name]; !ok {
		return false, nil
	}
	delete(doc.Competitors, name)
	return true, r.save(doc)
}

func (r *FileRegistry) Migrate(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return eris.Wrap(err, "registry: create config dir")
	}
	return nil
}

func (r *FileRegistry) Close() error { return nil }
