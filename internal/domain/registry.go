package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
)

var ErrCheckpointNotFound = errors.New("checkpoint not found")

// slugPattern restricts checkpoint ids to the characters QR codes carry.
var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Checkpoint is one physical location a round passes through. The id is the
// slug encoded in the QR code at the checkpoint.
type Checkpoint struct {
	ID    string `json:"id"`
	Grupo string `json:"grupo"`
	Local string `json:"local"`
}

// Registry is the fixed id -> checkpoint mapping, loaded once at startup and
// never mutated afterwards.
type Registry struct {
	checkpoints map[string]Checkpoint
}

// defaultCheckpoints is the compiled-in table for the MDC site.
var defaultCheckpoints = map[string]Checkpoint{
	"adm__portaria":       {ID: "adm__portaria", Grupo: "ADM", Local: "Portaria"},
	"adm__cozinha":        {ID: "adm__cozinha", Grupo: "ADM", Local: "Cozinha"},
	"adm__alojamento":     {ID: "adm__alojamento", Grupo: "ADM", Local: "Alojamento"},
	"adm__administrativo": {ID: "adm__administrativo", Grupo: "ADM", Local: "Administrativo"},
	"operacao__resumo":    {ID: "operacao__resumo", Grupo: "Operação", Local: "Resumo"},
	"operacao__linha":     {ID: "operacao__linha", Grupo: "Operação", Local: "Linha"},
	"operacao__cava":      {ID: "operacao__cava", Grupo: "Operação", Local: "Cava"},
	"operacao__bota-fora": {ID: "operacao__bota-fora", Grupo: "Operação", Local: "Bota-Fora"},
}

func DefaultRegistry() *Registry {
	return &Registry{checkpoints: defaultCheckpoints}
}

// NewRegistry builds a registry from an explicit checkpoint list, rejecting
// duplicate or malformed ids.
func NewRegistry(checkpoints []Checkpoint) (*Registry, error) {
	m := make(map[string]Checkpoint, len(checkpoints))
	for _, cp := range checkpoints {
		if !slugPattern.MatchString(cp.ID) {
			return nil, fmt.Errorf("invalid checkpoint id %q", cp.ID)
		}
		if _, ok := m[cp.ID]; ok {
			return nil, fmt.Errorf("duplicate checkpoint id %q", cp.ID)
		}
		m[cp.ID] = cp
	}
	return &Registry{checkpoints: m}, nil
}

// LoadRegistryFile reads a JSON map of id -> {grupo, local} and returns the
// registry it defines, replacing the compiled-in table entirely.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	var raw map[string]struct {
		Grupo string `json:"grupo"`
		Local string `json:"local"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}

	checkpoints := make([]Checkpoint, 0, len(raw))
	for id, cp := range raw {
		checkpoints = append(checkpoints, Checkpoint{ID: id, Grupo: cp.Grupo, Local: cp.Local})
	}
	return NewRegistry(checkpoints)
}

// Resolve looks up a checkpoint by exact id match. No fuzzy matching and no
// case normalization; ids arrive pre-normalized from the QR code.
func (r *Registry) Resolve(id string) (Checkpoint, error) {
	cp, ok := r.checkpoints[id]
	if !ok {
		return Checkpoint{}, ErrCheckpointNotFound
	}
	return cp, nil
}

// IDs returns all known checkpoint ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.checkpoints))
	for id := range r.checkpoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
