package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

// SelectionRepository stores the selection slot as a JSON array in a single file.
type SelectionRepository struct {
	path string
}

func NewSelectionRepository(path string) *SelectionRepository {
	return &SelectionRepository{path: path}
}

func (r *SelectionRepository) Load(_ context.Context) ([]domain.SelectedSeatInfo, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.SelectedSeatInfo{}, nil
		}

		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}

	var seats []domain.SelectedSeatInfo
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, fmt.Errorf("failed to decode selection file %s: %w", r.path, err)
	}

	return seats, nil
}

// Save writes a temporary file next to the slot and renames it into place.
func (r *SelectionRepository) Save(_ context.Context, seats []domain.SelectedSeatInfo) error {
	data, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp selection file: %w", err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write selection: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close selection file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace selection file: %w", err)
	}

	return nil
}
