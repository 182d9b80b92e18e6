package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Move errors
	ErrNotInDictionary  = errors.New("word not in dictionary")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrMissingTile      = errors.New("missing tile")
	ErrInvalidDirection = errors.New("direction must be H or V")

	// Exchange errors
	ErrTileNotInRack = errors.New("tile not in rack")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// MissingTileError reports the first tile a player tried to place without holding it
type MissingTileError struct {
	Tile Tile
}

func (e *MissingTileError) Error() string {
	return fmt.Sprintf("missing tile: %s", e.Tile)
}

func (e *MissingTileError) Unwrap() error {
	return ErrMissingTile
}
