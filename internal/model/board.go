package model

import (
	"encoding/json"
	"fmt"
)

const (
	// BoardSize is the grid dimension of the board (15x15)
	BoardSize = 15
	// CenterRow and CenterCol locate the starting cell
	CenterRow = 7
	CenterCol = 7
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Center returns the position of the starting cell
func Center() Position {
	return Position{Row: CenterRow, Col: CenterCol}
}

// Advance returns the position n steps along the given direction
func (p Position) Advance(dir Direction, n int) Position {
	dr, dc := dir.Step()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Direction is the axis along which a word is laid out
type Direction string

const (
	Horizontal Direction = "H" // left-to-right
	Vertical   Direction = "V" // top-to-bottom
)

// IsValid returns true for H or V
func (d Direction) IsValid() bool {
	return d == Horizontal || d == Vertical
}

// Step returns the row and column delta of a single step along the direction
func (d Direction) Step() (int, int) {
	if d == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Perpendicular returns the crossing direction
func (d Direction) Perpendicular() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// BonusKind marks a premium cell
type BonusKind string

const (
	BonusNone         BonusKind = ""
	BonusDoubleLetter BonusKind = "2L"
	BonusTripleLetter BonusKind = "3L"
	BonusDoubleWord   BonusKind = "2P"
	BonusTripleWord   BonusKind = "3P"
)

// LetterMultiplier returns the factor applied to a tile placed on the cell
func (b BonusKind) LetterMultiplier() int {
	switch b {
	case BonusDoubleLetter:
		return 2
	case BonusTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the factor applied to the whole word
func (b BonusKind) WordMultiplier() int {
	switch b {
	case BonusDoubleWord:
		return 2
	case BonusTripleWord:
		return 3
	default:
		return 1
	}
}

var bonusLayout = map[BonusKind][]Position{
	BonusTripleWord: {
		{0, 0}, {0, 7}, {0, 14},
		{7, 0}, {7, 7}, {7, 14},
		{14, 0}, {14, 7}, {14, 14},
	},
	BonusDoubleWord: {
		{1, 1}, {2, 2}, {3, 3}, {4, 4},
		{1, 13}, {2, 12}, {3, 11}, {4, 10},
		{10, 4}, {11, 3}, {12, 2}, {13, 1},
		{10, 10}, {11, 11}, {12, 12}, {13, 13},
	},
	BonusTripleLetter: {
		{1, 5}, {1, 9},
		{5, 1}, {5, 5}, {5, 9}, {5, 13},
		{9, 1}, {9, 5}, {9, 9}, {9, 13},
		{13, 5}, {13, 9},
	},
	BonusDoubleLetter: {
		{0, 3}, {0, 11},
		{2, 6}, {2, 8},
		{3, 0}, {3, 7}, {3, 14},
		{6, 2}, {6, 6}, {6, 8}, {6, 12},
		{7, 3}, {7, 11},
		{8, 2}, {8, 6}, {8, 8}, {8, 12},
		{11, 0}, {11, 7}, {11, 14},
		{12, 6}, {12, 8},
		{14, 3}, {14, 11},
	},
}

var bonusIndex = func() map[Position]BonusKind {
	idx := make(map[Position]BonusKind)
	for kind, positions := range bonusLayout {
		for _, pos := range positions {
			idx[pos] = kind
		}
	}
	return idx
}()

// BonusAt returns the premium of a cell, BonusNone when it has none.
// It depends on coordinates only.
func BonusAt(row, col int) BonusKind {
	return bonusIndex[Position{Row: row, Col: col}]
}

// Cell is a single board square. The bonus is fixed when the board is built.
type Cell struct {
	tile  Tile
	bonus BonusKind
}

// Tile returns the placed tile, or "" if the cell is empty
func (c Cell) Tile() Tile {
	return c.tile
}

// Bonus returns the cell's premium
func (c Cell) Bonus() BonusKind {
	return c.bonus
}

// IsEmpty returns true if no tile has been placed on the cell
func (c Cell) IsEmpty() bool {
	return c.tile == ""
}

// Board is the shared 15x15 playing grid
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoard creates an empty board with the bonus layout applied
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.cells[row][col] = Cell{bonus: BonusAt(row, col)}
		}
	}
	return b
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// Cell returns the cell at the given position, or a zero Cell when out of bounds
func (b *Board) Cell(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Cell{}
	}
	return b.cells[pos.Row][pos.Col]
}

// Get returns the tile at the given position, or "" if empty or out of bounds
func (b *Board) Get(pos Position) Tile {
	return b.Cell(pos).tile
}

// Set places a tile at the given position
func (b *Board) Set(pos Position, tile Tile) {
	if b.IsValidPosition(pos) {
		b.cells[pos.Row][pos.Col].tile = tile
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == ""
}

// Bonus returns the premium of the cell at the given position
func (b *Board) Bonus(pos Position) BonusKind {
	return b.Cell(pos).bonus
}

// IsBlank returns true if no tile has been played yet
func (b *Board) IsBlank() bool {
	return b.TileCount() == 0
}

// TileCount returns the number of tiles on the board
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].tile != "" {
				count++
			}
		}
	}
	return count
}

// Occupied returns every position holding a tile, in row-major order
func (b *Board) Occupied() []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].tile != "" {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Tiles returns the placed tiles row by row; empty cells are ""
func (b *Board) Tiles() [][]Tile {
	rows := make([][]Tile, BoardSize)
	for row := 0; row < BoardSize; row++ {
		rows[row] = make([]Tile, BoardSize)
		for col := 0; col < BoardSize; col++ {
			rows[row][col] = b.cells[row][col].tile
		}
	}
	return rows
}

// MarshalJSON stores only the tiles; bonuses are derived from geometry
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Tiles())
}

// UnmarshalJSON rebuilds the board layout and restores the tiles
func (b *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Tile
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) != BoardSize {
		return fmt.Errorf("board must have %d rows, got %d", BoardSize, len(rows))
	}
	*b = *NewBoard()
	for row, tiles := range rows {
		if len(tiles) != BoardSize {
			return fmt.Errorf("board row %d must have %d cells, got %d", row, BoardSize, len(tiles))
		}
		for col, tile := range tiles {
			b.cells[row][col].tile = tile
		}
	}
	return nil
}
