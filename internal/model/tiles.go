package model

// Tile is one placeable letter unit: a single letter or one of the
// digraphs CH, LL, RR
type Tile string

const (
	// RackSize is the maximum number of tiles a player holds
	RackSize = 7
	// TotalTiles is the size of the full Spanish tile set
	TotalTiles = 100
)

var letterValues = map[Tile]int{
	"A": 1, "E": 1, "O": 1, "I": 1, "S": 1, "N": 1, "R": 1, "U": 1, "L": 1, "T": 1,
	"D": 2, "G": 2,
	"C": 3, "B": 3, "M": 3, "P": 3,
	"H": 4, "F": 4, "V": 4, "Y": 4,
	"CH": 5, "Q": 5,
	"J": 8, "LL": 8, "Ñ": 8, "RR": 8, "X": 8,
	"Z": 10,
}

// Value returns the face value of the tile; unknown tiles are worth 1
func (t Tile) Value() int {
	if v, ok := letterValues[t]; ok {
		return v
	}
	return 1
}

type tileCount struct {
	tile  Tile
	count int
}

// Ordered so an unshuffled bag is reproducible
var distribution = []tileCount{
	{"A", 12}, {"E", 12}, {"O", 9}, {"I", 6}, {"S", 6},
	{"N", 5}, {"R", 5}, {"U", 5}, {"L", 4}, {"T", 4},
	{"D", 5}, {"G", 2},
	{"C", 4}, {"B", 2}, {"M", 2}, {"P", 2},
	{"H", 2}, {"F", 2}, {"V", 2}, {"Y", 1},
	{"CH", 1}, {"Q", 1}, {"J", 1}, {"LL", 1}, {"Ñ", 1}, {"RR", 1}, {"X", 1}, {"Z", 1},
}

// Distribution returns the number of copies of each tile in a full set
func Distribution() map[Tile]int {
	result := make(map[Tile]int, len(distribution))
	for _, tc := range distribution {
		result[tc.tile] = tc.count
	}
	return result
}

// FullTileSet returns every tile of the set in distribution order
func FullTileSet() []Tile {
	tiles := make([]Tile, 0, TotalTiles)
	for _, tc := range distribution {
		for i := 0; i < tc.count; i++ {
			tiles = append(tiles, tc.tile)
		}
	}
	return tiles
}

// Rack is a player's hand
type Rack []Tile

// Index returns the index of the first copy of the tile, or -1
func (r Rack) Index(tile Tile) int {
	for i, t := range r {
		if t == tile {
			return i
		}
	}
	return -1
}

// Contains returns true if the rack holds at least one copy of the tile
func (r Rack) Contains(tile Tile) bool {
	return r.Index(tile) >= 0
}

// Remove takes the first copy of the tile out of the rack, keeping order
func (r *Rack) Remove(tile Tile) bool {
	i := r.Index(tile)
	if i == -1 {
		return false
	}
	*r = append((*r)[:i], (*r)[i+1:]...)
	return true
}

// IsFull returns true when the rack holds RackSize tiles
func (r Rack) IsFull() bool {
	return len(r) >= RackSize
}

// Clone returns an independent copy of the rack
func (r Rack) Clone() Rack {
	if r == nil {
		return Rack{}
	}
	clone := make(Rack, len(r))
	copy(clone, r)
	return clone
}

// Bag is the shared pool of undrawn tiles. Draws come from the end.
type Bag []Tile

// Pop removes and returns the last tile of the bag
func (b *Bag) Pop() (Tile, bool) {
	n := len(*b)
	if n == 0 {
		return "", false
	}
	tile := (*b)[n-1]
	*b = (*b)[:n-1]
	return tile, true
}

// Push returns a tile to the bag
func (b *Bag) Push(tile Tile) {
	*b = append(*b, tile)
}

// Clone returns an independent copy of the bag
func (b Bag) Clone() Bag {
	if b == nil {
		return Bag{}
	}
	clone := make(Bag, len(b))
	copy(clone, b)
	return clone
}
