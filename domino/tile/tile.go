package tile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/tile/color"
)

// Key is the orientation-free identity of a tile, Low <= High.
type Key struct {
	Low  int
	High int
}

func NewKey(a, b int) Key {
	if a > b {
		a, b = b, a
	}
	return Key{Low: a, High: b}
}

// Tile is a pip pair. Identity comes from its Key; flipped only records which
// pip currently faces left.
type Tile struct {
	key     Key
	flipped bool
}

func New(left, right int) (Tile, error) {
	if !validPip(left) || !validPip(right) {
		return Tile{}, consts.ErrorsInvalidValue
	}
	return Tile{key: NewKey(left, right), flipped: left > right}, nil
}

func MustNew(left, right int) Tile {
	t, err := New(left, right)
	if err != nil {
		panic(fmt.Sprintf("tile [%d|%d]: %v", left, right, err))
	}
	return t
}

func validPip(pip int) bool {
	return pip >= consts.MinPip && pip <= consts.MaxPip
}

func (t Tile) Left() int {
	if t.flipped {
		return t.key.High
	}
	return t.key.Low
}

func (t Tile) Right() int {
	if t.flipped {
		return t.key.Low
	}
	return t.key.High
}

func (t *Tile) Rotate() {
	t.flipped = !t.flipped
}

func (t Tile) Double() bool {
	return t.key.Low == t.key.High
}

func (t Tile) Has(pip int) bool {
	return t.key.Low == pip || t.key.High == pip
}

func (t Tile) Pips() int {
	return t.key.Low + t.key.High
}

func (t Tile) Key() Key {
	return t.key
}

func (t Tile) Equal(other Tile) bool {
	return t.key == other.key
}

// Is compares against a plain unordered pair.
func (t Tile) Is(a, b int) bool {
	return t.key == NewKey(a, b)
}

func (t Tile) String() string {
	return fmt.Sprintf("[%s|%s]", color.PaintPip(t.Left()), color.PaintPip(t.Right()))
}

// Parse reads "3-5", "3|5" or "[3|5]" as typed at a prompt.
func Parse(s string) (Tile, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	var left, right int
	for _, format := range []string{"%d|%d", "%d-%d", "%d,%d", "%d %d"} {
		if n, _ := fmt.Sscanf(s, format, &left, &right); n == 2 {
			return New(left, right)
		}
	}
	return Tile{}, consts.ErrorsInputInvalid
}

func Sort(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].key.Low != tiles[j].key.Low {
			return tiles[i].key.Low < tiles[j].key.Low
		}
		return tiles[i].key.High < tiles[j].key.High
	})
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.String())
	}
	return strings.Join(ret, " ")
}
