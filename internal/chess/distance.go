package chess

// Direction indexes a DistanceTable row. The order is fixed:
// N, S, W, E, NW, SE, NE, SW.
type Direction int

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
	NumDirections
)

var directionOffsets = [NumDirections]int{-8, 8, -1, 1, -9, 9, -7, 7}

// Offset returns the index delta of one step in this direction.
func (d Direction) Offset() int {
	return directionOffsets[d]
}

func (d Direction) String() string {
	names := [NumDirections]string{"N", "S", "W", "E", "NW", "SE", "NE", "SW"}
	if d >= 0 && d < NumDirections {
		return names[d]
	}
	return "?"
}

// Direction groups used by the sliding generators.
var (
	AllDirections        = []Direction{North, South, West, East, NorthWest, SouthEast, NorthEast, SouthWest}
	OrthogonalDirections = []Direction{North, South, West, East}
	DiagonalDirections   = []Direction{NorthWest, SouthEast, NorthEast, SouthWest}
)

// DistanceTable holds, per square, the number of squares between it and the
// board edge in each direction.
type DistanceTable [NumSquares][NumDirections]int

// Distances is computed once at start-up and must be treated as read-only.
var Distances = NewDistanceTable()

// NewDistanceTable computes the distance-to-edge table from rank/file arithmetic.
func NewDistanceTable() DistanceTable {
	var table DistanceTable
	for file := 0; file < BoardSize; file++ {
		for row := 0; row < BoardSize; row++ {
			north := row
			south := BoardSize - 1 - row
			west := file
			east := BoardSize - 1 - file

			table[MakeSquare(file, row)] = [NumDirections]int{
				north,
				south,
				west,
				east,
				min(north, west),
				min(south, east),
				min(north, east),
				min(south, west),
			}
		}
	}
	return table
}

// To returns the distance from sq to the edge in direction d.
func (t *DistanceTable) To(sq Square, d Direction) int {
	return t[sq][d]
}
