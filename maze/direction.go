package maze

// Direction is a cardinal travel direction, also used to index cell walls
type Direction int8

const (
	None  Direction = -1 // No direction (idle / no input)
	North Direction = 0
	East  Direction = 1
	South Direction = 2
	West  Direction = 3
)

// Directions lists the cardinal directions in scan order
var Directions = [4]Direction{North, East, South, West}

// Direction vectors matching North..West
var dirVectors = [4]Point{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

var dirNames = [4]string{"north", "east", "south", "west"}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Delta returns the unit step for d, zero for None
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	v := dirVectors[d]
	return v.X, v.Y
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return None
	}
	return (d + 2) % 4
}

// Perpendicular returns the two directions orthogonal to d
func (d Direction) Perpendicular() (Direction, Direction) {
	if !d.Valid() {
		return None, None
	}
	return (d + 1) % 4, (d + 3) % 4
}

// Vertical reports whether d moves along the Y axis
func (d Direction) Vertical() bool {
	return d == North || d == South
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return dirNames[d]
}

// ParseDirection resolves a lowercase direction name
func ParseDirection(s string) (Direction, bool) {
	for i, name := range dirNames {
		if name == s {
			return Direction(i), true
		}
	}
	return None, false
}

// DirectionBetween returns the direction leading from a to an orthogonally
// adjacent b. ok is false when the points are not Manhattan-adjacent.
func DirectionBetween(a, b Point) (Direction, bool) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		if a.X+dx == b.X && a.Y+dy == b.Y {
			return d, true
		}
	}
	return None, false
}
