package domain

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// ClueFloor maps a difficulty to the minimum number of givens the generator
// keeps on the board.
func (d Difficulty) ClueFloor() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 34
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty is lenient: unknown labels default to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
