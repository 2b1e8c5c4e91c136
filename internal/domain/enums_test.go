package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClueFloorOrdering(t *testing.T) {
	assert.Equal(t, 40, Easy.ClueFloor())
	assert.Equal(t, 34, Medium.ClueFloor())
	assert.Equal(t, 28, Hard.ClueFloor())
	assert.Equal(t, 24, Expert.ClueFloor())
}

func TestParseDifficultyRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		assert.Equal(t, d, ParseDifficulty(d.String()))
	}
}

func TestParseDifficultyLenient(t *testing.T) {
	assert.Equal(t, Medium, ParseDifficulty(""))
	assert.Equal(t, Medium, ParseDifficulty("nightmare"))
}
