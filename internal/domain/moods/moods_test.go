package moods

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTrend(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected string
	}{
		{"Empty history is stable", []int{}, TrendStable},
		{"Single entry is stable", []int{7}, TrendStable},
		{"Rising scores improve", []int{3, 4, 6, 8}, TrendImproving},
		{"Falling scores decline", []int{9, 8, 5, 4}, TrendDeclining},
		{"Flat scores are stable", []int{6, 6, 6, 6}, TrendStable},
		{"Half point swing is still stable", []int{6, 6, 6, 7}, TrendStable},
		{"Odd length splits before the midpoint", []int{2, 3, 8, 9, 9}, TrendImproving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreTrend(tt.scores))
		})
	}
}

func TestEmotionValid(t *testing.T) {
	assert.True(t, EmotionHappy.Valid())
	assert.True(t, EmotionStressed.Valid())
	assert.False(t, Emotion("ecstatic").Valid())
	assert.False(t, Emotion("").Valid())
}
