package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePotDifference(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     int
	}{
		{"even position", "<2,0,0,2,2,2,2>", 0},
		{"south ahead", "<2,3,1,1,1,1,1>", 2},
		{"north ahead", "<2,0,2,3,1,1,1>", -2},
		{"south majority saturates", "<2,5,0,1,1,1,1>", ScoreMax},
		{"north majority saturates", "<2,0,5,1,1,1,1>", ScoreMin},
		{"half is not a majority", "<2,4,0,1,1,1,1>", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EvaluatePotDifference(mustParse(t, tt.notation)))
		})
	}
}

func TestEvaluateMaterial(t *testing.T) {
	require.Equal(t, 4+1, EvaluateMaterial(mustParse(t, "<2,3,1,2,1,1,1>")))
	require.Equal(t, ScoreMax, EvaluateMaterial(mustParse(t, "<2,5,0,1,1,1,1>")))
}

func TestEvaluateTerminal(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		mover    Side
		want     int
	}{
		{"south to move with majority", "<2,5,1,0,0,1,1>", South, ScoreMax},
		{"south to move with minority", "<2,3,1,0,0,2,2>", South, ScoreMin},
		{"north to move with majority", "<2,1,5,1,1,0,0>", North, ScoreMin},
		{"north to move with minority", "<2,1,3,2,2,0,0>", North, ScoreMax},
		{"exact half", "<2,4,0,0,0,2,2>", South, 0},
		{"odd total just under half", "<2,2,0,0,0,2,1>", South, ScoreMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EvaluateTerminal(mustParse(t, tt.notation), tt.mover))
		})
	}
}
