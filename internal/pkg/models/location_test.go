package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattanDistance(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Location
		expected int
	}{
		{"Classic 3-4", Location{0, 0}, Location{3, 4}, 7},
		{"Same Location", Location{3, 4}, Location{3, 4}, 0},
		{"Negative Coordinates", Location{-2, -3}, Location{1, 1}, 7},
		{"Single Axis", Location{0, 0}, Location{0, 9}, 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ManhattanDistance(tc.a, tc.b))
			// Distance is symmetric.
			assert.Equal(t, tc.expected, ManhattanDistance(tc.b, tc.a))
		})
	}
}

func TestManhattanDistanceZeroIffEqual(t *testing.T) {
	a := Location{Row: 2, Col: 5}
	assert.Zero(t, ManhattanDistance(a, a))
	assert.NotZero(t, ManhattanDistance(a, Location{Row: 2, Col: 6}))
}

func TestParseLocation(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		assertFunc func(t *testing.T, loc Location, err error)
	}{
		{
			name:  "Valid",
			input: "32,41",
			assertFunc: func(t *testing.T, loc Location, err error) {
				require.NoError(t, err)
				assert.Equal(t, Location{Row: 32, Col: 41}, loc)
			},
		},
		{
			name:  "Origin",
			input: "0,0",
			assertFunc: func(t *testing.T, loc Location, err error) {
				require.NoError(t, err)
				assert.Equal(t, Location{}, loc)
			},
		},
		{
			name:  "Missing Component",
			input: "7",
			assertFunc: func(t *testing.T, loc Location, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:  "Non Numeric",
			input: "a,b",
			assertFunc: func(t *testing.T, loc Location, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:  "Too Many Components",
			input: "1,2,3",
			assertFunc: func(t *testing.T, loc Location, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := ParseLocation(tc.input)
			tc.assertFunc(t, loc, err)
		})
	}
}

func TestLocationStringRoundTrips(t *testing.T) {
	original := Location{Row: 4, Col: -2}
	parsed, err := ParseLocation(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
