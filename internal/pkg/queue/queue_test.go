package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type job struct {
	name     string
	priority int
}

func newJobQueue() *OrderedQueue[job] {
	return New(func(j job) int { return j.priority })
}

func drain(t *testing.T, q *OrderedQueue[job]) []string {
	t.Helper()
	var names []string
	for !q.IsEmpty() {
		j, err := q.Pop()
		require.NoError(t, err)
		names = append(names, j.name)
	}
	return names
}

func TestOrderedQueuePopOrder(t *testing.T) {
	testCases := []struct {
		name     string
		pushes   []job
		expected []string
	}{
		{
			name:     "Ascending Priority",
			pushes:   []job{{"c", 3}, {"a", 1}, {"b", 2}},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "FIFO Among Equal Priorities",
			pushes:   []job{{"first", 5}, {"second", 5}, {"third", 5}},
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "Mixed Priorities And Ties",
			pushes:   []job{{"d", 2}, {"a", 0}, {"e", 2}, {"b", 0}, {"c", 1}},
			expected: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := newJobQueue()
			for _, j := range tc.pushes {
				q.Push(j)
			}
			assert.Equal(t, tc.expected, drain(t, q))
		})
	}
}

func TestOrderedQueueFIFOSurvivesInterleavedPops(t *testing.T) {
	q := newJobQueue()
	q.Push(job{"a", 1})
	q.Push(job{"b", 1})

	first, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", first.name)

	// New equal-priority arrivals queue behind existing ones.
	q.Push(job{"c", 1})
	assert.Equal(t, []string{"b", "c"}, drain(t, q))
}

func TestOrderedQueueEmpty(t *testing.T) {
	q := newJobQueue()

	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	_, err = q.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
}

func TestOrderedQueuePeekDoesNotMutate(t *testing.T) {
	q := newJobQueue()
	q.Push(job{"a", 2})
	q.Push(job{"b", 1})

	for i := 0; i < 3; i++ {
		j, err := q.Peek()
		require.NoError(t, err)
		assert.Equal(t, "b", j.name)
	}
	assert.Equal(t, 2, q.Len())
}

func TestOrderedQueueRemove(t *testing.T) {
	q := newJobQueue()
	q.Push(job{"a", 1})
	q.Push(job{"b", 2})
	q.Push(job{"c", 3})

	removed := q.Remove(func(j job) bool { return j.name == "b" })
	assert.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, drain(t, q))

	removed = q.Remove(func(j job) bool { return j.name == "b" })
	assert.False(t, removed)
}

func TestOrderedQueueRemoveEarliestOfTies(t *testing.T) {
	q := newJobQueue()
	q.Push(job{"dup", 1})
	q.Push(job{"dup", 1})
	q.Push(job{"tail", 2})

	removed := q.Remove(func(j job) bool { return j.name == "dup" })
	assert.True(t, removed)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []string{"dup", "tail"}, drain(t, q))
}
