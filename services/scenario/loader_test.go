package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dispatchsim/internal/pkg/models"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		assertFunc func(t *testing.T, events []models.Event, err error)
	}{
		{
			name: "Driver And Rider Requests",
			input: `0 DriverRequest Amaranth 1,1 1
10 RiderRequest Cerise 4,2 1,5 15
`,
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				require.NoError(t, err)
				require.Len(t, events, 2)

				assert.Equal(t, models.EventDriverRequest, events[0].Kind)
				assert.Equal(t, 0, events[0].Timestamp)
				require.NotNil(t, events[0].Driver)
				assert.Equal(t, "Amaranth", events[0].Driver.ID)
				assert.Equal(t, models.Location{Row: 1, Col: 1}, events[0].Driver.Location)
				assert.Equal(t, 1, events[0].Driver.Speed)
				assert.True(t, events[0].Driver.IsIdle)

				assert.Equal(t, models.EventRiderRequest, events[1].Kind)
				assert.Equal(t, 10, events[1].Timestamp)
				require.NotNil(t, events[1].Rider)
				assert.Equal(t, "Cerise", events[1].Rider.ID)
				assert.Equal(t, models.Location{Row: 4, Col: 2}, events[1].Rider.Origin)
				assert.Equal(t, models.Location{Row: 1, Col: 5}, events[1].Rider.Destination)
				assert.Equal(t, 15, events[1].Rider.Patience)
				assert.Equal(t, models.RiderStatusWaiting, events[1].Rider.Status)
			},
		},
		{
			name: "Comments And Blank Lines Skipped",
			input: `# fleet
0 DriverRequest d1 0,0 2

# riders
1 RiderRequest r1 0,0 3,3 5
`,
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				require.NoError(t, err)
				assert.Len(t, events, 2)
			},
		},
		{
			name:  "File Order Preserved For Equal Timestamps",
			input: "0 DriverRequest d1 0,0 1\n0 RiderRequest r1 0,0 5,0 100\n",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				require.NoError(t, err)
				require.Len(t, events, 2)
				assert.Equal(t, models.EventDriverRequest, events[0].Kind)
				assert.Equal(t, models.EventRiderRequest, events[1].Kind)
			},
		},
		{
			name:  "Unknown Event Type",
			input: "3 TeleportRequest x 0,0 1\n",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				assert.ErrorIs(t, err, models.ErrUnknownEventType)
				assert.Contains(t, err.Error(), "line 1")
				assert.Nil(t, events)
			},
		},
		{
			name:  "Malformed Location",
			input: "0 DriverRequest d1 nowhere 1\n",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				assert.Error(t, err)
				assert.Nil(t, events)
			},
		},
		{
			name:  "Negative Timestamp",
			input: "-1 DriverRequest d1 0,0 1\n",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "negative timestamp")
			},
		},
		{
			name:  "Zero Speed Rejected",
			input: "0 DriverRequest d1 0,0 0\n",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "speed must be positive")
			},
		},
		{
			name:  "Wrong Field Count",
			input: "0 RiderRequest r1 0,0 5\n",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:  "Empty Input",
			input: "",
			assertFunc: func(t *testing.T, events []models.Event, err error) {
				require.NoError(t, err)
				assert.Empty(t, events)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := Parse(strings.NewReader(tc.input))
			tc.assertFunc(t, events, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("Reads From Disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.txt")
		require.NoError(t, os.WriteFile(path, []byte("0 DriverRequest d1 2,3 1\n"), 0o644))

		events, err := Load(path)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "d1", events[0].Driver.ID)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}
