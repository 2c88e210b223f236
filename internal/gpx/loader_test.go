package gpx_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oselednik/trackplace/internal/gpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="trackplace-test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>morning walk</name>
    <trkseg>
      <trkpt lat="35.0116" lon="135.7681">
        <time>2024-04-12T09:10:00Z</time>
      </trkpt>
      <trkpt lat="35.0120" lon="135.7690">
        <time>2024-04-12T09:00:00Z</time>
      </trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="35.0130" lon="135.7700">
        <time>2024-04-12T09:20:00Z</time>
      </trkpt>
    </trkseg>
  </trk>
  <trk>
    <trkseg>
      <trkpt lat="35.0140" lon="135.7710">
        <time>2024-04-12T09:30:00Z</time>
      </trkpt>
      <trkpt lat="35.0150" lon="135.7720"/>
    </trkseg>
  </trk>
</gpx>`

func writeTempGPX(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.gpx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := gpx.NewLoader(slog.Default())

	t.Run("flattens tracks and sorts by time", func(t *testing.T) {
		path := writeTempGPX(t, sampleGPX)

		points, err := loader.Load(path)

		require.NoError(t, err)
		require.Len(t, points, 4, "point without timestamp should be dropped")

		wantTimes := []time.Time{
			time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 12, 9, 10, 0, 0, time.UTC),
			time.Date(2024, 4, 12, 9, 20, 0, 0, time.UTC),
			time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC),
		}
		for i, want := range wantTimes {
			assert.True(t, points[i].Timestamp.Equal(want), "point %d: got %v, want %v", i, points[i].Timestamp, want)
		}
		assert.InDelta(t, 35.0120, points[0].Latitude, 1e-9)
		assert.InDelta(t, 135.7690, points[0].Longitude, 1e-9)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.gpx"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse GPX file")
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := writeTempGPX(t, "<gpx><trk><trkseg>")

		_, err := loader.Load(path)

		require.Error(t, err)
	})

	t.Run("file without points yields empty sequence", func(t *testing.T) {
		path := writeTempGPX(t, `<?xml version="1.0"?><gpx version="1.1" creator="t" xmlns="http://www.topografix.com/GPX/1/1"></gpx>`)

		points, err := loader.Load(path)

		require.NoError(t, err)
		assert.Empty(t, points)
	})
}
