package output_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oselednik/trackplace/internal/models"
	"github.com/oselednik/trackplace/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFor(t *testing.T) {
	assert.Equal(t, "/tracks/walk.gpx.geocoding.json", output.PathFor("/tracks/walk.gpx"))
}

func TestWriter_Write(t *testing.T) {
	writer := output.NewWriter(slog.Default())

	results := []models.GeocodeResult{
		{
			Point: models.TrackPoint{
				Latitude:  35.0116,
				Longitude: 135.7681,
				Timestamp: time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC),
			},
			Place: models.Place{
				Country:    "日本",
				AdminArea1: "京都府",
				Locality:   "京都市",
			},
		},
		{
			Point: models.TrackPoint{
				Latitude:  35.0204,
				Longitude: 135.7763,
				Timestamp: time.Date(2024, 4, 12, 9, 10, 0, 0, time.UTC),
			},
			Place: models.Place{
				Country:     "日本",
				AdminArea1:  "京都府",
				Locality:    "京都市",
				Sublocality: "左京区",
			},
		},
	}

	t.Run("writes results as readable JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "walk.gpx.geocoding.json")

		require.NoError(t, writer.Write(path, results))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []models.GeocodeResult
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, results[0].Place, decoded[0].Place)
		assert.True(t, results[1].Point.Timestamp.Equal(decoded[1].Point.Timestamp))

		// Place names stay human-readable, no \u escapes.
		assert.Contains(t, string(data), "京都市")
		assert.True(t, strings.Contains(string(data), "\n    "), "output should be indented")
	})

	t.Run("empty result set writes an empty list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.gpx.geocoding.json")

		require.NoError(t, writer.Write(path, []models.GeocodeResult{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		err := writer.Write(filepath.Join(t.TempDir(), "missing", "out.json"), results)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create output file")
	})
}
