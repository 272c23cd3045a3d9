package testutil

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures records and attributes", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("summary generated", slog.String("base_name", "pubs"))
		logger.Error("write failed", slog.Int("code", 500))

		require.Equal(t, 2, handler.Count())
		assert.True(t, handler.ContainsMessage("summary generated"))
		assert.True(t, handler.ContainsAttr("base_name", "pubs"))
		assert.True(t, handler.ContainsAttr("code", 500))
	})

	t.Run("inherits With attributes", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With(slog.String("component", "summary_service")).Info("loaded")

		AssertLogAttr(t, handler, "component", "summary_service")
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelInfo), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelDebug), 1)
		AssertLogContains(t, handler, slog.LevelWarn, "warn")
		AssertNoErrors(t, handler)
	})

	t.Run("clear", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("message 1")
		handler.Clear()

		assert.Equal(t, 0, handler.Count())
	})

	t.Run("concurrent logging", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				logger.With(slog.Int("worker", n)).Info("concurrent log")
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 10, handler.Count())
	})
}

func TestBuildWorkbookRoundTrip(t *testing.T) {
	path := WriteWorkbook(t, t.TempDir(), "pubs.xlsx", SampleRows())

	rows := ReadWorkbook(t, path)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Year", "Type", "Faculty Name", "Title", "Venue"}, rows[0])
	assert.Equal(t, []string{"2020", "Journal", "A", "T1", "V1"}, rows[1])
}
