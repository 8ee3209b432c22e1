package backfill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveType(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     Request
		want    JobType
		wantErr bool
	}{
		{
			name: "game paths win over everything",
			req:  Request{Season: 2024, StartDate: &day, EndDate: &day, GamePaths: []string{"/boxscores/202409080buf.htm"}},
			want: JobTypeGame,
		},
		{
			name: "date range",
			req:  Request{StartDate: &day, EndDate: &day},
			want: JobTypeDateRange,
		},
		{
			name: "season only",
			req:  Request{Season: 2024},
			want: JobTypeSeason,
		},
		{
			name:    "start date alone is not a range",
			req:     Request{StartDate: &day},
			wantErr: true,
		},
		{
			name:    "empty request",
			req:     Request{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.req.DeriveType()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeasonWindow(t *testing.T) {
	t.Parallel()

	start, end := seasonWindow(2024)

	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), end)
	assert.True(t, end.After(start))
}

func TestEnumerateDates(t *testing.T) {
	t.Parallel()

	t.Run("inclusive range", func(t *testing.T) {
		t.Parallel()

		start := time.Date(2024, time.September, 8, 13, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.September, 10, 2, 0, 0, 0, time.UTC)

		dates := enumerateDates(start, end)
		require.Len(t, dates, 3)
		assert.Equal(t, time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC), dates[0])
		assert.Equal(t, time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC), dates[2])
	})

	t.Run("single day", func(t *testing.T) {
		t.Parallel()

		day := time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC)
		dates := enumerateDates(day, day)
		require.Len(t, dates, 1)
	})

	t.Run("reversed bounds are swapped", func(t *testing.T) {
		t.Parallel()

		start := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC)

		dates := enumerateDates(start, end)
		require.Len(t, dates, 3)
		assert.Equal(t, time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC), dates[0])
	})
}
