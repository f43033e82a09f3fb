package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
)

func TestParseFiscalYear(t *testing.T) {
	fy, err := domain.ParseFiscalYear("2024-2025")
	require.NoError(t, err)
	assert.Equal(t, 2024, fy.StartYear)
	assert.Equal(t, 2025, fy.EndYear)
	assert.Equal(t, "2024-2025", fy.String())
}

func TestParseFiscalYear_Invalid(t *testing.T) {
	for _, token := range []string{"", "2024", "2024/2025", "abcd-efgh", "2024-2025-2026"} {
		t.Run(token, func(t *testing.T) {
			_, err := domain.ParseFiscalYear(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestCurrentFiscalYear(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart int
	}{
		{"april starts a new year", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 2025},
		{"december stays in the running year", time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), 2025},
		{"january belongs to the previous april", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), 2025},
		{"march 31 closes the year", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), 2025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fy := domain.CurrentFiscalYear(tt.now)
			assert.Equal(t, tt.wantStart, fy.StartYear)
			assert.Equal(t, tt.wantStart+1, fy.EndYear)
		})
	}
}

func TestFiscalYear_Window(t *testing.T) {
	fy := domain.FiscalYear{StartYear: 2024, EndYear: 2025}

	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), fy.Start())
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), fy.End())

	assert.True(t, fy.Contains(fy.Start()))
	assert.True(t, fy.Contains(fy.End()))
	assert.False(t, fy.Contains(fy.Start().Add(-time.Second)))
	assert.False(t, fy.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
}
