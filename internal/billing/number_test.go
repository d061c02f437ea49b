package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBillNumber(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		sequence int
		expected string
		wantErr  bool
	}{
		{name: "first_of_year", date: time.Date(2018, 12, 18, 0, 0, 0, 0, time.UTC), sequence: 1, expected: "2018-00001"},
		{name: "padded", date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), sequence: 342, expected: "2024-00342"},
		{name: "overflow_width", date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), sequence: 123456, expected: "2024-123456"},
		{name: "zero_sequence", date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), sequence: 0, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			number, err := CreateBillNumber(tc.date, tc.sequence)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, number)

			year, sequence, err := ParseBillNumber(number)
			require.NoError(t, err)
			assert.Equal(t, tc.date.Year(), year)
			assert.Equal(t, tc.sequence, sequence)
		})
	}
}

func TestParseBillNumberRejectsMalformed(t *testing.T) {
	for _, number := range []string{"", "2018", "2018-1", "18-00001", "abcd-00001", "2018-abcde", "2018-00000"} {
		_, _, err := ParseBillNumber(number)
		assert.ErrorIs(t, err, ErrInvalidArgument, number)
	}
}
