package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CreateBillNumber formats the sequence-th bill of the year of date as "YYYY-NNNNN".
// Sequences start at 1 and restart every calendar year.
func CreateBillNumber(date time.Time, sequence int) (string, error) {
	if sequence < 1 {
		return "", fmt.Errorf("%w: bill sequence must start at 1, got %d", ErrInvalidArgument, sequence)
	}
	return fmt.Sprintf("%d-%05d", date.Year(), sequence), nil
}

// ParseBillNumber splits a bill number back into its year and sequence.
func ParseBillNumber(number string) (year, sequence int, err error) {
	yearPart, seqPart, found := strings.Cut(number, "-")
	if !found || len(yearPart) != 4 || len(seqPart) < 5 {
		return 0, 0, fmt.Errorf("%w: malformed bill number %q", ErrInvalidArgument, number)
	}
	if year, err = strconv.Atoi(yearPart); err != nil {
		return 0, 0, fmt.Errorf("%w: malformed bill year in %q", ErrInvalidArgument, number)
	}
	if sequence, err = strconv.Atoi(seqPart); err != nil || sequence < 1 {
		return 0, 0, fmt.Errorf("%w: malformed bill sequence in %q", ErrInvalidArgument, number)
	}
	return year, sequence, nil
}
