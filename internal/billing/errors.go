package billing

import "errors"

var (
	// ErrIncompleteBookingData is returned when a booking has no material or no beneficiary.
	ErrIncompleteBookingData = errors.New("incomplete booking data")

	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidDegressiveRate = errors.New("invalid degressive rate")
	ErrInvalidTaxValue       = errors.New("invalid tax value")
	ErrInvalidDiscountRate   = errors.New("invalid discount rate")

	// ErrInvalidCurrencyResynchronization is returned when an absolute amount would have to be
	// re-derived while the booking currency differs from the configured one.
	ErrInvalidCurrencyResynchronization = errors.New("cannot resynchronize a value-based amount after a currency change")
)
