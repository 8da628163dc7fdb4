package coin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/spread/errors"
)

// IsCC is the RegExp to ensure valid currency codes
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxAmount is the largest amount a single coin can hold.
	MaxAmount int64 = 999999999999999 // 10^15-1
	// MinAmount is the lowest amount a single coin can hold. Negative
	// amounts never represent money owned, but they are needed as an
	// intermediate state when subtracting.
	MinAmount = -MaxAmount
)

// NewCoin creates a new coin object
func NewCoin(amount int64, ticker string) Coin {
	return Coin{
		Amount: amount,
		Ticker: ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount int64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// ID returns a coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Add combines two coins. Returns an error if they are of different
// currencies, or if the combination would cause an overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a
	// ticker set then it has no influence on the addition result.
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
		return Coin{}, err
	}

	amount, err := add64(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	c.Amount = amount
	return c, nil
}

// Negative returns the opposite coins value
//   c.Add(c.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker: c.Ticker,
		Amount: -1 * c.Amount,
	}
}

// Subtract given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Multiply returns the result of a coin value multiplication. This
// method can fail if the result would overflow the maximum coin value.
func (c Coin) Multiply(times int64) (Coin, error) {
	amount, err := mul64(c.Amount, times)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Ticker: c.Ticker, Amount: amount}, nil
}

// Compare will check values of two coins, without inspecting the
// currency code. It is up to the caller to determine if they want to
// check this.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount > o.Amount:
		return 1
	case c.Amount < o.Amount:
		return -1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// IsEmpty returns true on null or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true if the amount is 0
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return c.Amount >= 0
}

// IsGTE returns true if c is the same type and at least as large as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if they have the same currency
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker: c.Ticker,
		Amount: c.Amount,
	}
}

// Validate ensures that the coin is in the valid range and has a valid
// currency code. It accepts negative values, so you may want to make
// other checks in your business logic.
func (c Coin) Validate() error {
	var err error
	if !IsCC(c.Ticker) {
		err = errors.Append(err, errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker))
	}
	if c.Amount < MinAmount || c.Amount > MaxAmount {
		err = errors.Append(err, errors.Wrap(errors.ErrOverflow, "amount"))
	}
	return err
}

// String provides a human readable representation of the coin. For a
// valid coin the result can be parsed back using ParseHumanFormat.
func (c Coin) String() string {
	if c.Ticker == "" {
		return strconv.FormatInt(c.Amount, 10)
	}
	return fmt.Sprintf("%d %s", c.Amount, c.Ticker)
}

// ParseHumanFormat parses a human readable coin representation. Accepted
// format is a string:
//   "<amount> <ticker>"
func ParseHumanFormat(h string) (Coin, error) {
	var c Coin
	results := humanCoinFormatRx.FindStringSubmatch(h)
	if len(results) == 0 {
		return c, errors.Wrapf(errors.ErrInput, "invalid format: %q", h)
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(results[1]), 10, 64)
	if err != nil {
		return c, errors.Wrapf(errors.ErrInput, "invalid amount: %s", err)
	}

	return Coin{
		Ticker: results[2],
		Amount: amount,
	}, nil
}

var humanCoinFormatRx = regexp.MustCompile(`^(\-?\s*\d+)\s*([A-Z]{3,4})$`)

// Set updates this coin value to what is provided. This method
// implements the flag.Value interface.
func (c *Coin) Set(raw string) error {
	val, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = val
	return nil
}

// add64 adds two int64 numbers. If the result is outside of the valid
// coin amount range the ErrOverflow is returned.
func add64(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	if c < MinAmount || c > MaxAmount {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}

// mul64 multiplies two int64 numbers. If the result is outside of the
// valid coin amount range the ErrOverflow is returned.
func mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	if c < MinAmount || c > MaxAmount {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}
