package shipping

import (
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// Destination is a flat-rate shipping policy selected by destination class.
type Destination int

const (
	// Unknown is the zero value and is not a valid policy.
	Unknown Destination = iota

	Local

	National

	International
)

func getDestinationStrings() map[Destination]string {
	return map[Destination]string{
		Unknown:       "unknown",
		Local:         "local",
		National:      "national",
		International: "international",
	}
}

func getDestinationFees() map[Destination]kernel.Money {
	return map[Destination]kernel.Money{
		Local:         kernel.MustMoney("10.00"),
		National:      kernel.MustMoney("20.00"),
		International: kernel.MustMoney("50.00"),
	}
}

// Destinations lists every valid destination in fee order.
func Destinations() []Destination {
	return []Destination{Local, National, International}
}

// ParseDestination accepts the lower-case names returned by String, ignoring case
// and surrounding whitespace.
//
// Returns:
//   - Destination: One of Local, National or International
//   - error: errs.ValueIsInvalidError for any other input
func ParseDestination(s string) (Destination, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Destinations() {
		if getDestinationStrings()[d] == name {
			return d, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"destination is invalid",
		fmt.Errorf("%q is not one of local, national, international", s),
	)
}

// ComputeFee returns the flat fee for d. The subtotal does not affect any current
// fee. An invalid destination yields zero.
func (d Destination) ComputeFee(_ kernel.Money) kernel.Money {
	if fee, ok := getDestinationFees()[d]; ok {
		return fee
	}
	return kernel.ZeroMoney()
}

func (d Destination) Validate() error {
	if _, ok := getDestinationFees()[d]; !ok {
		return errs.NewTypeMismatchErrorWithCause(
			"destination",
			"a shipping policy",
			fmt.Errorf("%d is not a valid destination", d),
		)
	}
	return nil
}

func (d Destination) String() string {
	if str, ok := getDestinationStrings()[d]; ok {
		return str
	}
	return "unknown"
}

func (d *Destination) UnmarshalText(text []byte) error {
	parsed, err := ParseDestination(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Destination) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}
