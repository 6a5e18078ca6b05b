package customer

import (
	"errors"
	"strings"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is immutable once constructed. Its name is never blank.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewCustomer trims surrounding whitespace from name and rejects a blank result.
//
// Returns:
//   - Customer: A valid customer instance
//   - error: errs.ValueIsRequiredError if name is blank
func NewCustomer(name string) (Customer, error) {
	c := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setName(name); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) String() string {
	return c.name
}

func (c Customer) IsEqual(other Customer) bool {
	return c == other
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.name = name
	return nil
}
