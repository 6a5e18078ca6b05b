package order

import (
	"errors"
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced line entry. It is immutable and compares by value.
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewItem creates an Item. The name is trimmed and must not be blank; the price
// must have been built by one of the kernel.Money constructors.
//
// Parameters:
//   - name: The display name of the item
//   - price: The unit price
//
// Returns:
//   - Item: A valid item instance
//   - error: Joined errs.ValueIsRequiredError/errs.ValueIsInvalidError values
func NewItem(name string, price kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// NewItemFromString is NewItem with the price given as a decimal literal.
func NewItemFromString(name, price string) (Item, error) {
	amount, err := kernel.MoneyFromString(price)
	if err != nil {
		return Item{}, errors.Join(
			(&Item{}).setName(name),
			errs.NewValueIsInvalidErrorWithCause("price is invalid", err),
		)
	}

	return NewItem(name, amount)
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

// String renders the item as an invoice line.
func (i Item) String() string {
	return fmt.Sprintf("%s - %s", i.name, i.price)
}

func (i Item) IsEqual(other Item) bool {
	if i.name != other.name {
		return false
	}
	equal, err := i.price.IsEqual(other.price)
	return err == nil && equal
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", err)
	}

	i.price = price
	return nil
}
