package order_test

import (
	"testing"

	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/model/shipping"
	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subtotalRate is a test policy charging a share of the subtotal.
type subtotalRate struct {
	percent int64
}

func (p subtotalRate) ComputeFee(subtotal kernel.Money) kernel.Money {
	fee, _ := kernel.NewMoney(subtotal.Amount().Mul(decimal.NewFromInt(p.percent)).Div(decimal.NewFromInt(100)))
	return fee
}

func (p subtotalRate) Validate() error {
	return nil
}

// brokenFee is a test policy whose fee was never constructed.
type brokenFee struct{}

func (brokenFee) ComputeFee(kernel.Money) kernel.Money {
	return kernel.Money{}
}

func (brokenFee) Validate() error {
	return nil
}

func newTestCustomer(t *testing.T) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("João")
	require.NoError(t, err)
	return c
}

func newTestItems(t *testing.T) []order.Item {
	t.Helper()
	pen, err := order.NewItemFromString("Caneta", "2.50")
	require.NoError(t, err)
	notebook, err := order.NewItemFromString("Caderno", "10.00")
	require.NoError(t, err)
	return []order.Item{pen, notebook}
}

func TestNewOrder(t *testing.T) {
	c := newTestCustomer(t)
	items := newTestItems(t)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(c, items, shipping.Local)

		require.NoError(t, err)
		require.NotNil(t, o)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.True(t, o.Customer().IsEqual(c))
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, shipping.Local, o.Policy())
	})

	t.Run("should accept an empty item list", func(t *testing.T) {
		o, err := order.NewOrder(c, nil, shipping.National)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should accept a custom policy", func(t *testing.T) {
		o, err := order.NewOrder(c, items, subtotalRate{percent: 10})

		require.NoError(t, err)
		assert.Equal(t, "1.25", o.ComputeShippingCost().Fixed())
	})

	t.Run("should fail with unconstructed customer", func(t *testing.T) {
		o, err := order.NewOrder(customer.Customer{}, items, shipping.Local)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
		assert.Contains(t, err.Error(), "customer is not a customer")
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		o, err := order.NewOrder(c, []order.Item{items[0], {}}, shipping.Local)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
		assert.Contains(t, err.Error(), "items[1] is not an item")
		assert.NotContains(t, err.Error(), "items[0]")
	})

	t.Run("should fail with nil policy", func(t *testing.T) {
		o, err := order.NewOrder(c, items, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "policy is not a shipping policy")
	})

	t.Run("should fail with unknown destination", func(t *testing.T) {
		for _, d := range []shipping.Destination{shipping.Unknown, shipping.Destination(7)} {
			o, err := order.NewOrder(c, items, d)

			require.Error(t, err)
			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrTypeMismatch)
			assert.Contains(t, err.Error(), "is not a valid destination")
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(customer.Customer{}, []order.Item{{}, {}}, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer is not a customer")
		assert.Contains(t, err.Error(), "items[0] is not an item")
		assert.Contains(t, err.Error(), "items[1] is not an item")
		assert.Contains(t, err.Error(), "policy is not a shipping policy")
	})

	t.Run("type mismatches are not invalid arguments", func(t *testing.T) {
		_, err := order.NewOrder(c, items, nil)

		assert.NotErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("should assign a distinct id to each order", func(t *testing.T) {
		o1, _ := order.NewOrder(c, items, shipping.Local)
		o2, _ := order.NewOrder(c, items, shipping.Local)

		assert.False(t, o1.IsEqual(o2))
		assert.True(t, o1.IsEqual(o1))
		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value order computes zero totals", func(t *testing.T) {
		var o order.Order

		assert.True(t, o.ComputeFinalTotal().IsZero())
	})
}

func TestOrder_IsImmutable(t *testing.T) {
	c := newTestCustomer(t)
	items := newTestItems(t)

	o, err := order.NewOrder(c, items, shipping.Local)
	require.NoError(t, err)

	t.Run("should not see later changes to the input slice", func(t *testing.T) {
		items[0], _ = order.NewItemFromString("Replaced", "1000")

		assert.Equal(t, "12.50", o.ComputeSubtotal().Fixed())
	})

	t.Run("should not let callers change items through Items", func(t *testing.T) {
		got := o.Items()
		got[0], _ = order.NewItemFromString("Replaced", "1000")

		assert.Equal(t, "Caneta", o.Items()[0].Name())
	})
}

func TestOrder_Totals(t *testing.T) {
	c := newTestCustomer(t)
	items := newTestItems(t)

	testCases := []struct {
		name     string
		policy   shipping.Destination
		shipping string
		final    string
	}{
		{"local", shipping.Local, "10.00", "22.50"},
		{"national", shipping.National, "20.00", "32.50"},
		{"international", shipping.International, "50.00", "62.50"},
	}

	for _, tc := range testCases {
		t.Run("should compute totals for "+tc.name+" shipping", func(t *testing.T) {
			o, err := order.NewOrder(c, items, tc.policy)
			require.NoError(t, err)

			assert.Equal(t, "12.50", o.ComputeSubtotal().Fixed())
			assert.Equal(t, tc.shipping, o.ComputeShippingCost().Fixed())
			assert.Equal(t, tc.final, o.ComputeFinalTotal().Fixed())
		})
	}

	t.Run("empty order costs only the flat fee", func(t *testing.T) {
		for _, d := range shipping.Destinations() {
			o, err := order.NewOrder(c, []order.Item{}, d)
			require.NoError(t, err)

			assert.Equal(t, "0.00", o.ComputeSubtotal().Fixed())
			equal, err := o.ComputeFinalTotal().IsEqual(d.ComputeFee(kernel.ZeroMoney()))
			require.NoError(t, err)
			assert.True(t, equal, d.String())
		}
	})

	t.Run("final total is subtotal plus shipping", func(t *testing.T) {
		prices := []string{"0.01", "19.99", "3000", "150", "200", "0"}
		var many []order.Item
		for _, p := range prices {
			item, err := order.NewItemFromString("Item "+p, p)
			require.NoError(t, err)
			many = append(many, item)
		}

		o, err := order.NewOrder(c, many, shipping.National)
		require.NoError(t, err)

		assert.Equal(t, "3370.00", o.ComputeSubtotal().Fixed())
		for range 3 {
			equal, eqErr := o.ComputeFinalTotal().IsEqual(o.ComputeSubtotal().Add(o.ComputeShippingCost()))
			require.NoError(t, eqErr)
			assert.True(t, equal)
		}
	})

	t.Run("subtotal is exact for decimal prices", func(t *testing.T) {
		var tenths []order.Item
		for range 10 {
			item, err := order.NewItemFromString("Clip", "0.1")
			require.NoError(t, err)
			tenths = append(tenths, item)
		}

		o, err := order.NewOrder(c, tenths, shipping.Local)
		require.NoError(t, err)

		equal, err := o.ComputeSubtotal().IsEqual(kernel.MustMoney("1"))
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("unconstructed fee makes the final total unconstructed", func(t *testing.T) {
		o, err := order.NewOrder(c, newTestItems(t), brokenFee{})
		require.NoError(t, err)

		require.NoError(t, o.ComputeSubtotal().Validate())
		require.ErrorIs(t, o.ComputeShippingCost().Validate(), kernel.ErrMoneyIsNotConstructed)
		require.ErrorIs(t, o.ComputeFinalTotal().Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}
