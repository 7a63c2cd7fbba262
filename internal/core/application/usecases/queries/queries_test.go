package queries_test

import (
	"testing"
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), "Camille Roux", role)
	require.NoError(t, err)
	return a
}

func TestNewListMyOrdersQuery(t *testing.T) {
	t.Run("should build with a valid actor", func(t *testing.T) {
		q, err := queries.NewListMyOrdersQuery(validActor(t, kernel.RoleCustomer))

		require.NoError(t, err)
		assert.NoError(t, q.Validate())
	})

	t.Run("should reject an anonymous actor", func(t *testing.T) {
		_, err := queries.NewListMyOrdersQuery(kernel.Actor{})

		assert.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		err := queries.ListMyOrdersQuery{}.Validate()

		assert.ErrorIs(t, err, queries.ErrListMyOrdersQueryIsNotConstructed)
	})
}

func TestNewListOrdersQuery(t *testing.T) {
	admin := validActor(t, kernel.RoleAdmin)
	day := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

	t.Run("should trim text filters", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(admin, queries.OrderFilter{
			City:         "  Lyon ",
			CustomerName: " Roux\t",
		})

		require.NoError(t, err)
		assert.Equal(t, "Lyon", q.Filter().City)
		assert.Equal(t, "Roux", q.Filter().CustomerName)
	})

	t.Run("should accept an empty filter", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(admin, queries.OrderFilter{})

		require.NoError(t, err)
		assert.NoError(t, q.Validate())
	})

	t.Run("should accept a single-day range", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(admin, queries.OrderFilter{EventFrom: day, EventTo: day})

		assert.NoError(t, err)
	})

	t.Run("should reject an inverted date range", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(admin, queries.OrderFilter{
			EventFrom: day,
			EventTo:   day.AddDate(0, 0, -1),
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an out-of-range status", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(admin, queries.OrderFilter{Status: order.Status(42)})

		assert.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		err := queries.ListOrdersQuery{}.Validate()

		assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderDetailQuery(t *testing.T) {
	t.Run("should build with actor and order id", func(t *testing.T) {
		id := kernel.NewUUID()

		q, err := queries.NewGetOrderDetailQuery(validActor(t, kernel.RoleCustomer), id)

		require.NoError(t, err)
		assert.True(t, q.OrderID().IsEqual(id))
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderDetailQuery(validActor(t, kernel.RoleCustomer), kernel.UUID{})

		assert.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		err := queries.GetOrderDetailQuery{}.Validate()

		assert.ErrorIs(t, err, queries.ErrGetOrderDetailQueryIsNotConstructed)
	})
}
