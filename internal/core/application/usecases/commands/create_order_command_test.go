package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	actor := newActor(t, kernel.RoleCustomer)
	details := newDetails(t, 12, false)

	t.Run("should build a valid command", func(t *testing.T) {
		id, menuID := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, actor, menuID, details)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, menuID, cmd.MenuID())
		assert.Equal(t, 12, cmd.Details().Headcount())
	})

	t.Run("should join every invalid field", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.Actor{}, kernel.UUID{}, order.Details{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
		require.ErrorIs(t, err, order.ErrDetailsIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
