package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalStatus(t *testing.T) {
	t.Run("should validate known outcomes", func(t *testing.T) {
		assert.NoError(t, commands.OrderApproved.Validate())
		assert.NoError(t, commands.OrderRejected.Validate())
	})

	t.Run("should reject unknown outcome", func(t *testing.T) {
		err := commands.ApprovalStatusUnknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "approval status is invalid")
	})

	t.Run("should render status names", func(t *testing.T) {
		assert.Equal(t, "Approved", commands.OrderApproved.String())
		assert.Equal(t, "Rejected", commands.OrderRejected.String())
		assert.Equal(t, "Unknown", commands.ApprovalStatusUnknown.String())
	})
}

func TestNewApprovalResponseCommand(t *testing.T) {
	validOrderID := kernel.NewUUID()
	validRestaurantID := kernel.NewUUID()
	createdAt := time.Now().UTC()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewApprovalResponseCommand(
			"message-1", "saga-1",
			validRestaurantID, validOrderID, createdAt,
			commands.OrderRejected, []string{"Out of stock"},
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "message-1", cmd.ID())
		assert.Equal(t, "saga-1", cmd.SagaID())
		assert.True(t, cmd.RestaurantID().IsEqual(validRestaurantID))
		assert.True(t, cmd.OrderID().IsEqual(validOrderID))
		assert.Equal(t, createdAt, cmd.CreatedAt())
		assert.Equal(t, commands.OrderRejected, cmd.ApprovalStatus())
		assert.Equal(t, []string{"Out of stock"}, cmd.FailureMessages())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewApprovalResponseCommand(
			"message-1", "saga-1",
			validRestaurantID, invalidID, createdAt,
			commands.OrderApproved, nil,
		)

		require.Error(t, err)
	})

	t.Run("should fail with unknown approval status", func(t *testing.T) {
		_, err := commands.NewApprovalResponseCommand(
			"message-1", "saga-1",
			validRestaurantID, validOrderID, createdAt,
			commands.ApprovalStatusUnknown, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "approval status is invalid")
	})

	t.Run("should reject non-constructed command", func(t *testing.T) {
		var cmd commands.ApprovalResponseCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrApprovalResponseCommandIsNotConstructed)
	})
}
