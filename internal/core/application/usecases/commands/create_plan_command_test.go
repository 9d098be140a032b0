package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

func TestNewCreatePlanCommand_ValidInput(t *testing.T) {
	planID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	blend := []commands.BlendInput{{BinID: kernel.NewUUID(), Percentage: 100}}
	distribution := []commands.DistributionInput{{BinID: kernel.NewUUID(), Quantity: 100}}

	cmd, err := commands.NewCreatePlanCommand(planID, orderID, "single bin", blend, distribution)
	require.NoError(t, err)
	assert.Equal(t, planID, cmd.PlanID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "single bin", cmd.Description())
	assert.Equal(t, blend, cmd.Blend())
	assert.Equal(t, distribution, cmd.Distribution())
}

func TestNewCreatePlanCommand_EmptyBlend(t *testing.T) {
	distribution := []commands.DistributionInput{{BinID: kernel.NewUUID(), Quantity: 100}}
	_, err := commands.NewCreatePlanCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil, distribution)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreatePlanCommand_EmptyDistribution(t *testing.T) {
	blend := []commands.BlendInput{{BinID: kernel.NewUUID(), Percentage: 100}}
	_, err := commands.NewCreatePlanCommand(kernel.NewUUID(), kernel.NewUUID(), "", blend, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreatePlanCommand_InvalidIDs(t *testing.T) {
	blend := []commands.BlendInput{{BinID: kernel.NewUUID(), Percentage: 100}}
	distribution := []commands.DistributionInput{{BinID: kernel.NewUUID(), Quantity: 100}}

	_, err := commands.NewCreatePlanCommand(kernel.UUID{}, kernel.NewUUID(), "", blend, distribution)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreatePlanCommand(kernel.NewUUID(), kernel.UUID{}, "", blend, distribution)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreatePlanCommand_InputSlicesAreCopied(t *testing.T) {
	blend := []commands.BlendInput{{BinID: kernel.NewUUID(), Percentage: 100}}
	distribution := []commands.DistributionInput{{BinID: kernel.NewUUID(), Quantity: 100}}

	cmd, err := commands.NewCreatePlanCommand(kernel.NewUUID(), kernel.NewUUID(), "", blend, distribution)
	require.NoError(t, err)

	blend[0].Percentage = 1
	assert.Equal(t, 100.0, cmd.Blend()[0].Percentage)
}
