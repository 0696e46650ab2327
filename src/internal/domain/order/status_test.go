package order_test

import (
	"testing"

	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range order.AllStatuses() {
		parsed, err := order.ParseOrderStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseOrderStatus("SHIPPED")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestOrderStatus_TransitionTable(t *testing.T) {
	allowed := map[order.OrderStatus][]order.OrderStatus{
		order.StatusPending:    {order.StatusConfirmed, order.StatusCancelled},
		order.StatusConfirmed:  {order.StatusReady, order.StatusCancelled},
		order.StatusReady:      {order.StatusDelivering, order.StatusCancelled},
		order.StatusDelivering: {order.StatusCompleted},
	}

	for _, from := range order.AllStatuses() {
		assert.ElementsMatch(t, allowed[from], from.AllowedTransitions(), "from %s", from)
	}

	assert.True(t, order.StatusCompleted.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusDelivering.IsTerminal())
}

func TestOrderStatus_AllowedTransitions_ReturnsCopy(t *testing.T) {
	targets := order.StatusPending.AllowedTransitions()
	targets[0] = order.StatusCompleted

	assert.False(t, order.StatusPending.CanTransitionTo(order.StatusCompleted))
}

// 所有不在轉換表內的 (from, to) 組合都必須被拒絕，且訂單保持不變
func TestOrder_Transition_IllegalPairsAreRejected(t *testing.T) {
	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			if from.CanTransitionTo(to) {
				continue
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				o := orderInStatus(from, false)

				settlement, err := o.Transition(order.TransitionRequest{Target: to, ShipperID: "shipper-1"}, fixedNow)

				require.Error(t, err)
				if from == order.StatusCompleted {
					assert.ErrorIs(t, err, order.ErrOrderFinalized)
				} else {
					assert.ErrorIs(t, err, order.ErrInvalidTransition)
				}
				assert.Equal(t, from, o.Status())
				assert.False(t, settlement.Required())
				assert.Nil(t, o.ShipperID())
				assert.Nil(t, o.ConfirmedAt())
				assert.Nil(t, o.DeliveredAt())
				assert.Nil(t, o.CancelledReason())
				assert.Empty(t, o.PullEvents())
			})
		}
	}
}
