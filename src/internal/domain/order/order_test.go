package order_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// PlaceOrder
// ===========================

func TestPlaceOrder_BindableCashItem(t *testing.T) {
	// Arrange
	owner := user.NewUserID()
	stove := newStove(owner)
	c := newCart(stove.ID, lineItem(gasProduct(450000), 1, false))

	// Act
	o, err := order.PlaceOrder(owner, stove, c, fixedNow)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, int64(450000), o.Subtotal().Int64())
	assert.Equal(t, int64(0), o.DiscountAmount().Int64())
	assert.Equal(t, int64(450000), o.TotalPrice().Int64())
	assert.Equal(t, 0, o.PointsUsed().Value())
	assert.Equal(t, 2000, o.PointsEarned().Value())
	assert.False(t, o.PointsSettled())
	assert.Len(t, o.Items(), 1)
	assert.Equal(t, stove.ID, o.StoveSnapshot().StoveID)
	assert.False(t, o.StoveSnapshot().IncludesDefaultGas)

	events := o.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "order.placed", events[0].EventType())
	assert.Equal(t, o.OrderID().String(), events[0].AggregateID())
}

func TestPlaceOrder_StoveOwnedByAnotherUser_ReturnsStoveNotFound(t *testing.T) {
	stove := newStove(user.NewUserID())
	c := newCart(stove.ID, lineItem(gasProduct(450000), 1, false))

	_, err := order.PlaceOrder(user.NewUserID(), stove, c, fixedNow)

	assert.ErrorIs(t, err, cart.ErrStoveNotFound)
}

func TestPlaceOrder_NilStove_ReturnsStoveNotFound(t *testing.T) {
	_, err := order.PlaceOrder(user.NewUserID(), nil, &cart.Cart{IsStoveActive: true}, fixedNow)

	assert.ErrorIs(t, err, cart.ErrStoveNotFound)
}

func TestPlaceOrder_EmptyCart_ReturnsEmptyCart(t *testing.T) {
	owner := user.NewUserID()
	stove := newStove(owner)

	_, err := order.PlaceOrder(owner, stove, newCart(stove.ID), fixedNow)

	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestPlaceOrder_SnapshotsChildItemsWithZeroPrice(t *testing.T) {
	owner := user.NewUserID()
	stove := newStove(owner)
	parent := lineItem(gasProduct(450000), 1, false)
	child := lineItem(exchangeProduct(800), 1, false)
	child.ParentItemID = &parent.ID
	c := newCart(stove.ID, parent, child)

	o, err := order.PlaceOrder(owner, stove, c, fixedNow)

	require.NoError(t, err)
	items := o.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(450000), items[0].UnitPrice.Int64())
	assert.False(t, items[0].Bundled)
	assert.True(t, items[1].Bundled)
	assert.True(t, items[1].UnitPrice.IsZero())
	assert.True(t, items[1].UnitPointPrice.IsZero())
}

func TestPlaceOrder_GiftProductAddsZeroPricePromoItem(t *testing.T) {
	// Arrange
	owner := user.NewUserID()
	stove := newStove(owner)
	bound := gasProduct(345000)
	gift := exchangeProduct(800)
	stove.Product = &bound
	stove.PromoProduct = &gift
	stove.DefaultProductQuantity = 2
	stove.DefaultPromoChoice = cart.PromoChoiceGiftProduct
	c := newCart(stove.ID)
	c.IsStoveActive = true

	// Act
	o, err := order.PlaceOrder(owner, stove, c, fixedNow)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(690000), o.TotalPrice().Int64())

	items := o.Items()
	require.Len(t, items, 1)
	assert.Equal(t, gift.ID, items[0].ProductID)
	assert.Equal(t, cart.ItemTypePromoBonus, items[0].Type)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.IsZero())

	snap := o.StoveSnapshot()
	assert.True(t, snap.IncludesDefaultGas)
	assert.Equal(t, bound.Name, snap.ProductName)
	assert.Equal(t, int64(345000), snap.ProductPrice.Int64())
	assert.Equal(t, cart.PromoChoiceGiftProduct, snap.PromoChoice)
	require.NotNil(t, snap.PromoProductID)
	assert.Equal(t, gift.ID, *snap.PromoProductID)
	assert.Equal(t, 2, snap.PromoQuantity)
}

// ===========================
// Transition
// ===========================

func TestOrder_Transition_Confirm_StampsConfirmedAt(t *testing.T) {
	o := placedOrder()

	settlement, err := o.Transition(order.TransitionRequest{Target: order.StatusConfirmed}, fixedNow)

	require.NoError(t, err)
	assert.False(t, settlement.Required())
	assert.Equal(t, order.StatusConfirmed, o.Status())
	require.NotNil(t, o.ConfirmedAt())
	assert.Equal(t, fixedNow, *o.ConfirmedAt())

	events := o.PullEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(*order.OrderStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, order.StatusPending, changed.From())
	assert.Equal(t, order.StatusConfirmed, changed.To())
}

func TestOrder_Transition_Complete_ReturnsCreditEarned(t *testing.T) {
	o := orderInStatus(order.StatusDelivering, false)
	later := fixedNow.Add(2 * time.Hour)

	settlement, err := o.Transition(order.TransitionRequest{Target: order.StatusCompleted}, later)

	require.NoError(t, err)
	assert.Equal(t, order.SettlementCreditEarned, settlement.Kind)
	assert.Equal(t, 2000, settlement.Amount.Value())
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, later, *o.DeliveredAt())
	assert.False(t, o.PointsSettled(), "settled only after ConfirmSettlement")

	o.ConfirmSettlement(settlement, later)
	assert.True(t, o.PointsSettled())

	events := o.PullEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "order.points_settled", events[1].EventType())
}

func TestOrder_Transition_Cancel_DefaultReasonAndRefund(t *testing.T) {
	o := placedOrder()

	settlement, err := o.Transition(order.TransitionRequest{Target: order.StatusCancelled, CancelledReason: "  "}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, order.SettlementRefundUsed, settlement.Kind)
	assert.Equal(t, 800, settlement.Amount.Value())
	require.NotNil(t, o.CancelledReason())
	assert.Equal(t, order.DefaultCancelledReason, *o.CancelledReason())
}

func TestOrder_Transition_Cancel_KeepsGivenReason(t *testing.T) {
	o := orderInStatus(order.StatusReady, false)

	_, err := o.Transition(order.TransitionRequest{Target: order.StatusCancelled, CancelledReason: "Khách đổi ý"}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "Khách đổi ý", *o.CancelledReason())
}

func TestOrder_Transition_AlreadySettled_NoSettlement(t *testing.T) {
	o := orderInStatus(order.StatusDelivering, false)
	o.ConfirmSettlement(order.Settlement{Kind: order.SettlementCreditEarned}, fixedNow)
	o.PullEvents()

	settlement, err := o.Transition(order.TransitionRequest{Target: order.StatusCompleted}, fixedNow)

	require.NoError(t, err)
	assert.False(t, settlement.Required())
}

func TestOrder_Transition_AttachesShipper(t *testing.T) {
	o := orderInStatus(order.StatusReady, false)

	_, err := o.Transition(order.TransitionRequest{Target: order.StatusDelivering, ShipperID: "shipper-42"}, fixedNow)

	require.NoError(t, err)
	require.NotNil(t, o.ShipperID())
	assert.Equal(t, "shipper-42", *o.ShipperID())
}

func TestOrder_Transition_ReadyToPending_IsInvalid(t *testing.T) {
	o := orderInStatus(order.StatusReady, false)

	_, err := o.Transition(order.TransitionRequest{Target: order.StatusPending}, fixedNow)

	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatusReady, o.Status())
}

func TestOrder_Transition_CompletedTwice_IsFinalized(t *testing.T) {
	o := orderInStatus(order.StatusDelivering, false)
	_, err := o.Transition(order.TransitionRequest{Target: order.StatusCompleted}, fixedNow)
	require.NoError(t, err)

	settlement, err := o.Transition(order.TransitionRequest{Target: order.StatusCompleted}, fixedNow)

	assert.ErrorIs(t, err, order.ErrOrderFinalized)
	assert.False(t, settlement.Required())
}

// ===========================
// ReconstructOrder
// ===========================

func TestReconstructOrder_RejectsCorruptedState(t *testing.T) {
	base := order.OrderState{
		OrderID: order.NewOrderID(),
		UserID:  user.NewUserID(),
		Status:  order.StatusPending,
	}

	bad := base
	bad.Status = "SHIPPED"
	_, err := order.ReconstructOrder(bad)
	assert.ErrorIs(t, err, order.ErrInvalidStatus)

	bad = base
	bad.PointsUsed = -1
	_, err = order.ReconstructOrder(bad)
	assert.ErrorIs(t, err, order.ErrCorruptedOrder)

	bad = base
	bad.PointsSettled = true
	_, err = order.ReconstructOrder(bad)
	assert.ErrorIs(t, err, order.ErrCorruptedOrder)
}
