package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStatusIsLastSnapshot(t *testing.T) {
	o := Order{DeliveryInfo: []DeliveryInfo{
		{Status: StatusPending},
		{Status: StatusAccepted},
	}}
	assert.Equal(t, "Đã nhận đơn", o.CurrentStatus())
}

func TestCurrentStatusEmptyHistory(t *testing.T) {
	o := Order{}
	assert.Equal(t, "", o.CurrentStatus())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusAccepted))
	assert.True(t, CanTransition(StatusPending, StatusCancelledByYou))
	assert.True(t, CanTransition(StatusInDelivery, StatusShipped))
	assert.False(t, CanTransition(StatusShipped, StatusPending))
	assert.False(t, CanTransition(StatusAccepted, StatusCancelledByYou))
	assert.False(t, CanTransition(StatusProcessing, StatusShipped))
}

func TestProductSizesComeFromVariants(t *testing.T) {
	p := Product{Variants: []ProductVariant{{Size: "S"}, {Size: "M"}, {Size: "L"}}}
	assert.Equal(t, []string{"S", "M", "L"}, p.Sizes())
}
