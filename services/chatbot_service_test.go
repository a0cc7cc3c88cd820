package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntentTracking(t *testing.T) {
	intent, arg := classifyIntent("Đơn hàng 12 của tôi đang ở đâu?")
	assert.Equal(t, intentTrackOrder, intent)
	assert.Equal(t, "12", arg)

	intent, arg = classifyIntent("tracking order 345")
	assert.Equal(t, intentTrackOrder, intent)
	assert.Equal(t, "345", arg)
}

func TestClassifyIntentSearch(t *testing.T) {
	intent, arg := classifyIntent("Tìm bánh mì")
	assert.Equal(t, intentSearchProduct, intent)
	assert.Equal(t, "bánh mì", arg)

	intent, arg = classifyIntent("shop có bán trà sữa không")
	assert.Equal(t, intentSearchProduct, intent)
	assert.Contains(t, arg, "trà sữa")
}

func TestClassifyIntentFallback(t *testing.T) {
	intent, _ := classifyIntent("xin chào")
	assert.Equal(t, intentFallback, intent)

	// an order keyword without a number is not a tracking request
	intent, _ = classifyIntent("đơn hàng của tôi")
	assert.Equal(t, intentFallback, intent)
}
