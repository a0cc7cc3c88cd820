package services

import (
	"testing"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRating(t *testing.T) {
	assert.Equal(t, entity.ReviewTypePositive, classify(5))
	assert.Equal(t, entity.ReviewTypePositive, classify(4))
	assert.Equal(t, entity.ReviewTypeNeutral, classify(3))
	assert.Equal(t, entity.ReviewTypeNegative, classify(2))
	assert.Equal(t, entity.ReviewTypeNegative, classify(1))
}

func newReviewFixture(t *testing.T) (*ReviewService, *OrderService, uint, entity.Product) {
	t.Helper()
	orderSvc, userID, product := newOrderFixture(t)
	reviewSvc := NewReviewService(orderSvc.db,
		repository.NewReviewRepository(orderSvc.db),
		repository.NewOrderRepository(orderSvc.db),
		repository.NewProductRepository(orderSvc.db),
	)
	return reviewSvc, orderSvc, userID, product
}

func shippedOrder(t *testing.T, orderSvc *OrderService, userID uint, product entity.Product) *entity.Order {
	t.Helper()
	order, err := orderSvc.Checkout(userID, checkoutReq(product, 1))
	require.NoError(t, err)
	require.NoError(t, orderSvc.Accept(order.ID))
	require.NoError(t, orderSvc.Process(order.ID))
	require.NoError(t, orderSvc.Deliver(order.ID))
	require.NoError(t, orderSvc.Complete(order.ID))
	return order
}

func TestCreateReviewOnShippedOrder(t *testing.T) {
	reviewSvc, orderSvc, userID, product := newReviewFixture(t)
	order := shippedOrder(t, orderSvc, userID, product)

	review, err := reviewSvc.Create(userID, CreateReviewReq{
		ProductID: product.ID, OrderID: order.ID, Rating: 5, Content: "Rất ngon!",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewTypePositive, review.Type)
	assert.Equal(t, entity.ReviewStatusNotReplied, review.Status)
	assert.True(t, review.IsActive)

	// product rating refreshed from visible reviews
	fresh, err := orderSvc.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fresh.Rating)
	assert.Equal(t, 1, fresh.TotalReview)

	// a second review for the same order+product is rejected
	_, err = reviewSvc.Create(userID, CreateReviewReq{
		ProductID: product.ID, OrderID: order.ID, Rating: 4, Content: "again",
	})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReviewRequiresShippedOrder(t *testing.T) {
	reviewSvc, orderSvc, userID, product := newReviewFixture(t)
	order, err := orderSvc.Checkout(userID, checkoutReq(product, 1))
	require.NoError(t, err)

	_, err = reviewSvc.Create(userID, CreateReviewReq{
		ProductID: product.ID, OrderID: order.ID, Rating: 4, Content: "chưa nhận hàng",
	})
	assert.ErrorIs(t, err, ErrOrderNotShipped)
}

func TestCreateReviewRequiresProductInOrder(t *testing.T) {
	reviewSvc, orderSvc, userID, product := newReviewFixture(t)
	order := shippedOrder(t, orderSvc, userID, product)

	other := entity.Product{
		Name: "Phở bò", Price: 45000, IsActive: true, CategoryID: product.CategoryID,
		Variants: []entity.ProductVariant{{Size: "L", Quantity: 5}},
	}
	require.NoError(t, orderSvc.db.Create(&other).Error)

	// the delivered order holds only the first product
	_, err := reviewSvc.Create(userID, CreateReviewReq{
		ProductID: other.ID, OrderID: order.ID, Rating: 5, Content: "ngon",
	})
	assert.ErrorIs(t, err, ErrProductNotInOrder)
}

func TestReplyFlipsStatus(t *testing.T) {
	reviewSvc, orderSvc, userID, product := newReviewFixture(t)
	order := shippedOrder(t, orderSvc, userID, product)

	review, err := reviewSvc.Create(userID, CreateReviewReq{
		ProductID: product.ID, OrderID: order.ID, Rating: 2, Content: "Giao hàng chậm",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewTypeNegative, review.Type)

	replied, err := reviewSvc.Reply(review.ID, 99, "Xin lỗi quý khách, chúng tôi sẽ cải thiện.")
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusReplied, replied.Status)
	require.NotNil(t, replied.Response)
	assert.Equal(t, uint(99), replied.Response.UserID)
}

func TestHideReviewRefreshesRating(t *testing.T) {
	reviewSvc, orderSvc, userID, product := newReviewFixture(t)
	order := shippedOrder(t, orderSvc, userID, product)

	review, err := reviewSvc.Create(userID, CreateReviewReq{
		ProductID: product.ID, OrderID: order.ID, Rating: 1, Content: "tệ",
	})
	require.NoError(t, err)

	require.NoError(t, reviewSvc.Hide(review.ID))
	fresh, err := orderSvc.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fresh.Rating)
	assert.Equal(t, 0, fresh.TotalReview)
}
