package services

import (
	"testing"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Permission{}, &entity.Role{}, &entity.User{}, &entity.UserAddress{},
		&entity.Category{}, &entity.Color{},
		&entity.Product{}, &entity.ProductImage{}, &entity.ProductVariant{},
		&entity.Order{}, &entity.OrderItem{}, &entity.DeliveryInfo{},
		&entity.Review{}, &entity.ReviewResponse{},
	))
	return db
}

func newOrderFixture(t *testing.T) (*OrderService, uint, entity.Product) {
	t.Helper()
	db := testDB(t)

	role := entity.Role{Name: "customer"}
	require.NoError(t, db.Create(&role).Error)
	user := entity.User{Email: "an@example.com", FullName: "Nguyễn Văn An", Phone: "0901234567", IsActive: true, RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)

	category := entity.Category{Name: "Đồ ăn nhanh", IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	product := entity.Product{
		Name: "Bánh mì thịt", Price: 25000, IsActive: true, CategoryID: category.ID,
		Variants: []entity.ProductVariant{{Size: "M", Quantity: 10}},
	}
	require.NoError(t, db.Create(&product).Error)

	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewUserRepository(db),
		repository.NewAddressRepository(db),
	)
	return svc, user.ID, product
}

func checkoutReq(product entity.Product, qty int) CheckoutReq {
	return CheckoutReq{
		Items: []CheckoutItemIn{{
			ProductID:        product.ID,
			ProductVariantID: product.Variants[0].ID,
			Quantity:         qty,
		}},
		Address: &CheckoutAddressIn{
			City: "Thành phố Hồ Chí Minh", District: "Quận 1",
			Commune: "Phường Bến Nghé", Street: "12 Lê Lợi", Phone: "0901234567",
		},
		PaymentMethod: entity.PaymentMethodCOD,
	}
}

func TestCheckoutCreatesPendingOrder(t *testing.T) {
	svc, userID, product := newOrderFixture(t)

	order, err := svc.Checkout(userID, checkoutReq(product, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(50000), order.FinalPrice)
	assert.Equal(t, entity.StatusPending, order.CurrentStatus())
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Equal(t, "Nguyễn Văn An", order.FullName)
	require.Len(t, order.DeliveryInfo, 1)
	assert.Contains(t, order.DeliveryInfo[0].DeliveryAddress, "Quận 1")

	// stock decremented, sold counter incremented
	fresh, err := svc.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, fresh.Variants[0].Quantity)
	assert.Equal(t, 2, fresh.SoldQuantity)
}

func TestCheckoutRejectsOversell(t *testing.T) {
	svc, userID, product := newOrderFixture(t)

	_, err := svc.Checkout(userID, checkoutReq(product, 11))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrOutOfStock)
}

func TestTransitionsAppendHistory(t *testing.T) {
	svc, userID, product := newOrderFixture(t)
	order, err := svc.Checkout(userID, checkoutReq(product, 1))
	require.NoError(t, err)

	require.NoError(t, svc.Accept(order.ID))
	require.NoError(t, svc.Process(order.ID))
	require.NoError(t, svc.Deliver(order.ID))
	require.NoError(t, svc.Complete(order.ID))

	fresh, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, fresh.CurrentStatus())
	require.Len(t, fresh.DeliveryInfo, 5)
	assert.Equal(t, entity.StatusPending, fresh.DeliveryInfo[0].Status)
	assert.NotNil(t, fresh.DeliveryInfo[4].DeliveryDate)
}

func TestInvalidTransitionIsRejected(t *testing.T) {
	svc, userID, product := newOrderFixture(t)
	order, err := svc.Checkout(userID, checkoutReq(product, 1))
	require.NoError(t, err)

	// cannot skip straight to delivery
	assert.ErrorIs(t, svc.Deliver(order.ID), ErrInvalidTransition)

	// customer may cancel while pending, but not after acceptance
	require.NoError(t, svc.Accept(order.ID))
	assert.ErrorIs(t, svc.CancelByCustomer(order.ID, userID), ErrInvalidTransition)
}

func TestCustomerCancelWhilePending(t *testing.T) {
	svc, userID, product := newOrderFixture(t)
	order, err := svc.Checkout(userID, checkoutReq(product, 1))
	require.NoError(t, err)

	require.NoError(t, svc.CancelByCustomer(order.ID, userID))
	fresh, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelledByYou, fresh.CurrentStatus())
}

func TestTrackingAppendGuardAgainstConcurrentTransition(t *testing.T) {
	svc, userID, product := newOrderFixture(t)
	order, err := svc.Checkout(userID, checkoutReq(product, 1))
	require.NoError(t, err)

	// two writers race from the same pending snapshot; only the first lands
	repo := repository.NewOrderRepository(svc.db)
	accepted := &entity.DeliveryInfo{OrderID: order.ID, Status: entity.StatusAccepted}
	require.NoError(t, repo.AppendTrackingGuard(svc.db, accepted, entity.StatusPending))

	cancelled := &entity.DeliveryInfo{OrderID: order.ID, Status: entity.StatusCancelledByYou}
	err = repo.AppendTrackingGuard(svc.db, cancelled, entity.StatusPending)
	assert.ErrorIs(t, err, repository.ErrStaleStatus)

	fresh, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, fresh.DeliveryInfo, 2)
	assert.Equal(t, entity.StatusAccepted, fresh.CurrentStatus())
}
