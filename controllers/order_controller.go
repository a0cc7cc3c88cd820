package controllers

import (
	"errors"
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/repository"
	"github.com/quark1412/FoodyRush-sub000/services"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// orderRow flattens an order for table screens; the status column is the
// derived current status, never a raw history element.
type orderRow struct {
	ID                   uint   `json:"id"`
	FullName             string `json:"fullName"`
	Phone                string `json:"phone"`
	PaymentMethod        string `json:"paymentMethod"`
	PaymentStatus        string `json:"paymentStatus"`
	FinalPrice           int64  `json:"finalPrice"`
	Status               string `json:"status"`
	CreatedAt            string `json:"createdAt"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate"`
}

func toOrderRow(o entity.Order) orderRow {
	return orderRow{
		ID:                   o.ID,
		FullName:             o.FullName,
		Phone:                o.Phone,
		PaymentMethod:        o.PaymentMethod,
		PaymentStatus:        o.PaymentStatus,
		FinalPrice:           o.FinalPrice,
		Status:               o.CurrentStatus(),
		CreatedAt:            o.CreatedAt.Format("02/01/2006 15:04"),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate.Format("02/01/2006"),
	}
}

// POST /orders — checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.Checkout(utils.CurrentUserID(c), req)
	if err != nil {
		if errors.Is(err, repository.ErrOutOfStock) {
			resp.BadRequest(c, "Sản phẩm đã hết hàng")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	logrus.WithFields(logrus.Fields{"orderId": order.ID, "finalPrice": order.FinalPrice}).Info("order created")
	resp.Created(c, gin.H{"id": order.ID, "finalPrice": order.FinalPrice, "status": order.CurrentStatus()})
}

// GET /profile/orders — my orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	status := c.Query("status")
	filtered := listing.Filter(orders, func(o entity.Order) bool {
		return status == "" || o.CurrentStatus() == status
	})
	rows := make([]orderRow, 0, len(filtered))
	for _, o := range filtered {
		rows = append(rows, toOrderRow(o))
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(rows, page, listing.PageSizeAdminTable)
	resp.List(c, items, meta)
}

// GET /orders/:id/tracking — full snapshot history, oldest first
func (oc *OrderController) Track(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.svc.GetForUser(uint(id), utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{
		"id":                   order.ID,
		"status":               order.CurrentStatus(),
		"expectedDeliveryDate": order.ExpectedDeliveryDate,
		"deliveryInfo":         order.DeliveryInfo,
		"orderItems":           order.OrderItems,
		"finalPrice":           order.FinalPrice,
		"paymentMethod":        order.PaymentMethod,
		"paymentStatus":        order.PaymentStatus,
	})
}

// PATCH /orders/:id/cancel — customer cancel, only while pending
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.svc.CancelByCustomer(uint(id), utils.CurrentUserID(c)); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.BadRequest(c, "Đơn hàng không thể hủy ở trạng thái hiện tại")
			return
		}
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{"message": "Đơn hàng đã được hủy"})
}

// GET /admin/orders — admin table, 5 per page, filter by status + search
func (oc *OrderController) AdminList(c *gin.Context) {
	orders, err := oc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	status := c.Query("status")
	search := c.Query("search")
	filtered := listing.Filter(orders,
		func(o entity.Order) bool { return status == "" || o.CurrentStatus() == status },
		func(o entity.Order) bool { return listing.MatchSubstring(o.FullName, search) },
	)
	rows := make([]orderRow, 0, len(filtered))
	for _, o := range filtered {
		rows = append(rows, toOrderRow(o))
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(rows, page, listing.PageSizeAdminTable)
	resp.List(c, items, meta)
}

// GET /admin/orders/:id
func (oc *OrderController) AdminDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.svc.GetByID(uint(id))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Action string `json:"action" binding:"required,oneof=accept process deliver complete cancel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var err error
	switch req.Action {
	case "accept":
		err = oc.svc.Accept(uint(id))
	case "process":
		err = oc.svc.Process(uint(id))
	case "deliver":
		err = oc.svc.Deliver(uint(id))
	case "complete":
		err = oc.svc.Complete(uint(id))
	case "cancel":
		err = oc.svc.CancelByEmployee(uint(id))
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.BadRequest(c, "invalid status transition")
			return
		}
		resp.ServerError(c, err)
		return
	}

	order, err := oc.svc.GetByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": order.ID, "status": order.CurrentStatus()})
}

// PATCH /admin/orders/:id/paid
func (oc *OrderController) MarkPaid(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.svc.MarkPaid(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "payment confirmed"})
}
