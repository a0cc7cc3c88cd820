package controllers

import (
	"errors"
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.svc.Create(utils.CurrentUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyReviewed), errors.Is(err, services.ErrOrderNotShipped),
			errors.Is(err, services.ErrProductNotInOrder):
			resp.BadRequest(c, err.Error())
		case services.IsNotFound(err):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, review)
}

// GET /products/:id/reviews — storefront, 4 per page, visible only
func (rc *ReviewController) ListForProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))
	reviews, err := rc.svc.ListForProduct(uint(productID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rating, _ := strconv.Atoi(c.Query("rating"))
	filtered := listing.Filter(reviews, func(r entity.Review) bool {
		return rating == 0 || r.Rating == rating
	})
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(filtered, page, listing.PageSizeReviews)
	resp.List(c, items, meta)
}

// GET /admin/reviews — 4 per page, filter by status/type/search
func (rc *ReviewController) AdminList(c *gin.Context) {
	reviews, err := rc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	status := c.Query("status")
	reviewType := c.Query("type")
	search := c.Query("search")
	filtered := listing.Filter(reviews,
		func(r entity.Review) bool { return status == "" || r.Status == status },
		func(r entity.Review) bool { return reviewType == "" || r.Type == reviewType },
		func(r entity.Review) bool { return listing.MatchSubstring(r.Content, search) },
	)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(filtered, page, listing.PageSizeReviews)
	resp.List(c, items, meta)
}

type ReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

// POST /admin/reviews/:id/reply
func (rc *ReviewController) Reply(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.svc.Reply(uint(id), utils.CurrentUserID(c), req.Content)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, review)
}

// PATCH /admin/reviews/:id/hide
func (rc *ReviewController) Hide(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.svc.Hide(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Đánh giá đã được ẩn"})
}

// PATCH /admin/reviews/:id/show
func (rc *ReviewController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.svc.Show(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Đánh giá đã được hiển thị"})
}
