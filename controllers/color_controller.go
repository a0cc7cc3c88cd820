package controllers

import (
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"

	"github.com/gin-gonic/gin"
)

type ColorController struct {
	svc *services.ColorService
}

func NewColorController(svc *services.ColorService) *ColorController {
	return &ColorController{svc: svc}
}

type ColorRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

// GET /admin/colors — admin table, 5 per page
func (cc *ColorController) AdminList(c *gin.Context) {
	colors, err := cc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	search := c.Query("search")
	filtered := listing.Filter(colors, func(col entity.Color) bool {
		return listing.MatchSubstring(col.Name, search)
	})
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(filtered, page, listing.PageSizeAdminTable)
	resp.List(c, items, meta)
}

// POST /admin/colors
func (cc *ColorController) Create(c *gin.Context) {
	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	color, err := cc.svc.Create(req.Name, req.Code)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, color)
}

// PATCH /admin/colors/:id
func (cc *ColorController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	color, err := cc.svc.Update(uint(id), req.Name, req.Code)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, color)
}

// PATCH /admin/colors/:id/archive
func (cc *ColorController) Archive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.svc.Archive(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Màu sắc đã được lưu trữ"})
}

// PATCH /admin/colors/:id/restore
func (cc *ColorController) Restore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.svc.Restore(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Màu sắc đã được khôi phục"})
}
