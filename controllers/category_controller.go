package controllers

import (
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{svc: svc}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GET /categories — active categories for the storefront filter bar
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.svc.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /admin/categories — admin table, 5 per page
func (cc *CategoryController) AdminList(c *gin.Context) {
	categories, err := cc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	search := c.Query("search")
	filtered := listing.Filter(categories, func(cat entity.Category) bool {
		return listing.MatchSubstring(cat.Name, search)
	})
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(filtered, page, listing.PageSizeAdminTable)
	resp.List(c, items, meta)
}

// POST /admin/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := cc.svc.Create(req.Name)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, category)
}

// PATCH /admin/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := cc.svc.Rename(uint(id), req.Name)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, category)
}

// PATCH /admin/categories/:id/archive
func (cc *CategoryController) Archive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.svc.Archive(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Danh mục đã được lưu trữ"})
}

// PATCH /admin/categories/:id/restore
func (cc *CategoryController) Restore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.svc.Restore(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Danh mục đã được khôi phục"})
}
