package controllers

import (
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{svc: svc}
}

// productComparator maps the sort query value to a comparator. Unknown
// values leave the fetch order (newest first) untouched.
func productComparator(sort string) func(a, b entity.Product) bool {
	switch sort {
	case "price_asc":
		return func(a, b entity.Product) bool { return a.Price < b.Price }
	case "price_desc":
		return listing.Desc(func(a, b entity.Product) bool { return a.Price < b.Price })
	case "rating_asc":
		return func(a, b entity.Product) bool { return a.Rating < b.Rating }
	case "rating_desc":
		return listing.Desc(func(a, b entity.Product) bool { return a.Rating < b.Rating })
	case "name_asc":
		return func(a, b entity.Product) bool { return listing.LessString(a.Name, b.Name) }
	case "name_desc":
		return listing.Desc(func(a, b entity.Product) bool { return listing.LessString(a.Name, b.Name) })
	default:
		return nil
	}
}

func productFilters(c *gin.Context) []listing.Predicate[entity.Product] {
	search := c.Query("search")
	var preds []listing.Predicate[entity.Product]
	preds = append(preds, func(p entity.Product) bool {
		return listing.MatchSubstring(p.Name, search)
	})
	if categoryID, err := strconv.Atoi(c.Query("categoryId")); err == nil && categoryID > 0 {
		preds = append(preds, func(p entity.Product) bool {
			return p.CategoryID == uint(categoryID)
		})
	}
	return preds
}

// GET /products — storefront grid, 9 per page
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.svc.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	filtered := listing.Filter(products, productFilters(c)...)
	sorted := listing.SortBy(filtered, productComparator(c.Query("sort")))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(sorted, page, listing.PageSizeShopGrid)
	resp.List(c, items, meta)
}

// GET /admin/products — admin table, 5 per page, archived included
func (pc *ProductController) AdminList(c *gin.Context) {
	products, err := pc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	filtered := listing.Filter(products, productFilters(c)...)
	sorted := listing.SortBy(filtered, productComparator(c.Query("sort")))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(sorted, page, listing.PageSizeAdminTable)
	resp.List(c, items, meta)
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	product, err := pc.svc.GetByID(uint(id))
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}
	resp.OK(c, gin.H{"product": product, "sizes": product.Sizes()})
}

// POST /admin/products
func (pc *ProductController) Create(c *gin.Context) {
	var req services.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.svc.Create(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, product)
}

// PATCH /admin/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.svc.Update(uint(id), req)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// PUT /admin/products/:id/variants
func (pc *ProductController) SetVariant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.ProductVariantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := pc.svc.SetVariant(uint(id), req); err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "variant saved"})
}

// PATCH /admin/products/:id/archive
func (pc *ProductController) Archive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := pc.svc.Archive(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Sản phẩm đã được lưu trữ"})
}

// PATCH /admin/products/:id/restore
func (pc *ProductController) Restore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := pc.svc.Restore(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Sản phẩm đã được khôi phục"})
}
