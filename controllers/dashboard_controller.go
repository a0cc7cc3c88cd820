package controllers

import (
	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /admin/dashboard — headline totals, best sellers and recent orders
func (dc *DashboardController) Dashboard(c *gin.Context) {
	db := dc.DB

	var totalUsers, totalProducts, totalOrders int64
	var totalRevenue int64
	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Product{}).Where("is_active = ?", true).Count(&totalProducts).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Order{}).Count(&totalOrders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Order{}).
		Select("COALESCE(SUM(final_price), 0)").Scan(&totalRevenue).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var products []entity.Product
	if err := db.Preload("Images").Where("is_active = ?", true).Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	sorted := listing.SortBy(products, listing.Desc(func(a, b entity.Product) bool {
		return a.SoldQuantity < b.SoldQuantity
	}))
	bestSellers, _ := listing.Paginate(sorted, 1, listing.PageSizeBestSellers)

	var recent []entity.Order
	if err := db.Preload("DeliveryInfo", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id DESC").Limit(5).Find(&recent).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	recentRows := make([]orderRow, 0, len(recent))
	for _, o := range recent {
		recentRows = append(recentRows, toOrderRow(o))
	}

	resp.OK(c, gin.H{
		"totalUsers":    totalUsers,
		"totalProducts": totalProducts,
		"totalOrders":   totalOrders,
		"totalRevenue":  totalRevenue,
		"bestSellers":   bestSellers,
		"recentOrders":  recentRows,
	})
}
