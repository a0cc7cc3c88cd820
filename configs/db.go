package configs

import (
	"github.com/quark1412/FoodyRush-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Permission{}, &entity.Role{}, &entity.User{}, &entity.UserAddress{},
		&entity.Category{}, &entity.Color{},
		&entity.Product{}, &entity.ProductImage{}, &entity.ProductVariant{},
		&entity.Order{}, &entity.OrderItem{}, &entity.DeliveryInfo{},
		&entity.Review{}, &entity.ReviewResponse{},
	)
}
