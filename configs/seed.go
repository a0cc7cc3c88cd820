package configs

import (
	"errors"

	"github.com/quark1412/FoodyRush-sub000/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var permissionNames = []string{
	"PRODUCTS", "CATEGORIES", "COLORS", "ORDERS", "USERS", "REVIEWS", "STATISTICS",
}

// SeedRoles creates the permission catalog and the two base roles.
// Admin gets every permission; customer gets none.
func SeedRoles() error {
	permissions := make([]entity.Permission, 0, len(permissionNames))
	for _, name := range permissionNames {
		var perm entity.Permission
		err := db.Where("name = ?", name).First(&perm).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			perm = entity.Permission{Name: name}
			if err := db.Create(&perm).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		permissions = append(permissions, perm)
	}

	var admin entity.Role
	err := db.Where("name = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = entity.Role{Name: "admin", Permissions: permissions}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var customer entity.Role
	err = db.Where("name = ?", "customer").First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&entity.Role{Name: "customer"}).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}

func SeedAdmin(email, password string) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var role entity.Role
	if err := db.Where("name = ?", "admin").First(&role).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Quản trị viên",
		IsActive: true,
		RoleID:   role.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	logrus.WithField("email", email).Info("seeded admin account")
	return nil
}
