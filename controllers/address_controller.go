package controllers

import (
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/repository"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	repo *repository.AddressRepository
}

func NewAddressController(repo *repository.AddressRepository) *AddressController {
	return &AddressController{repo: repo}
}

type AddressRequest struct {
	City     string `json:"city" binding:"required"`
	District string `json:"district" binding:"required"`
	Commune  string `json:"commune" binding:"required"`
	Street   string `json:"street" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// GET /profile/addresses
func (ac *AddressController) List(c *gin.Context) {
	var addresses []entity.UserAddress
	if err := ac.repo.FindByUser(utils.CurrentUserID(c), &addresses); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addresses)
}

// POST /profile/addresses
func (ac *AddressController) Create(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr := entity.UserAddress{
		UserID:   utils.CurrentUserID(c),
		City:     req.City,
		District: req.District,
		Commune:  req.Commune,
		Street:   req.Street,
		Phone:    req.Phone,
	}
	if err := ac.repo.Create(&addr); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addr)
}

// PUT /profile/addresses/:id
func (ac *AddressController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	if _, err := ac.repo.FindByIDAndUser(uint(id), uid); err != nil {
		resp.NotFound(c, "address not found")
		return
	}
	err := ac.repo.Update(uint(id), uid, map[string]any{
		"city": req.City, "district": req.District, "commune": req.Commune,
		"street": req.Street, "phone": req.Phone,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	addr, err := ac.repo.FindByIDAndUser(uint(id), uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addr)
}

// DELETE /profile/addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ac.repo.Delete(uint(id), utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Địa chỉ đã được xóa"})
}
