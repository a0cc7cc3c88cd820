package controllers

import (
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/pkg/listing"
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /admin/users — 5 per page, search on name/email, filter by role
func (uc *UserController) AdminList(c *gin.Context) {
	users, err := uc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	search := c.Query("search")
	role := c.Query("role")
	filtered := listing.Filter(users,
		func(u entity.User) bool {
			return listing.MatchSubstring(u.FullName, search) || listing.MatchSubstring(u.Email, search)
		},
		func(u entity.User) bool { return role == "" || u.Role.Name == role },
	)
	sorted := listing.SortBy(filtered, func(a, b entity.User) bool {
		return listing.LessString(a.FullName, b.FullName)
	})
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := listing.Paginate(sorted, page, listing.PageSizeAdminTable)
	resp.List(c, items, meta)
}

// GET /admin/users/:id
func (uc *UserController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	user, err := uc.svc.GetByID(uint(id))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// PATCH /admin/users/:id/role
func (uc *UserController) UpdateRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.svc.UpdateRole(uint(id), req.Role)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "role not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /admin/users/:id/archive
func (uc *UserController) Archive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := uc.svc.Archive(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Tài khoản đã bị vô hiệu hóa"})
}

// PATCH /admin/users/:id/restore
func (uc *UserController) Restore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := uc.svc.Restore(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Tài khoản đã được kích hoạt lại"})
}
