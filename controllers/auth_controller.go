package controllers

import (
	"errors"

	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.svc.Register(req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "fullName": user.FullName,
		"phone": user.Phone, "role": user.Role.Name,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pair, user, err := a.svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	logrus.WithFields(logrus.Fields{"userId": user.ID, "role": user.Role.Name}).Info("user logged in")
	resp.OK(c, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "fullName": user.FullName,
			"role": user.Role.Name, "permissions": user.Role.PermissionNames(),
		},
	})
}

// POST /auth/refreshToken
func (a *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pair, err := a.svc.Refresh(req.RefreshToken)
	if err != nil {
		resp.Unauthorized(c, "invalid refresh token")
		return
	}
	resp.OK(c, pair)
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "fullName": user.FullName,
		"phone": user.Phone, "avatarPath": user.AvatarPath,
		"role": user.Role.Name, "permissions": user.Role.PermissionNames(),
	})
}

type UpdateMeRequest struct {
	FullName   *string `json:"fullName"`
	Phone      *string `json:"phone"`
	AvatarPath *string `json:"avatarPath"`
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.AvatarPath != nil {
		updates["avatar_path"] = *req.AvatarPath
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := a.svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "fullName": user.FullName, "phone": user.Phone, "avatarPath": user.AvatarPath})
}
