package controllers

import (
	"strconv"

	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LocationController serves the checkout address cascade. Selecting a
// province resets district and commune client-side; each step is a fresh
// lookup with no caching.
type LocationController struct {
	svc *services.LocationService
}

func NewLocationController(svc *services.LocationService) *LocationController {
	return &LocationController{svc: svc}
}

// GET /locations/provinces
func (lc *LocationController) Provinces(c *gin.Context) {
	provinces, err := lc.svc.Provinces(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Warn("fetch provinces")
		resp.Error(c, 502, "Bad Gateway", "không thể tải danh sách tỉnh/thành phố")
		return
	}
	resp.OK(c, provinces)
}

// GET /locations/provinces/:code/districts
func (lc *LocationController) Districts(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		resp.BadRequest(c, "invalid province code")
		return
	}
	districts, err := lc.svc.Districts(c.Request.Context(), code)
	if err != nil {
		logrus.WithError(err).Warn("fetch districts")
		resp.Error(c, 502, "Bad Gateway", "không thể tải danh sách quận/huyện")
		return
	}
	resp.OK(c, districts)
}

// GET /locations/districts/:code/communes
func (lc *LocationController) Communes(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		resp.BadRequest(c, "invalid district code")
		return
	}
	communes, err := lc.svc.Communes(c.Request.Context(), code)
	if err != nil {
		logrus.WithError(err).Warn("fetch communes")
		resp.Error(c, 502, "Bad Gateway", "không thể tải danh sách phường/xã")
		return
	}
	resp.OK(c, communes)
}
