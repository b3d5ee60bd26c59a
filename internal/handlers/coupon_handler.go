package handlers

import (
	"net/http"

	"github.com/dloopapp/dloop-partner-backend/internal/models"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// CouponHandler handles coupon HTTP requests
type CouponHandler struct {
	couponService *services.CouponService
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(couponService *services.CouponService) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// GetCoupons handles GET /coupons
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	coupons, err := h.couponService.GetCoupons(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// GetCouponByID handles GET /coupons/:id
func (h *CouponHandler) GetCouponByID(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	coupon, err := h.couponService.GetCoupon(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// CreateCoupon handles POST /coupons
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

// UpdateCoupon handles PUT /coupons/:id
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := h.couponService.UpdateCoupon(c.Request.Context(), owner, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// DeleteCoupon handles DELETE /coupons/:id
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.couponService.DeleteCoupon(c.Request.Context(), owner, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}

// RedeemCoupon handles POST /coupons/:id/redeem
func (h *CouponHandler) RedeemCoupon(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	coupon, err := h.couponService.RedeemCoupon(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// GetCouponCount handles GET /coupons/count
func (h *CouponHandler) GetCouponCount(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	count, err := h.couponService.CountCoupons(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
