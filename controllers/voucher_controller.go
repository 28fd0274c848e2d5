package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offistation-service/middleware"
	"offistation-service/models"
	"offistation-service/services"
)

// VoucherController handles applying and removing the cart voucher.
type VoucherController struct {
	voucherService services.VoucherService
}

// NewVoucherController creates a new VoucherController.
func NewVoucherController(voucherService services.VoucherService) *VoucherController {
	return &VoucherController{voucherService: voucherService}
}

// ApplyVoucher handles POST /cart/voucher.
func (vc *VoucherController) ApplyVoucher(ctx *gin.Context) {
	var req models.ApplyVoucherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, svcErr := vc.voucherService.Apply(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey), req.Code)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveVoucher handles DELETE /cart/voucher.
func (vc *VoucherController) RemoveVoucher(ctx *gin.Context) {
	if svcErr := vc.voucherService.Remove(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Voucher removed"})
}
