package controller

import (
	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
	"github.com/Sitalakshmib/AceIt-sub001/internal/service"
	"github.com/Sitalakshmib/AceIt-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 获取进度仪表盘
// @Description 获取用户的完整进度报表：周活动曲线、技能评分、成就、目标与建议
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/dashboard [get]
func (c *ProgressController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.ProgressService.GetUserDashboard(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 获取原始进度快照
// @Description 返回数据库装配出的原始快照，供前端比对或调试
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/snapshot [get]
func (c *ProgressController) GetSnapshot(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.ProgressService.GetUserSnapshot(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, snapshot)
}

// @Summary 预览进度报表
// @Description 对请求体中的快照做无状态推导，不读库不写缓存；渲染层可用它预览任意快照
// @Tags 进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param snapshot body model.RawSnapshot true "原始快照"
// @Success 200 {object} util.Response
// @Router /api/progress/preview [post]
func (c *ProgressController) PreviewReport(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var snapshot model.RawSnapshot
	if err := ctx.ShouldBindJSON(&snapshot); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report := c.ProgressService.BuildEnhancedReport(&snapshot, service.ReportOptions{})
	util.Success(ctx, report)
}
