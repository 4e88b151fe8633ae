package controller

import (
	"strconv"

	"github.com/Sitalakshmib/AceIt-sub001/internal/service"
	"github.com/Sitalakshmib/AceIt-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// @Summary 记录练习活动
// @Description 记录一次通用练习事件
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ActivityRequest true "活动信息"
// @Success 201 {object} util.Response
// @Router /api/activities [post]
func (c *ActivityController) RecordActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.RecordActivity(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, activity)
}

// @Summary 获取最近练习活动
// @Tags 练习
// @Produce json
// @Security BearerAuth
// @Param limit query int false "条数" default(20)
// @Success 200 {object} util.Response
// @Router /api/activities [get]
func (c *ActivityController) GetRecentActivities(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	activities, err := c.ActivityService.GetRecentActivities(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}

// @Summary 提交智力测验成绩
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.AptitudeResultRequest true "测验成绩"
// @Success 201 {object} util.Response
// @Router /api/aptitude/results [post]
func (c *ActivityController) RecordAptitudeResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AptitudeResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ActivityService.RecordAptitudeResult(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary 提交编程题结果
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CodingSubmissionRequest true "提交结果"
// @Success 201 {object} util.Response
// @Router /api/coding/submissions [post]
func (c *ActivityController) RecordCodingSubmission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CodingSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.ActivityService.RecordCodingSubmission(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, submission)
}

// @Summary 记录模拟面试
// @Description 记录一次模拟面试或小组讨论练习
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.InterviewSessionRequest true "面试记录"
// @Success 201 {object} util.Response
// @Router /api/interviews/sessions [post]
func (c *ActivityController) RecordInterviewSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.InterviewSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ActivityService.RecordInterviewSession(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}
