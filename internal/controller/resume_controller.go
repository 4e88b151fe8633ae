package controller

import (
	"github.com/Sitalakshmib/AceIt-sub001/internal/service"
	"github.com/Sitalakshmib/AceIt-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// @Summary 上传简历
// @Description 上传简历文件并创建待分析记录，分析由外部服务异步完成
// @Tags 简历
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "简历文件 (pdf/doc/docx)"
// @Success 201 {object} util.Response
// @Router /api/resume/upload [post]
func (c *ResumeController) UploadResume(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	review, err := c.ResumeService.UploadResume(ctx.Request.Context(), user.UserID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		if err == util.ErrFileTooLarge || err == util.ErrUnsupportedFile {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, review)
}

// @Summary 获取简历审阅记录
// @Tags 简历
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/resume/reviews [get]
func (c *ResumeController) GetReviews(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	reviews, err := c.ResumeService.GetUserReviews(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reviews)
}
