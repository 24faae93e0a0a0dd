package v1

import (
	"encoding/json"
	"io"
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.GET("/me", handler.GetMyResume)
		resumes.PUT("/me", handler.UpdateMyResume)
		resumes.POST("/upload", uploadLimiter, handler.Upload)
	}
}

// GetMyResume godoc
// @Summary      Get my resume
// @Description  Return the authenticated user's basis resume
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/me [get]
// @Security     BearerAuth
func (h *ResumeHandler) GetMyResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resume, err := h.resumeUC.GetMyResume(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

// UpdateMyResume godoc
// @Summary      Update my resume
// @Description  Merge the submitted sections over the stored resume document
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ResumePatch  true  "Resume sections to replace"
// @Success      200      {object}  response.Response{data=domain.Resume}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /resumes/me [put]
// @Security     BearerAuth
func (h *ResumeHandler) UpdateMyResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read request body", nil)
		return
	}

	// Shape gate first: the payload must look like a resume document before
	// it is decoded into a patch.
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil || !domain.ValidShape(raw) {
		response.Error(c, http.StatusBadRequest, "Request body is not a valid resume document", nil)
		return
	}

	var patch domain.ResumePatch
	if err := json.Unmarshal(body, &patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	resume, err := h.resumeUC.UpdateMyResume(c, userID, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

// Upload godoc
// @Summary      Upload a resume file
// @Description  Validate and store an original resume file, then attach it to the user's resume
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file (pdf, doc, docx, txt or image)"
// @Success      200   {object}  response.Response{data=domain.Resume}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /resumes/upload [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "A file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to open uploaded file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read uploaded file", nil)
		return
	}

	resume, err := h.resumeUC.UploadResume(c, userID, domain.ResumeUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", resume)
}
