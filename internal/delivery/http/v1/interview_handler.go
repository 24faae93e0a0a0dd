package v1

import (
	"net/http"
	"strings"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// SubmitAnswerRequest is the body for answering the pending interview
// question.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase, answerLimiter gin.HandlerFunc) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.POST("", handler.Start)
		interviews.GET("/:id", handler.GetSession)
		interviews.POST("/:id/answers", answerLimiter, handler.SubmitAnswer)
		interviews.DELETE("/:id", handler.Abandon)
	}
}

// Start godoc
// @Summary      Start a resume interview
// @Description  Create a new interview session and return the greeting and first question
// @Tags         interviews
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.InterviewStep}
// @Failure      401  {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Start(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	step, err := h.interviewUC.StartInterview(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview started", step)
}

// GetSession godoc
// @Summary      Get interview session state
// @Description  Return the current section, progress and collected answers of a session
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.InterviewSession}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetSession(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sessionID := c.Param("id")

	session, err := h.interviewUC.GetSession(c, userID, sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview session retrieved", session)
}

// SubmitAnswer godoc
// @Summary      Answer the pending interview question
// @Description  Record the answer and return the next bot messages, or the finished resume
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Session ID"
// @Param        request  body      SubmitAnswerRequest  true  "Answer text"
// @Success      200      {object}  response.Response{data=domain.InterviewStep}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /interviews/{id}/answers [post]
// @Security     BearerAuth
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sessionID := c.Param("id")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	// The interview state machine never sees blank input.
	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		response.Error(c, http.StatusBadRequest, "Answer must not be empty", nil)
		return
	}

	step, err := h.interviewUC.SubmitAnswer(c, userID, sessionID, answer)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Answer recorded", step)
}

// Abandon godoc
// @Summary      Abandon an interview
// @Description  Discard the session and everything collected so far
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Abandon(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sessionID := c.Param("id")

	if err := h.interviewUC.AbandonInterview(c, userID, sessionID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview abandoned", nil)
}
