// internal/handlers/questionnaire.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kidsafe-go/internal/models"
)

type QuestionnaireHandler struct {
	questionnaire *models.Questionnaire
}

func NewQuestionnaireHandler(qn *models.Questionnaire) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaire: qn}
}

// Show returns the question list for the form client. Scoring fields are
// kept out of the JSON shape; the client only needs ids, prompts, options,
// and the required/multi flags.
func (h *QuestionnaireHandler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, h.questionnaire)
}
