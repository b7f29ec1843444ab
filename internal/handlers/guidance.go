// internal/handlers/guidance.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kidsafe-go/internal/assessment"
	"kidsafe-go/internal/guidance"
	"kidsafe-go/internal/models"
)

type GuidanceHandler struct {
	log           *zap.Logger
	questionnaire *models.Questionnaire
}

func NewGuidanceHandler(log *zap.Logger, qn *models.Questionnaire) *GuidanceHandler {
	return &GuidanceHandler{log: log, questionnaire: qn}
}

// Generate builds the guidance bundle from the frozen answer snapshot.
// The assessment is recomputed from the snapshot so guidance stays
// consistent with it, and re-requesting simply replaces the previous
// bundle.
func (h *GuidanceHandler) Generate(c *gin.Context) {
	answers, ok := snapshotAnswers(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No assessment found. Please submit the questionnaire first."})
		return
	}

	bundle, err := h.buildGuidance(answers)
	if err != nil {
		h.log.Error("Guidance generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": guidanceFailureMsg})
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (h *GuidanceHandler) buildGuidance(answers models.AnswerSet) (bundle *guidance.Bundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("guidance computation panicked: %v", r)
		}
	}()
	res := assessment.Assess(answers, h.questionnaire)
	return guidance.Build(res, answers), nil
}
