// internal/handlers/assessment.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kidsafe-go/internal/assessment"
	"kidsafe-go/internal/models"
)

// Session key under which the frozen answer set is kept between the
// scoring and guidance requests.
const snapshotKey = "answers_snapshot"

// Generic failure messages surfaced to the user. The engines never fail on
// malformed answers, so reaching these means the configuration itself is
// broken; details go to the log only.
const (
	reportFailureMsg   = "We couldn't generate the report. Please try again."
	guidanceFailureMsg = "We couldn't generate guidance. Please try again."
)

type AssessmentHandler struct {
	log           *zap.Logger
	questionnaire *models.Questionnaire
}

func NewAssessmentHandler(log *zap.Logger, qn *models.Questionnaire) *AssessmentHandler {
	return &AssessmentHandler{log: log, questionnaire: qn}
}

// Submit scores a submitted answer set and returns the risk report. The
// raw answers are frozen into the session so a later guidance request
// works from the same inputs even if the client form has changed since.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var answers models.AnswerSet
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer payload."})
		return
	}

	// A new submission replaces any previous snapshot.
	if raw, err := json.Marshal(answers); err == nil {
		session := sessions.Default(c)
		session.Set(snapshotKey, string(raw))
		if err := session.Save(); err != nil {
			h.log.Warn("Failed to save answer snapshot", zap.Error(err))
		}
	}

	report, err := h.buildReport(answers)
	if err != nil {
		h.log.Error("Report generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": reportFailureMsg})
		return
	}

	c.JSON(http.StatusOK, report)
}

// buildReport wraps the pure engines so an unexpected panic surfaces as a
// single generic failure instead of taking the request down.
func (h *AssessmentHandler) buildReport(answers models.AnswerSet) (report *assessment.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("report computation panicked: %v", r)
		}
	}()
	return assessment.BuildRiskReport(answers, h.questionnaire), nil
}

// snapshotAnswers restores the frozen answer set from the session.
func snapshotAnswers(c *gin.Context) (models.AnswerSet, bool) {
	raw, ok := sessions.Default(c).Get(snapshotKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	var answers models.AnswerSet
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, false
	}
	return answers, true
}
