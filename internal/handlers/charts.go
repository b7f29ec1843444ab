// internal/handlers/charts.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"kidsafe-go/internal/assessment"
)

// DomainChart renders the per-domain score breakdown of the frozen
// assessment as a bar chart page. Domains are already ordered weakest
// first by the engine.
func (h *AssessmentHandler) DomainChart(c *gin.Context) {
	answers, ok := snapshotAnswers(c)
	if !ok {
		c.String(http.StatusBadRequest, "No assessment found. Please submit the questionnaire first.")
		return
	}

	res := assessment.Assess(answers, h.questionnaire)
	bar := generateDomainChart(res)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(c.Writer); err != nil {
		h.log.Error("Failed to render domain chart", zap.Error(err))
	}
}

func generateDomainChart(res *assessment.Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Safety Score by Domain",
			Subtitle: "Lower scores mean higher risk",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	names := make([]string, 0, len(res.DomainScores))
	items := make([]opts.BarData, 0, len(res.DomainScores))
	for _, d := range res.DomainScores {
		names = append(names, d.Domain)
		items = append(items, opts.BarData{Value: d.Score})
	}

	bar.SetXAxis(names).AddSeries("Domain score", items)
	return bar
}
