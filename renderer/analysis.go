package renderer

import (
	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// AnalysisMarkdown renders the AI analysis view for one symbol.
func AnalysisMarkdown(a fintrade.Analysis, currency string) string {
	partials := map[string]string{
		"analysis_plan":     "templates/analysis_plan.md",
		"analysis_sections": "templates/analysis_sections.md",
	}
	return renderTemplate("analysis", "templates/analysis.md", partials, NewAnalysis(a, currency))
}
