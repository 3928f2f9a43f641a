// Package render draws the statistics card as an SVG document.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/statcardhq/statcard/internal/config"
	"github.com/statcardhq/statcard/internal/domain"
)

const (
	cardWidth  = 800
	cardHeight = 600

	// languageBarMaxWidth is the pixel width of a 100% language bar.
	languageBarMaxWidth = 280

	// heatmapWeeks is how many trailing weeks of the calendar are drawn.
	heatmapWeeks = 12
	heatmapRows  = 7
)

// Card renders the statistics card and returns the SVG document.
func Card(s *domain.CardStats, theme config.Theme) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(cardWidth, cardHeight)

	canvas.Def()
	canvas.LinearGradient("bgGradient", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: theme.BackgroundStart, Opacity: 1.0},
		{Offset: 100, Color: theme.BackgroundEnd, Opacity: 1.0},
	})
	canvas.LinearGradient("titleGradient", 0, 0, 100, 0, []svg.Offcolor{
		{Offset: 0, Color: theme.Primary, Opacity: 1.0},
		{Offset: 50, Color: theme.Secondary, Opacity: 1.0},
		{Offset: 100, Color: theme.Accent, Opacity: 1.0},
	})
	canvas.Style("text/css", cardCSS(theme))
	canvas.DefEnd()

	canvas.Roundrect(0, 0, cardWidth, cardHeight, 10, 10, `fill="url(#bgGradient)"`)

	canvas.Text(40, 50, fmt.Sprintf("%s's GitHub Stats", s.DisplayName()), `class="header"`)

	drawStatTile(canvas, theme, 40, "Total Commits", groupDigits(s.Streaks.TotalContributions))
	drawStatTile(canvas, theme, 220, "Repositories", strconv.Itoa(s.Profile.PublicRepos))
	drawStatTile(canvas, theme, 400, "Total Stars", groupDigits(s.TotalStars))
	drawStatTile(canvas, theme, 580, "Followers", strconv.Itoa(s.Profile.Followers))

	drawStreakPanel(canvas, theme, s.Streaks)
	drawLanguagePanel(canvas, theme, s.TopLanguages)
	drawActivityPanel(canvas, theme, s)

	canvas.Text(cardWidth/2, 580, "Generated by statcard", `class="stat-label"`, `text-anchor="middle"`)

	canvas.End()
	return buf.Bytes()
}

func cardCSS(theme config.Theme) string {
	return fmt.Sprintf(`
      .header { font: 600 28px 'Segoe UI', Ubuntu, sans-serif; fill: url(#titleGradient); }
      .stat-label { font: 400 14px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }
      .stat-value { font: 700 24px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }
      .lang-name { font: 500 13px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }
      .lang-percent { font: 600 12px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }
      .section-title { font: 600 18px 'Segoe UI', Ubuntu, sans-serif; fill: %s; }
`, theme.TextSecondary, theme.Text, theme.Text, theme.TextSecondary, theme.Primary)
}

func panelStyle(theme config.Theme) []string {
	return []string{
		fmt.Sprintf(`fill="%s"`, theme.CardFill),
		fmt.Sprintf(`stroke="%s"`, theme.Border),
		`stroke-width="1.5"`,
		`opacity="0.9"`,
	}
}

func drawStatTile(canvas *svg.SVG, theme config.Theme, x int, label, value string) {
	canvas.Roundrect(x, 80, 170, 100, 12, 12, panelStyle(theme)...)
	center := x + 85
	canvas.Text(center, 110, label, `class="stat-label"`, `text-anchor="middle"`)
	canvas.Text(center, 145, value, `class="stat-value"`, `text-anchor="middle"`)
}

func drawStreakPanel(canvas *svg.SVG, theme config.Theme, streaks domain.StreakResult) {
	canvas.Text(40, 220, "Contribution Streaks", `class="section-title"`)
	canvas.Roundrect(40, 235, 350, 120, 12, 12, panelStyle(theme)...)

	canvas.Text(60, 270, "Current Streak", `class="stat-label"`)
	canvas.Text(60, 300, fmt.Sprintf("%d days", streaks.CurrentStreak),
		`class="stat-value"`, fmt.Sprintf(`fill="%s"`, theme.Accent))

	canvas.Text(60, 330, "Longest Streak", `class="stat-label"`)
	canvas.Text(60, 360, fmt.Sprintf("%d days", streaks.LongestStreak),
		`class="stat-value"`, fmt.Sprintf(`fill="%s"`, theme.Secondary))
}

func drawLanguagePanel(canvas *svg.SVG, theme config.Theme, languages []domain.LanguageShare) {
	canvas.Text(410, 220, "Top Languages", `class="section-title"`)
	canvas.Roundrect(410, 235, 350, 310, 12, 12, panelStyle(theme)...)

	y := 270
	for _, lang := range languages {
		barWidth := int(lang.Percentage / 100.0 * languageBarMaxWidth)

		canvas.Text(430, y, lang.Name, `class="lang-name"`)
		canvas.Text(740, y, fmt.Sprintf("%.1f%%", lang.Percentage),
			`class="lang-percent"`, `text-anchor="end"`)
		canvas.Roundrect(430, y+8, languageBarMaxWidth, 8, 4, 4, `fill="rgba(139, 148, 158, 0.2)"`)
		if barWidth > 0 {
			canvas.Roundrect(430, y+8, barWidth, 8, 4, 4,
				fmt.Sprintf(`fill="%s"`, theme.LanguageColor(lang.Name)))
		}
		y += 50
	}
}

func drawActivityPanel(canvas *svg.SVG, theme config.Theme, s *domain.CardStats) {
	canvas.Text(40, 385, "Recent Activity", `class="section-title"`)
	canvas.Roundrect(40, 400, 350, 145, 12, 12, panelStyle(theme)...)
	canvas.Text(60, 430, "Contribution Graph", `class="stat-label"`)

	drawHeatmap(canvas, theme, s.Calendar)

	canvas.Text(230, 450, "Avg per active day", `class="stat-label"`)
	canvas.Text(230, 467, fmt.Sprintf("%.1f", s.ActiveDayMean), `class="lang-name"`)
	canvas.Text(230, 487, "Best day", `class="stat-label"`)
	canvas.Text(230, 504, strconv.Itoa(s.ActiveDayPeak), `class="lang-name"`)
	canvas.Text(230, 524, "Total Forks", `class="stat-label"`)
	canvas.Text(230, 541, groupDigits(s.TotalForks), `class="lang-name"`)
}

// drawHeatmap renders the trailing weeks of the calendar as a grid of
// squares, one column per week, shaded by count relative to the window peak.
func drawHeatmap(canvas *svg.SVG, theme config.Theme, calendar []domain.DailyContribution) {
	const (
		squareSize = 8
		gap        = 4
		startX     = 60
		startY     = 450
	)

	window := calendar
	if n := heatmapWeeks * heatmapRows; len(window) > n {
		window = window[len(window)-n:]
	}
	peak := 0
	for _, d := range window {
		if d.Count > peak {
			peak = d.Count
		}
	}

	for i, d := range window {
		week := i / heatmapRows
		day := i % heatmapRows
		x := startX + week*(squareSize+gap)
		y := startY + day*(squareSize+gap)

		opacity := 0.2
		if peak > 0 && d.Count > 0 {
			opacity += 0.8 * float64(d.Count) / float64(peak)
		}
		canvas.Roundrect(x, y, squareSize, squareSize, 2, 2,
			fmt.Sprintf(`fill="%s"`, theme.Accent),
			fmt.Sprintf(`opacity="%.2f"`, opacity))
	}
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
