// ABOUTME: Dashboard aggregation: windows, scores, and insights in one object.
// ABOUTME: Distinguishes "nothing logged yet" from a computed score of zero.
package dashboard

import (
	"fmt"

	"github.com/harperreed/lifedash/internal/insight"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/score"
	"github.com/harperreed/lifedash/internal/storage"
)

// Scores holds the normalized 0-100 score per domain plus the overall
// average.
type Scores struct {
	Body       int `json:"body"`
	Mind       int `json:"mind"`
	Finance    int `json:"finance"`
	Discipline int `json:"discipline"`
	Overall    int `json:"overall"`
}

// Data is the assembled dashboard payload. Scores is nil when no
// domain has any data -- the explicit empty state, not all-zero scores.
type Data struct {
	Body       []*models.BodyLog       `json:"body"`
	Mind       []*models.MindLog       `json:"mind"`
	Finance    []*models.FinanceLog    `json:"finance"`
	Discipline []*models.DisciplineDay `json:"discipline"`
	Scores     *Scores                 `json:"scores,omitempty"`
	Insights   []insight.Insight       `json:"insights"`
}

// Empty reports whether nothing has been logged in any domain.
func (d *Data) Empty() bool {
	return d.Scores == nil
}

// Build fetches the dashboard windows from the repository, scores each
// domain from its most recent entry, and runs the insight rules over
// the full windows.
func Build(repo storage.Repository) (*Data, error) {
	body, err := repo.ListBodyLogs(storage.LogWindowLimit)
	if err != nil {
		return nil, fmt.Errorf("load body window: %w", err)
	}
	mind, err := repo.ListMindLogs(storage.LogWindowLimit)
	if err != nil {
		return nil, fmt.Errorf("load mind window: %w", err)
	}
	finance, err := repo.ListFinanceLogs(storage.LogWindowLimit)
	if err != nil {
		return nil, fmt.Errorf("load finance window: %w", err)
	}
	discipline, err := repo.AggregateDiscipline(storage.LogWindowLimit)
	if err != nil {
		return nil, fmt.Errorf("load discipline window: %w", err)
	}

	data := &Data{
		Body:       body,
		Mind:       mind,
		Finance:    finance,
		Discipline: discipline,
		Insights:   []insight.Insight{},
	}

	// All domains empty: return the explicit empty state rather than
	// an all-zero scores object.
	if len(body) == 0 && len(mind) == 0 && len(finance) == 0 && len(discipline) == 0 {
		return data, nil
	}

	// Windows are most-recent-first; index 0 is the latest log.
	var latestBody *models.BodyLog
	if len(body) > 0 {
		latestBody = body[0]
	}
	var latestMind *models.MindLog
	if len(mind) > 0 {
		latestMind = mind[0]
	}
	var latestFinance *models.FinanceLog
	if len(finance) > 0 {
		latestFinance = finance[0]
	}
	var latestDiscipline *models.DisciplineDay
	if len(discipline) > 0 {
		latestDiscipline = discipline[0]
	}

	s := &Scores{
		Body:       score.Body(latestBody),
		Mind:       score.Mind(latestMind),
		Finance:    score.Finance(latestFinance),
		Discipline: score.Discipline(latestDiscipline),
	}
	s.Overall = score.Overall(s.Body, s.Mind, s.Finance, s.Discipline)
	data.Scores = s

	data.Insights = insight.Generate(insight.Window{
		Body:       body,
		Mind:       mind,
		Finance:    finance,
		Discipline: discipline,
	})

	return data, nil
}
