package quizzes

import "strconv"

// ScoreAnswers grades each submitted answer against the quiz's question
// list and returns the scored answers plus their total.
//
// Multiple-choice answers score the matched option's value; scale answers
// score their numeric value; yes-no answers score 1 for "yes". Text
// answers and answers to unknown questions score zero but are still
// recorded.
func ScoreAnswers(questions []Question, answers []Answer) ([]ScoredAnswer, float64) {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	scored := make([]ScoredAnswer, 0, len(answers))
	total := 0.0
	for _, a := range answers {
		score := 0.0
		if q, ok := byID[a.QuestionID]; ok {
			switch q.Type {
			case TypeMultipleChoice:
				for _, opt := range q.Options {
					if opt.Text == a.Value {
						score = opt.Score
						break
					}
				}
			case TypeScale:
				if v, err := strconv.ParseFloat(a.Value, 64); err == nil {
					score = v
				}
			case TypeYesNo:
				if a.Value == "yes" {
					score = 1
				}
			}
		}

		total += score
		scored = append(scored, ScoredAnswer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Score:      score,
		})
	}

	return scored, total
}

// ResolveResult maps a total score onto the quiz's scoring ranges. A
// total outside every range gets a neutral fallback result.
func ResolveResult(ranges []ScoringRange, total float64) Result {
	for _, r := range ranges {
		if total >= r.Min && total <= r.Max {
			return Result{
				Label:           r.Label,
				Description:     r.Description,
				Recommendations: r.Recommendations,
			}
		}
	}
	return Result{
		Label:           "Results",
		Description:     "Thank you for completing the quiz.",
		Recommendations: []string{},
	}
}
