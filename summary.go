package polarity

import "gonum.org/v1/gonum/stat"

// Summary aggregates the verdicts of several analyses.
type Summary struct {
	Total          int     `json:"total"`
	Positive       int     `json:"positive"`
	Negative       int     `json:"negative"`
	Neutral        int     `json:"neutral"`
	NoVerdict      int     `json:"no_verdict"`
	MeanNetScore   float64 `json:"mean_net_score"`
	StdDevNetScore float64 `json:"stddev_net_score"`
}

// Summarize counts verdicts and computes the mean and sample standard
// deviation of the net scores. A nil entry is a text that produced no
// verdict; it is counted but contributes no score.
func Summarize(analyses []*Analysis) Summary {
	s := Summary{Total: len(analyses)}

	scores := make([]float64, 0, len(analyses))
	for _, a := range analyses {
		if a == nil {
			s.NoVerdict++
			continue
		}
		switch a.Verdict.Class {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
		scores = append(scores, float64(a.Matches.NetScore()))
	}

	switch len(scores) {
	case 0:
	case 1:
		s.MeanNetScore = scores[0]
	default:
		s.MeanNetScore, s.StdDevNetScore = stat.MeanStdDev(scores, nil)
	}
	return s
}
