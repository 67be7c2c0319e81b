package sentiment

import (
	"log/slog"
	"strings"

	"github.com/jonreiter/govader"
)

type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Result is the sentiment judgment for one text. Score is the VADER compound
// score in [-1, 1]; Label is a pure function of Score against the thresholds.
type Result struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

const (
	DefaultPositiveThreshold = 0.05
	DefaultNegativeThreshold = -0.05
)

// Analyzer wraps the VADER lexicon analyzer. Construction loads the lexicon,
// so build one per process and share it; it holds no per-call state and is
// safe for concurrent use.
type Analyzer struct {
	vader    *govader.SentimentIntensityAnalyzer
	positive float64
	negative float64
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithThresholds(DefaultPositiveThreshold, DefaultNegativeThreshold)
}

func NewAnalyzerWithThresholds(positive, negative float64) *Analyzer {
	return &Analyzer{
		vader:    govader.NewSentimentIntensityAnalyzer(),
		positive: positive,
		negative: negative,
	}
}

// Analyze scores a text. Blank input short-circuits to neutral without
// touching the analyzer, and an analyzer panic degrades to neutral so one
// bad article never aborts a batch.
func (a *Analyzer) Analyze(text string) (res Result) {
	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral, Score: 0}
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("sentiment analysis failed", "panic", r)
			res = Result{Label: LabelNeutral, Score: 0}
		}
	}()

	compound := a.vader.PolarityScores(text).Compound
	return Result{Label: a.Classify(compound), Score: compound}
}

// Classify maps a compound score to a label. Both thresholds are inclusive:
// exactly +0.05 is positive and exactly -0.05 is negative.
func (a *Analyzer) Classify(score float64) Label {
	switch {
	case score >= a.positive:
		return LabelPositive
	case score <= a.negative:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
