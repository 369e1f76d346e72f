package parser

import (
	"github.com/cardlens/statement-parser/internal/models"
)

// defaultMinScore is the minimum keyword score a profile must reach before
// its classification is trusted.
const defaultMinScore = 1

// classify scores every configured profile against the text and picks the
// strictly highest scorer; ties keep the earlier profile in declaration
// order. A best score below minScore yields the Unknown classification with
// minimum confidence; that is a normal outcome, not an error, and extraction
// then runs on the generic patterns only.
func classify(text string, minScore int) (models.Classification, *Profile) {
	var best *Profile
	bestScore := 0
	for _, p := range profiles {
		if s := p.score(text); s > bestScore {
			best = p
			bestScore = s
		}
	}

	if best == nil || bestScore < minScore {
		return models.Classification{Issuer: models.IssuerUnknown, Confidence: 0}, nil
	}

	confidence := float64(bestScore) / float64(best.maxScore())
	if confidence > 1 {
		confidence = 1
	}
	return models.Classification{Issuer: best.Name, Confidence: confidence}, best
}
