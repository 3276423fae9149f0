// Package bank flattens question banks and splits them into schedule phases.
package bank

import "github.com/verte-zerg/hundred/internal/model"

// Flatten returns every question in section order, tagged with its section metadata.
func Flatten(sections []model.Section) []model.FlattenedQuestion {
	total := 0
	for _, sec := range sections {
		total += len(sec.Questions)
	}
	out := make([]model.FlattenedQuestion, 0, total)
	for _, sec := range sections {
		for _, q := range sec.Questions {
			out = append(out, model.FlattenedQuestion{
				Question: q,
				Section:  sec.Name,
				Icon:     sec.Icon,
				Color:    sec.Color,
			})
		}
	}
	return out
}

// Phases derives phase one and phase two from a document. When the document has no
// final bank, the flattened bank is split at cutoff.
func Phases(doc model.Document, cutoff int) (phaseOne, phaseTwo []model.FlattenedQuestion) {
	if doc.HasFinalBank() {
		return Flatten(doc.QuestionBank), Flatten(doc.FinalQuestionBank)
	}
	all := Flatten(doc.QuestionBank)
	if cutoff < 0 {
		cutoff = 0
	}
	if cutoff > len(all) {
		cutoff = len(all)
	}
	return all[:cutoff:cutoff], all[cutoff:]
}
