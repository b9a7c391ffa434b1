package service

import (
	"strings"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/model"
)

const defaultQuestionScore = 1

// OptionID names the option at position i: "A".."Z", then "AA", "AB", ...
func OptionID(i int) string {
	id := ""
	for n := i; n >= 0; n = n/26 - 1 {
		id = string(rune('A'+n%26)) + id
	}
	return id
}

func buildOptions(in []dto.AnswerOptionCreateDTO) []model.AnswerOption {
	out := make([]model.AnswerOption, len(in))
	for i, o := range in {
		out[i] = model.AnswerOption{ID: OptionID(i), Text: o.Text}
	}
	return out
}

// PrepareQuestions turns incoming questions into bank entries. Option ids are
// lettered by position and setIndex continues from the highest index already
// used in the same set. canonical maps a set key to the subject's spelling of
// that set; unknown sets are kept as given.
func PrepareQuestions(existing []model.Question, incoming []dto.QuestionCreateDTO, canonical map[string]string, ids idgen.Generator) ([]model.Question, error) {
	next := make(map[string]int)
	used := make(map[string]struct{}, len(existing)+len(incoming))
	for _, q := range existing {
		if q.SetIndex > next[q.Set] {
			next[q.Set] = q.SetIndex
		}
		used[q.QuestionID] = struct{}{}
	}

	out := make([]model.Question, 0, len(incoming))
	for i, in := range incoming {
		set := strings.TrimSpace(in.Set)
		if name, ok := canonical[model.SetKey(set)]; ok {
			set = name
		}
		if set == "" {
			return nil, apperror.Validation("question %d: set is required", i+1)
		}
		score := in.Score
		if score == 0 {
			score = defaultQuestionScore
		}
		if score < 1 {
			return nil, apperror.Validation("question %d: score must be at least 1", i+1)
		}

		q := model.Question{
			QuestionID:      uniqueID(ids, idgen.PrefixQuestion, used),
			QuestionText:    strings.TrimSpace(in.QuestionText),
			AnswerOptions:   buildOptions(in.AnswerOptions),
			CorrectAnswerID: strings.ToUpper(strings.TrimSpace(in.CorrectAnswerID)),
			Score:           score,
			Set:             set,
		}
		if !q.HasOption(q.CorrectAnswerID) {
			return nil, apperror.Validation("question %d: correct answer %q does not match any option", i+1, in.CorrectAnswerID)
		}

		next[set]++
		q.SetIndex = next[set]
		out = append(out, q)
	}
	return out, nil
}

// uniqueID draws ids until one is not in used, then records it.
func uniqueID(ids idgen.Generator, prefix string, used map[string]struct{}) string {
	id := ids.Generate(prefix)
	for tries := 0; tries < 16; tries++ {
		if _, taken := used[id]; !taken {
			break
		}
		id = ids.Generate(prefix)
	}
	used[id] = struct{}{}
	return id
}
