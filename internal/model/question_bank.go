package model

import (
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionBank holds every question of one subject, partitioned by set.
type QuestionBank struct {
	ID             uint                          `gorm:"primarykey" json:"-"`
	ExamID         string                        `json:"exam_id" gorm:"size:16;not null;uniqueIndex"`
	SubjectID      string                        `json:"subject_id" gorm:"size:16;not null;uniqueIndex"`
	Class          string                        `json:"class" gorm:"column:class_name"`
	Questions      datatypes.JSONSlice[Question] `json:"questions"`
	TotalQuestions int                           `json:"total_questions" gorm:"not null;default:0"`
	CreatedAt      time.Time                     `json:"created_at"`
	UpdatedAt      time.Time                     `json:"updated_at"`
}

type Question struct {
	QuestionID      string         `json:"question_id"`
	QuestionText    string         `json:"question_text"`
	AnswerOptions   []AnswerOption `json:"answer_options"`
	CorrectAnswerID string         `json:"correct_answer_id"`
	Score           int            `json:"score"`
	Set             string         `json:"set"`
	SetIndex        int            `json:"set_index"`
}

type AnswerOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BeforeSave keeps the derived question count in step with the list.
func (b *QuestionBank) BeforeSave(tx *gorm.DB) error {
	b.TotalQuestions = len(b.Questions)
	return nil
}

func (b *QuestionBank) FindQuestion(questionID string) (int, bool) {
	for i := range b.Questions {
		if b.Questions[i].QuestionID == questionID {
			return i, true
		}
	}
	return -1, false
}

// LastSetIndex is the highest SetIndex used in set, 0 when the set is empty.
func (b *QuestionBank) LastSetIndex(set string) int {
	last := 0
	for _, q := range b.Questions {
		if q.Set == set && q.SetIndex > last {
			last = q.SetIndex
		}
	}
	return last
}

// QuestionsInSet returns the questions whose set equals name exactly, ordered by SetIndex.
func (b *QuestionBank) QuestionsInSet(name string) []Question {
	out := make([]Question, 0)
	for _, q := range b.Questions {
		if q.Set == name {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SetIndex < out[j].SetIndex })
	return out
}

// HasOption reports whether id names one of the question's answer options.
func (q *Question) HasOption(id string) bool {
	for _, o := range q.AnswerOptions {
		if o.ID == id {
			return true
		}
	}
	return false
}
