package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/rs/zerolog/log"
)

// copyFlat copies same-named scalar fields; collections are mapped by hand.
func copyFlat(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		log.Error().Err(err).Msg("copier: failed to map model to response DTO")
	}
}

func toDepartmentDTO(d *model.Department) dto.DepartmentResponseDTO {
	var out dto.DepartmentResponseDTO
	copyFlat(&out, d)
	out.Classes = make([]dto.ClassDTO, len(d.Classes))
	for i, c := range d.Classes {
		out.Classes[i] = dto.ClassDTO{Name: c.Name, StudentCount: c.StudentCount}
	}
	return out
}

func toSetDTOs(sets []model.Set) []dto.SetDTO {
	out := make([]dto.SetDTO, len(sets))
	for i, s := range sets {
		out[i] = dto.SetDTO{Name: s.Name, Students: s.Students}
	}
	return out
}

func fromSetDTOs(sets []dto.SetDTO) []model.Set {
	out := make([]model.Set, len(sets))
	for i, s := range sets {
		out[i] = model.Set{Name: s.Name, Students: s.Students}
	}
	return out
}

func toSubjectDTO(s *model.Subject) dto.SubjectResponseDTO {
	var out dto.SubjectResponseDTO
	copyFlat(&out, s)
	out.Sets = toSetDTOs(s.Sets)
	return out
}

func toSetsDTO(s *model.Subject) dto.SetsResponseDTO {
	return dto.SetsResponseDTO{SubjectID: s.SubjectID, Sets: toSetDTOs(s.Sets), TotalStudents: s.TotalStudents}
}

func toQuestionDTO(q *model.Question) dto.QuestionResponseDTO {
	var out dto.QuestionResponseDTO
	copyFlat(&out, q)
	out.AnswerOptions = make([]dto.AnswerOptionDTO, len(q.AnswerOptions))
	for i, o := range q.AnswerOptions {
		out.AnswerOptions[i] = dto.AnswerOptionDTO{ID: o.ID, Text: o.Text}
	}
	return out
}

func toQuestionDTOs(qs []model.Question) []dto.QuestionResponseDTO {
	out := make([]dto.QuestionResponseDTO, len(qs))
	for i := range qs {
		out[i] = toQuestionDTO(&qs[i])
	}
	return out
}

func toQuestionBankDTO(b *model.QuestionBank, withQuestions bool) dto.QuestionBankResponseDTO {
	var out dto.QuestionBankResponseDTO
	copyFlat(&out, b)
	out.TotalQuestions = len(b.Questions)
	if withQuestions {
		out.Questions = toQuestionDTOs(b.Questions)
	}
	return out
}

func toStudentExamDTO(e *model.StudentExam) dto.StudentExamDTO {
	var out dto.StudentExamDTO
	copyFlat(&out, e)
	out.Status = string(e.Status)
	out.SelectedAnswers = make([]dto.SelectedAnswerDTO, len(e.SelectedAnswers))
	for i, a := range e.SelectedAnswers {
		out.SelectedAnswers[i] = dto.SelectedAnswerDTO{
			QuestionID:       a.QuestionID,
			SelectedAnswerID: a.SelectedAnswerID,
			IsCorrect:        a.IsCorrect,
			Score:            a.Score,
		}
	}
	out.Percentage = Percentage(e.Score, e.TotalScore)
	return out
}

func toStudentExamDTOs(exams []model.StudentExam) []dto.StudentExamDTO {
	out := make([]dto.StudentExamDTO, len(exams))
	for i := range exams {
		out[i] = toStudentExamDTO(&exams[i])
	}
	return out
}

func toStudentDTO(s *model.Student) dto.StudentResponseDTO {
	var out dto.StudentResponseDTO
	copyFlat(&out, s)
	out.Exams = toStudentExamDTOs(s.Exams)
	return out
}
