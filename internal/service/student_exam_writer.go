package service

import (
	"context"
	"errors"

	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

const maxWriteAttempts = 3

// mutateStudentExams loads the student by email, applies fn and writes the
// exam list back guarded by the student's version. When another request got
// there first the student is re-read and fn runs again, so fn must decide from
// the state it is given. An error from fn aborts without writing.
func mutateStudentExams(ctx context.Context, repo repository.StudentRepository, email string, fn func(*model.Student) error) (*model.Student, error) {
	for attempt := 1; ; attempt++ {
		student, err := findStudentByEmail(ctx, repo, email)
		if err != nil {
			return nil, err
		}
		if err := fn(student); err != nil {
			return nil, err
		}

		err = repo.UpdateExams(ctx, student)
		if err == nil {
			return student, nil
		}
		if errors.Is(err, repository.ErrStaleWrite) && attempt < maxWriteAttempts {
			log.Debug().Str("email", student.Email).Int("attempt", attempt).Msg("Concurrent student update, retrying")
			continue
		}
		return nil, storeFailure(err, "update student exams")
	}
}
