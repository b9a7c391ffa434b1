package service

import (
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

const maxIDDraws = 5

// insertWithFreshID runs insert, drawing a new generated id whenever the insert
// hits a unique key while the record's natural key is still free. keyTaken
// reports whether the natural key is already stored; nil means the generated id
// is the only unique column. keyConflict is true when the natural key is taken.
func insertWithFreshID(op string, insert func() error, keyTaken func() (bool, error), redraw func()) (keyConflict bool, err error) {
	for draw := 1; ; draw++ {
		err = insert()
		if err == nil || !repository.IsDuplicate(err) {
			return false, err
		}
		if keyTaken != nil {
			taken, lookupErr := keyTaken()
			if lookupErr != nil {
				return false, lookupErr
			}
			if taken {
				return true, err
			}
		}
		if draw == maxIDDraws {
			return false, err
		}
		log.Debug().Str("op", op).Int("draw", draw).Msg("Generated id already taken, drawing another")
		redraw()
	}
}
