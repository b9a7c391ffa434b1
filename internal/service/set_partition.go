package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/model"
)

// SumStudents adds up the declared students of every set.
func SumStudents(sets []model.Set) int {
	total := 0
	for _, s := range sets {
		total += s.Students
	}
	return total
}

// ReconcileSets validates a full set list and returns it with trimmed names
// together with the total to store. With autoCalculate the total is the sum of
// the sets, otherwise declaredTotal must already equal that sum.
func ReconcileSets(sets []model.Set, declaredTotal int, autoCalculate bool) ([]model.Set, int, error) {
	if len(sets) == 0 {
		return nil, 0, apperror.Validation("at least one set is required")
	}
	out := make([]model.Set, 0, len(sets))
	seen := make(map[string]struct{}, len(sets))
	for _, s := range sets {
		if err := checkSet(s); err != nil {
			return nil, 0, err
		}
		key := model.SetKey(s.Name)
		if _, dup := seen[key]; dup {
			return nil, 0, duplicateSetName(s.Name)
		}
		seen[key] = struct{}{}
		out = append(out, model.Set{Name: strings.TrimSpace(s.Name), Students: s.Students})
	}

	sum := SumStudents(out)
	if !autoCalculate && declaredTotal != sum {
		return nil, 0, apperror.CountMismatch(declaredTotal, sum)
	}
	return out, sum, nil
}

// AppendSet adds one set to the end of the list. Names stay unique here too.
func AppendSet(sets []model.Set, set model.Set) ([]model.Set, int, error) {
	if err := checkSet(set); err != nil {
		return nil, 0, err
	}
	key := model.SetKey(set.Name)
	for _, s := range sets {
		if model.SetKey(s.Name) == key {
			return nil, 0, duplicateSetName(set.Name)
		}
	}
	out := make([]model.Set, 0, len(sets)+1)
	out = append(out, sets...)
	out = append(out, model.Set{Name: strings.TrimSpace(set.Name), Students: set.Students})
	return out, SumStudents(out), nil
}

// RemoveSet deletes the set called name (case-insensitive) and spreads its
// students over the remaining sets: each gets removed/remaining, and the first
// removed%remaining sets get one more. Remaining sets are renamed "Set 1".."Set n".
func RemoveSet(sets []model.Set, name string) ([]model.Set, int, error) {
	if len(sets) == 1 {
		return nil, 0, apperror.New(apperror.KindValidation, apperror.CodeLastSet,
			"cannot delete the only remaining set")
	}
	key := model.SetKey(name)
	idx := -1
	for i, s := range sets {
		if model.SetKey(s.Name) == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, 0, apperror.NotFound("set %q not found", name)
	}

	removed := sets[idx].Students
	out := make([]model.Set, 0, len(sets)-1)
	out = append(out, sets[:idx]...)
	out = append(out, sets[idx+1:]...)

	base, extra := removed/len(out), removed%len(out)
	for i := range out {
		out[i].Students += base
		if i < extra {
			out[i].Students++
		}
		out[i].Name = fmt.Sprintf("Set %d", i+1)
	}
	return out, SumStudents(out), nil
}

func checkSet(s model.Set) error {
	if strings.TrimSpace(s.Name) == "" {
		return apperror.Validation("set name is required")
	}
	if s.Students < 0 {
		return apperror.Validation("set %q has a negative student count", s.Name)
	}
	return nil
}

func duplicateSetName(name string) error {
	return apperror.Conflict(apperror.CodeDuplicateSetName,
		"duplicate set name %q: each set must have a unique name", strings.TrimSpace(name))
}
