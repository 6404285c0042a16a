package service

import "fmt"

// CodeStatus is the outcome of an employee code uniqueness check.
type CodeStatus int

const (
	CodeUnique CodeStatus = iota
	CodeDuplicateInStore
	CodeDuplicateInBatch
)

// Reason returns the human-readable rejection reason for a duplicate code,
// or "" for a unique one. Store and batch conflicts read differently so the
// user can tell which kind of conflict they are fixing.
func (s CodeStatus) Reason(code string) string {
	switch s {
	case CodeDuplicateInStore:
		return fmt.Sprintf("employee_code '%s' already exists in the system", code)
	case CodeDuplicateInBatch:
		return fmt.Sprintf("employee_code '%s' is duplicated within the uploaded file", code)
	default:
		return ""
	}
}

// UniquenessChecker checks candidate codes against a snapshot of persisted
// codes and the set of codes already accepted earlier in the same batch.
type UniquenessChecker struct {
	store map[string]struct{}
	batch map[string]struct{}
}

func NewUniquenessChecker(existing []string) *UniquenessChecker {
	store := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		store[code] = struct{}{}
	}
	return &UniquenessChecker{
		store: store,
		batch: map[string]struct{}{},
	}
}

func (c *UniquenessChecker) Check(code string) CodeStatus {
	if _, ok := c.store[code]; ok {
		return CodeDuplicateInStore
	}
	if _, ok := c.batch[code]; ok {
		return CodeDuplicateInBatch
	}
	return CodeUnique
}

// Reserve records an accepted row's code so that later occurrences in the
// same file are rejected. The first occurrence wins.
func (c *UniquenessChecker) Reserve(code string) {
	c.batch[code] = struct{}{}
}
