// Package admins provides the admin-identity predicate injected into the
// workflows. The id set is fixed at startup from configuration.
package admins

type Set struct {
	ids map[int64]struct{}
}

func New(ids []int64) *Set {
	s := &Set{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *Set) IsAdmin(userID int64) bool {
	_, ok := s.ids[userID]
	return ok
}
