package domain

import "time"

type UserID int64

type PracticeSession struct {
	UserID         UserID
	SelectedGroups []GroupID
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewPracticeSession(id UserID, now time.Time) PracticeSession {
	return PracticeSession{UserID: id, CreatedAt: now, UpdatedAt: now}
}

// ToggleGroup adds the group when absent and removes it when present.
func (s *PracticeSession) ToggleGroup(id GroupID) {
	for i, selected := range s.SelectedGroups {
		if selected == id {
			s.SelectedGroups = append(s.SelectedGroups[:i:i], s.SelectedGroups[i+1:]...)
			if len(s.SelectedGroups) == 0 {
				s.SelectedGroups = nil
			}
			return
		}
	}
	s.SelectedGroups = append(s.SelectedGroups, id)
}

func (s *PracticeSession) ClearSelection() {
	s.SelectedGroups = nil
}

func (s PracticeSession) HasSelection() bool {
	return len(s.SelectedGroups) > 0
}

func (s PracticeSession) IsSelected(id GroupID) bool {
	for _, selected := range s.SelectedGroups {
		if selected == id {
			return true
		}
	}
	return false
}

// NormalizeSelection drops empty and repeated group ids, keeping first-seen order.
func (s *PracticeSession) NormalizeSelection() {
	if len(s.SelectedGroups) == 0 {
		s.SelectedGroups = nil
		return
	}

	seen := make(map[GroupID]struct{}, len(s.SelectedGroups))
	normalized := make([]GroupID, 0, len(s.SelectedGroups))
	for _, id := range s.SelectedGroups {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}
	if len(normalized) == 0 {
		normalized = nil
	}
	s.SelectedGroups = normalized
}

func (s PracticeSession) Clone() PracticeSession {
	if s.SelectedGroups != nil {
		s.SelectedGroups = append([]GroupID(nil), s.SelectedGroups...)
	}
	return s
}
