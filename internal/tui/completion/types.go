package completion

// Suggestion is one candidate path for the import prompt.
type Suggestion struct {
	Path  string
	Score int
}

// State tracks the suggestions cycled with Tab.
type State struct {
	Active   bool
	Query    string
	Items    []Suggestion
	Selected int
}

func (s *State) Reset() {
	*s = State{}
}

// Open lists items for query and selects the first. It reports whether
// there was anything to show.
func (s *State) Open(query string, items []Suggestion) bool {
	s.Reset()
	if len(items) == 0 {
		return false
	}
	s.Active = true
	s.Query = query
	s.Items = items
	return true
}

func (s *State) Next() {
	if len(s.Items) > 0 {
		s.Selected = (s.Selected + 1) % len(s.Items)
	}
}

func (s *State) Prev() {
	if len(s.Items) > 0 {
		s.Selected = (s.Selected - 1 + len(s.Items)) % len(s.Items)
	}
}

// Current returns the selected path, or "" when nothing is listed.
func (s *State) Current() string {
	if s.Selected >= 0 && s.Selected < len(s.Items) {
		return s.Items[s.Selected].Path
	}
	return ""
}
