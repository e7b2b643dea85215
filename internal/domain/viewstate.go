package domain

// ViewState is the session state: the active panel and the hovered star.
// Hovered is empty when no star is under the pointer.
type ViewState struct {
	Current ViewID
	Hovered ViewID
}

// NewViewState returns a state showing initial, or the default view when
// initial is not a known view
func NewViewState(initial ViewID) ViewState {
	if !initial.Valid() {
		initial = DefaultView
	}
	return ViewState{Current: initial}
}

// Navigate makes view the active panel. Unknown views are ignored.
// Returns true if the active panel changed.
func (s *ViewState) Navigate(view ViewID) bool {
	if !view.Valid() || s.Current == view {
		return false
	}
	s.Current = view
	return true
}

// Hover marks view's star as under the pointer
func (s *ViewState) Hover(view ViewID) {
	if !view.Valid() {
		return
	}
	s.Hovered = view
}

// Leave clears the hover if view's star is the hovered one
func (s *ViewState) Leave(view ViewID) {
	if s.Hovered == view {
		s.Hovered = ""
	}
}

// IsActive reports whether view is the active panel
func (s ViewState) IsActive(view ViewID) bool {
	return s.Current == view
}

// LabelVisible reports whether view's star shows its name and group
func (s ViewState) LabelVisible(view ViewID) bool {
	return s.Hovered == view || s.Current == view
}

// Store is a single-owner cell holding the ViewState. Listeners are called
// synchronously after every change.
type Store struct {
	state     ViewState
	listeners []func(ViewState)
}

// NewStore creates a store starting at initial
func NewStore(initial ViewID) *Store {
	return &Store{state: NewViewState(initial)}
}

// Get returns a copy of the current state
func (st *Store) Get() ViewState {
	return st.state
}

// Set replaces the state and notifies listeners if it changed
func (st *Store) Set(s ViewState) {
	if st.state == s {
		return
	}
	st.state = s
	for _, fn := range st.listeners {
		fn(s)
	}
}

// Navigate updates the active view through Set
func (st *Store) Navigate(view ViewID) bool {
	s := st.state
	changed := s.Navigate(view)
	st.Set(s)
	return changed
}

// Subscribe registers fn to be called on every change
func (st *Store) Subscribe(fn func(ViewState)) {
	st.listeners = append(st.listeners, fn)
}
