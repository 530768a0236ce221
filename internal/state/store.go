// Package state holds the todo list in a small unidirectional container:
// actions go in through Dispatch, a pure reducer computes the next list.
package state

import (
	"sync"

	"github.com/idilsaglam/tada/internal/model"
)

type Kind string

const (
	KindAdd    Kind = "ADD_TODO"
	KindToggle Kind = "TOGGLE_TODO"
	KindRemove Kind = "REMOVE_TODO"
)

// Action describes one transition. Toggle and Remove only read ID.
type Action struct {
	Kind      Kind
	ID        int
	Title     string
	Completed bool
	Date      int64
}

// Reducer must not modify its input slice.
type Reducer func(state []model.Todo, action Action) []model.Todo

// TodosReducer is the reducer for the todo list.
func TodosReducer(state []model.Todo, action Action) []model.Todo {
	switch action.Kind {
	case KindAdd:
		out := make([]model.Todo, 0, len(state)+1)
		out = append(out, state...)
		return append(out, model.Todo{
			ID:        action.ID,
			Title:     action.Title,
			Completed: action.Completed,
			Date:      action.Date,
		})
	case KindToggle:
		out := make([]model.Todo, len(state))
		for i, t := range state {
			if t.ID == action.ID {
				t.Completed = !t.Completed
			}
			out[i] = t
		}
		return out
	case KindRemove:
		out := make([]model.Todo, 0, len(state))
		for _, t := range state {
			if t.ID != action.ID {
				out = append(out, t)
			}
		}
		return out
	default:
		return state
	}
}

// Store is the state container.
type Store struct {
	mu        sync.Mutex
	reducer   Reducer
	state     []model.Todo
	listeners []listener
	nextSub   int
}

type listener struct {
	id int
	fn func([]model.Todo)
}

func New(reducer Reducer, initial []model.Todo) *Store {
	if initial == nil {
		initial = []model.Todo{}
	}
	return &Store{
		reducer: reducer,
		state:   initial,
	}
}

// Dispatch applies action and notifies subscribers with the new state, in
// the order they subscribed. Each subscriber gets its own copy.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	current := s.state
	ls := make([]listener, len(s.listeners))
	copy(ls, s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.fn(clone(current))
	}
}

// GetState returns a copy of the current list.
func (s *Store) GetState() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state)
}

// Subscribe registers fn to run after every Dispatch. The returned func
// removes it again.
func (s *Store) Subscribe(fn func([]model.Todo)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func clone(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	copy(out, todos)
	return out
}
