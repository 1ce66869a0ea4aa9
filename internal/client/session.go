package client

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/search"
	"go.uber.org/zap"
)

// Lister loads one page of products. *Client satisfies it.
type Lister interface {
	ListProducts(ctx context.Context, q Query) (*search.Result, error)
}

// Transition is one user action on the listing view.
type Transition func(State) (State, Fetch)

// Session owns the listing State of one view. Actions may run concurrently;
// their responses are applied in issue order.
type Session struct {
	mu     sync.Mutex
	state  State
	lister Lister
}

func NewSession(lister Lister) *Session {
	return &Session{state: NewState(), lister: lister}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Do applies t, performs the fetch it asks for and returns the state once the
// response has been received.
func (s *Session) Do(ctx context.Context, t Transition) State {
	s.mu.Lock()
	next, fetch := t(s.state)
	s.state = next
	s.mu.Unlock()

	result, err := s.lister.ListProducts(ctx, fetch.Query)
	if err != nil {
		zap.L().Warn("product listing failed", zap.Uint64("seq", fetch.Seq), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Receive(fetch.Seq, result, err)
	return s.state
}

func (s *Session) Load(ctx context.Context) State {
	return s.Do(ctx, State.Load)
}

func (s *Session) Search(ctx context.Context, f search.Filters) State {
	return s.Do(ctx, func(st State) (State, Fetch) { return st.Search(f) })
}

func (s *Session) Clear(ctx context.Context) State {
	return s.Do(ctx, State.Clear)
}

func (s *Session) ChangePage(ctx context.Context, page int) State {
	return s.Do(ctx, func(st State) (State, Fetch) { return st.ChangePage(page) })
}

func (s *Session) ChangePageSize(ctx context.Context, limit int) State {
	return s.Do(ctx, func(st State) (State, Fetch) { return st.ChangePageSize(limit) })
}

func (s *Session) ToggleSort(ctx context.Context, field search.Field) State {
	return s.Do(ctx, func(st State) (State, Fetch) { return st.ToggleSort(field) })
}
