package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"quizme-service/internal/apperr"
	"quizme-service/internal/explain"
	"quizme-service/internal/models"

	"github.com/google/uuid"
)

// ExplanationState is the per-question explanation lifecycle within a
// review session: hidden -> loading -> shown -> (toggle) -> hidden.
type ExplanationState string

const (
	StateHidden  ExplanationState = "hidden"
	StateLoading ExplanationState = "loading"
	StateShown   ExplanationState = "shown"
)

// FailedExplanationText is shown in place of an explanation when the
// collaborator fails. Toggling the question hides it; toggling again
// retries the fetch.
const FailedExplanationText = "Failed to load explanation. Please try again."

// ToggleResult is the state of one question's explanation after a toggle.
type ToggleResult struct {
	QuestionIndex int              `json:"question_index"`
	State         ExplanationState `json:"state"`
	Explanation   string           `json:"explanation,omitempty"`
	Failed        bool             `json:"failed,omitempty"`
}

type explanationEntry struct {
	state ExplanationState
	text  string
	gen   uint64 // bumped on every hidden->loading transition and on discard
}

// ReviewSession holds one review's explanation cache. Cached text lives
// only as long as the session; closing the session discards everything.
type ReviewSession struct {
	ID     string         `json:"id"`
	Review *models.Review `json:"review"`

	mu      sync.Mutex
	entries map[int]*explanationEntry
	closed  bool
}

// ReviewSessionManager owns the active review sessions and the explanation
// collaborator. No cached text is ever shared across sessions.
type ReviewSessionManager struct {
	mu        sync.Mutex
	sessions  map[string]*ReviewSession
	reviews   *ReviewService
	generator explain.Generator
}

func NewReviewSessionManager(reviews *ReviewService, generator explain.Generator) *ReviewSessionManager {
	return &ReviewSessionManager{
		sessions:  make(map[string]*ReviewSession),
		reviews:   reviews,
		generator: generator,
	}
}

// Open builds the review for an attempt and starts a session over it. A
// deleted quiz does not block opening: the session degrades to the
// snapshot-only review.
func (m *ReviewSessionManager) Open(ctx context.Context, attemptID string) (*ReviewSession, error) {
	review, err := m.reviews.BuildReview(ctx, attemptID)
	if err != nil && !errors.Is(err, apperr.ErrQuizMissing) {
		return nil, err
	}
	session := &ReviewSession{
		ID:      uuid.NewString(),
		Review:  review,
		entries: make(map[int]*explanationEntry),
	}
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session, nil
}

func (m *ReviewSessionManager) Get(id string) (*ReviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("review session %s: %w", id, apperr.ErrNotFound)
	}
	return session, nil
}

// Close ends a session and discards its cached explanations. Any fetch
// still in flight will find the session closed and drop its result.
func (m *ReviewSessionManager) Close(id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("review session %s: %w", id, apperr.ErrNotFound)
	}
	session.mu.Lock()
	session.closed = true
	session.entries = make(map[int]*explanationEntry)
	session.mu.Unlock()
	return nil
}

// Toggle drives the explanation state machine for one question index:
//   - loading: no-op, so at most one fetch is in flight per index
//   - shown:   hide and discard the cached text
//   - hidden:  fetch from the collaborator, then show text or failure
func (m *ReviewSessionManager) Toggle(ctx context.Context, sessionID string, index int) (*ToggleResult, error) {
	session, err := m.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.toggle(ctx, index, m.generator)
}

func (s *ReviewSession) toggle(ctx context.Context, index int, generator explain.Generator) (*ToggleResult, error) {
	if index < 0 || index >= len(s.Review.Answers) {
		return nil, fmt.Errorf("question index %d out of range: %w", index, apperr.ErrValidation)
	}

	s.mu.Lock()
	entry, ok := s.entries[index]
	if !ok {
		entry = &explanationEntry{state: StateHidden}
		s.entries[index] = entry
	}

	switch entry.state {
	case StateLoading:
		s.mu.Unlock()
		return &ToggleResult{QuestionIndex: index, State: StateLoading}, nil
	case StateShown:
		entry.state = StateHidden
		entry.text = ""
		entry.gen++
		s.mu.Unlock()
		return &ToggleResult{QuestionIndex: index, State: StateHidden}, nil
	}

	// hidden -> loading
	entry.state = StateLoading
	entry.gen++
	gen := entry.gen
	req := s.explainRequest(index)
	s.mu.Unlock()

	text, err := generator.Explain(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || entry.gen != gen {
		// The session ended, or the entry was reset while we were fetching.
		// The response is stale: drop it without flipping state.
		return &ToggleResult{QuestionIndex: index, State: StateHidden}, nil
	}
	if err != nil {
		log.Printf("explanation fetch failed for question %d: %v", index, err)
		entry.state = StateShown
		entry.text = FailedExplanationText
		return &ToggleResult{
			QuestionIndex: index,
			State:         StateShown,
			Explanation:   FailedExplanationText,
			Failed:        true,
		}, nil
	}
	entry.state = StateShown
	entry.text = text
	return &ToggleResult{QuestionIndex: index, State: StateShown, Explanation: text}, nil
}

func (s *ReviewSession) explainRequest(index int) explain.Request {
	answer := s.Review.Answers[index]
	return explain.Request{
		QuestionText:  answer.QuestionString,
		CorrectAnswer: answer.CorrectAnswer,
		UserAnswer:    answer.UserAnswer,
		Options:       answer.Options,
	}
}
