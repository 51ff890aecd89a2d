package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"consogab-me/models"
)

// Session is one wizard run: a step index in [1, totalSteps], the aggregate
// form state and the derived score/error fields. All mutations go through the
// session methods, which serialize under the session mutex; there is exactly
// one user mutating a session, the lock only guards against overlapping HTTP
// handlers.
type Session struct {
	ID         string
	Flow       models.WizardFlow
	BusinessID int64
	CatalogID  int64
	// ProductID is set when editing an existing product
	ProductID int64

	mu               sync.Mutex
	step             int
	form             models.WizardFormState
	qualityScore     int
	validationErrors []string
	updatedAt        time.Time

	rubric *Rubric
}

// Step returns the current step index
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Apply merges a partial form update and recomputes the quality score
func (s *Session) Apply(patch models.WizardFormPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = ApplyPatch(s.form, patch)
	s.qualityScore = s.rubric.Score(&s.form)
	s.updatedAt = time.Now()
}

// Next validates the current step and advances on success. On failure the
// step is unchanged and the full error list is returned. The terminal step is
// never crossed: publication is a separate explicit action.
func (s *Session) Next() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := ValidateStep(s.Flow, s.step, &s.form)
	s.validationErrors = errs
	s.updatedAt = time.Now()
	if len(errs) > 0 {
		return errs
	}

	if s.step < TotalSteps(s.Flow) {
		s.step++
	}
	return nil
}

// Previous always succeeds, floored at step 1
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > 1 {
		s.step--
	}
	s.validationErrors = nil
	s.updatedAt = time.Now()
}

// PublishGate returns the reasons the session cannot be submitted yet, empty
// when submission is allowed. Product publication requires the score threshold
// and at least one complete variant; catalog creation only requires the
// minimum keyword and image counts.
func (s *Session) PublishGate() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publishGateLocked()
}

func (s *Session) publishGateLocked() []string {
	var errs []string

	if s.Flow == models.FlowCatalog {
		errs = append(errs, validateCatalogStep(CatalogStepInfo, &s.form)...)
		errs = append(errs, validateCatalogStep(CatalogStepKeywords, &s.form)...)
		errs = append(errs, validateCatalogStep(CatalogStepImages, &s.form)...)
		return errs
	}

	breakdown := s.rubric.Evaluate(&s.form)
	if breakdown.Total < s.rubric.PublishThreshold {
		errs = append(errs, "La fiche produit est incomplète pour être publiée")
		errs = append(errs, breakdown.Deficiencies()...)
	}
	if len(CompleteVariants(&s.form)) == 0 {
		errs = append(errs, errNoCompleteVariant)
	}
	return errs
}

// Form returns a deep copy of the aggregate form state
func (s *Session) Form() models.WizardFormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneState(s.form)
}

// Snapshot builds the client-facing view of the session
func (s *Session) Snapshot() models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	breakdown := s.rubric.Evaluate(&s.form)
	errs := s.validationErrors
	if errs == nil {
		errs = []string{}
	}
	deficiencies := breakdown.Deficiencies()
	if deficiencies == nil {
		deficiencies = []string{}
	}

	return models.SessionResponse{
		ID:               s.ID,
		Flow:             s.Flow,
		Step:             s.step,
		TotalSteps:       TotalSteps(s.Flow),
		QualityScore:     breakdown.Total,
		CanPublish:       len(s.publishGateLocked()) == 0,
		Deficiencies:     deficiencies,
		ValidationErrors: errs,
		Form:             CloneState(s.form),
	}
}

// Manager owns the in-memory wizard sessions. Sessions are transient: they are
// dropped on cancellation, successful submission or expiry.
type Manager struct {
	rubric *Rubric
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// DefaultSessionTTL is how long an untouched session survives
const DefaultSessionTTL = 2 * time.Hour

// NewManager creates a session manager backed by the given rubric
func NewManager(rubric *Rubric, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		rubric:   rubric,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Rubric returns the scoring configuration the manager was built with
func (m *Manager) Rubric() *Rubric {
	return m.rubric
}

// Start creates a new session, empty or pre-filled from an existing entity
// when editing
func (m *Manager) Start(flow models.WizardFlow, businessID int64, prefill *models.WizardFormState) *Session {
	session := &Session{
		ID:         uuid.New().String(),
		Flow:       flow,
		BusinessID: businessID,
		step:       1,
		rubric:     m.rubric,
		updatedAt:  time.Now(),
	}
	if prefill != nil {
		session.form = CloneState(*prefill)
	}
	session.qualityScore = m.rubric.Score(&session.form)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	m.sessions[session.ID] = session
	return session
}

// Get returns a session by id
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Delete drops a session (cancellation or successful submission)
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) pruneLocked() {
	cutoff := time.Now().Add(-m.ttl)
	for id, session := range m.sessions {
		session.mu.Lock()
		stale := session.updatedAt.Before(cutoff)
		session.mu.Unlock()
		if stale {
			delete(m.sessions, id)
		}
	}
}
