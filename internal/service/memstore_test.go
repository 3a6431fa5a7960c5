package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/repository"
)

// memStore is an in-memory stand-in for the SQL store with the same
// guard semantics.
type memStore struct {
	mu           sync.Mutex
	clock        time.Time
	participants map[int64]domain.Participant
	roles        map[int64]domain.Role
	tokens       map[string]*domain.RegistrationToken
	requests     []*domain.Request
	feedback     []*domain.Feedback
}

func newMemStore() *memStore {
	return &memStore{
		clock:        time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC),
		participants: map[int64]domain.Participant{},
		roles:        map[int64]domain.Role{},
		tokens:       map[string]*domain.RegistrationToken{},
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *memStore) withRole(p domain.Participant) domain.Participant {
	p.Role = domain.RoleNone
	if r, ok := s.roles[p.ID]; ok {
		p.Role = r
	}
	return p
}

type memParticipants struct{ *memStore }

func (s memParticipants) Upsert(_ context.Context, p *domain.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants[p.ID] = *p
	return nil
}

func (s memParticipants) GetByID(_ context.Context, id int64) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return nil, fmt.Errorf("%w: participant %d", domain.ErrNotFound, id)
	}
	p = s.withRole(p)
	return &p, nil
}

func (s memParticipants) List(_ context.Context) ([]domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Participant
	for _, p := range s.participants {
		out = append(out, s.withRole(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memParticipants) UpdateProfile(_ context.Context, id int64, u domain.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return domain.ErrNotFound
	}
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.Department != nil {
		p.Department = *u.Department
	}
	if u.Position != nil {
		p.Position = *u.Position
	}
	s.participants[id] = p
	return nil
}

func (s memParticipants) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.participants, id)
	delete(s.roles, id)
	return nil
}

type memRoles struct{ *memStore }

func (s memRoles) Grant(_ context.Context, id int64, role domain.Role) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[id]; !ok {
		return false, domain.ErrNotFound
	}
	if _, ok := s.roles[id]; ok {
		return false, nil
	}
	s.roles[id] = role
	return true, nil
}

func (s memRoles) ListElevatedIDs(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for id, r := range s.roles {
		if r == domain.RoleElevated {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s memRoles) CountElevated(ctx context.Context) (int, error) {
	ids, err := s.ListElevatedIDs(ctx)
	return len(ids), err
}

type memTokens struct{ *memStore }

func (s memTokens) Create(_ context.Context, t *domain.RegistrationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[t.Code]; ok {
		return repository.ErrDuplicate
	}
	cp := *t
	s.tokens[t.Code] = &cp
	return nil
}

func (s memTokens) Redeem(_ context.Context, code string, usedBy int64) (*domain.RegistrationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redeemLocked(code, usedBy)
}

func (s *memStore) redeemLocked(code string, usedBy int64) (*domain.RegistrationToken, error) {
	t, ok := s.tokens[code]
	if !ok || t.Used {
		return nil, domain.ErrInvalidToken
	}
	t.Used = true
	t.UsedBy = &usedBy
	cp := *t
	return &cp, nil
}

type memRegistrations struct{ *memStore }

func (s memRegistrations) Register(_ context.Context, code string, p *domain.Participant) (*domain.RegistrationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.redeemLocked(code, p.ID)
	if err != nil {
		return nil, err
	}
	s.participants[p.ID] = *p
	p.Role = domain.RoleNone
	if t.Elevated {
		s.roles[p.ID] = domain.RoleElevated
		p.Role = domain.RoleElevated
	}
	return t, nil
}

func (s memRegistrations) Bootstrap(_ context.Context, p *domain.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r == domain.RoleElevated {
			return domain.ErrAlreadyBootstrapped
		}
	}
	s.participants[p.ID] = *p
	s.roles[p.ID] = domain.RoleElevated
	p.Role = domain.RoleElevated
	return nil
}

type memRequests struct{ *memStore }

func (s memRequests) Create(_ context.Context, req *domain.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var maxSeq int32
	for _, r := range s.requests {
		if r.OwnerID == req.OwnerID && r.Seq > maxSeq {
			maxSeq = r.Seq
		}
	}
	req.ID = int64(len(s.requests) + 1)
	req.Seq = maxSeq + 1
	req.Status = domain.RequestStatusSubmitted
	req.CreatedAt = s.tick()
	cp := *req
	s.requests = append(s.requests, &cp)
	return nil
}

func (s memRequests) find(id int64) (*domain.Request, error) {
	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
}

func (s memRequests) GetByID(_ context.Context, id int64) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.find(id)
	if err != nil {
		return nil, err
	}
	cp := *r
	return &cp, nil
}

func (s memRequests) filter(keep func(*domain.Request) bool, asc bool) []domain.Request {
	var out []domain.Request
	for _, r := range s.requests {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s memRequests) ListPending(_ context.Context) ([]domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r *domain.Request) bool { return r.Status == domain.RequestStatusSubmitted }, true), nil
}

func (s memRequests) ListByOwner(_ context.Context, owner int64) ([]domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r *domain.Request) bool { return r.OwnerID == owner }, false), nil
}

func (s memRequests) ListProcessed(_ context.Context) ([]domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r *domain.Request) bool { return r.Status != domain.RequestStatusSubmitted }, false), nil
}

func (s memRequests) UpdateStatus(_ context.Context, id int64, u domain.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Status == nil && u.Response == nil {
		return domain.ErrValidation
	}
	r, err := s.find(id)
	if err != nil {
		return err
	}
	if u.Status != nil {
		if r.Status != domain.RequestStatusSubmitted {
			return domain.ErrInvalidTransition
		}
		r.Status = *u.Status
	}
	if u.Response != nil {
		resp := *u.Response
		r.Response = &resp
	}
	if u.AssigneeID != nil {
		assignee := *u.AssigneeID
		r.AssigneeID = &assignee
	}
	now := s.tick()
	r.UpdatedAt = &now
	return nil
}

func (s memRequests) Assign(_ context.Context, id, assignee int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.find(id)
	if err != nil {
		return err
	}
	r.AssigneeID = &assignee
	return nil
}

func (s memRequests) CountPendingOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Status == domain.RequestStatusSubmitted && r.CreatedAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

type memFeedback struct{ *memStore }

func (s memFeedback) Create(_ context.Context, fb *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb.ID = int64(len(s.feedback) + 1)
	fb.CreatedAt = s.tick()
	cp := *fb
	s.feedback = append(s.feedback, &cp)
	return nil
}

func (s memFeedback) list(keep func(*domain.Feedback) bool, asc bool) []domain.Feedback {
	var out []domain.Feedback
	for _, f := range s.feedback {
		if keep(f) {
			cp := *f
			cp.OwnerID = 0
			out = append(out, cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s memFeedback) ListPending(_ context.Context) ([]domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(f *domain.Feedback) bool { return f.Response == nil }, true), nil
}

func (s memFeedback) ListByOwner(_ context.Context, owner int64) ([]domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(f *domain.Feedback) bool { return f.OwnerID == owner }, false), nil
}

func (s memFeedback) ListProcessed(_ context.Context) ([]domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(f *domain.Feedback) bool { return f.Response != nil }, false), nil
}

func (s memFeedback) Respond(_ context.Context, id int64, response string, responder int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.feedback {
		if f.ID != id {
			continue
		}
		if f.Response != nil {
			return domain.ErrAlreadyResponded
		}
		now := s.tick()
		f.Response = &response
		f.AssigneeID = &responder
		f.RespondedAt = &now
		return nil
	}
	return domain.ErrNotFound
}

func (s memFeedback) GetOwner(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.feedback {
		if f.ID == id {
			return f.OwnerID, nil
		}
	}
	return 0, domain.ErrNotFound
}

func (s memFeedback) CountPendingOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, f := range s.feedback {
		if f.Response == nil && f.CreatedAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

// recordingNotifier keeps every notification per recipient.
type recordingNotifier struct {
	mu    sync.Mutex
	roles repository.RoleRepository
	sent  map[int64][]domain.Notification
}

func newRecordingNotifier(roles repository.RoleRepository) *recordingNotifier {
	return &recordingNotifier{roles: roles, sent: map[int64][]domain.Notification{}}
}

func (n *recordingNotifier) NotifyElevated(ctx context.Context, note domain.Notification) int {
	ids, _ := n.roles.ListElevatedIDs(ctx)
	for _, id := range ids {
		n.NotifyParticipant(ctx, id, note)
	}
	return len(ids)
}

func (n *recordingNotifier) NotifyParticipant(_ context.Context, id int64, note domain.Notification) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent[id] = append(n.sent[id], note)
	return true
}

func (n *recordingNotifier) kinds(id int64) []domain.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []domain.NotificationKind
	for _, note := range n.sent[id] {
		out = append(out, note.Kind)
	}
	return out
}

func (s *memStore) requestsByID(id int64) (*domain.Request, error) {
	return memRequests{s}.GetByID(context.Background(), id)
}
