package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"workmatch/internal/domain/assignment"
	"workmatch/internal/domain/job"
	"workmatch/internal/domain/matching"
	"workmatch/internal/domain/notification"
	"workmatch/internal/domain/skill"
	"workmatch/internal/domain/worker"
	"workmatch/internal/repository"

	"github.com/google/uuid"
)

type mockWorkerRepo struct {
	items map[uuid.UUID]worker.Worker
	err   error
}

func (m *mockWorkerRepo) Create(_ context.Context, w worker.Worker) error {
	if m.items == nil {
		m.items = map[uuid.UUID]worker.Worker{}
	}
	m.items[w.ID] = w
	return nil
}
func (m *mockWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (worker.Worker, error) {
	if m.err != nil {
		return worker.Worker{}, m.err
	}
	w, ok := m.items[id]
	if !ok {
		return worker.Worker{}, worker.ErrNotFound
	}
	return w, nil
}
func (m *mockWorkerRepo) GetByEmail(context.Context, string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrNotFound
}
func (m *mockWorkerRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m *mockWorkerRepo) Update(context.Context, worker.Worker) error           { return nil }
func (m *mockWorkerRepo) List(context.Context, int) ([]worker.Worker, error) {
	out := make([]worker.Worker, 0, len(m.items))
	for _, w := range m.items {
		out = append(out, w)
	}
	return out, m.err
}

type mockJobRepo struct {
	jobs       map[uuid.UUID]job.Job
	created    []job.SkillInput
	createErr  error
	deleteErr  error
	listLimit  int
	listOffset int
}

func (m *mockJobRepo) CreateWithSkills(_ context.Context, j job.Job, skills []job.SkillInput) (job.Job, error) {
	if m.createErr != nil {
		return job.Job{}, m.createErr
	}
	m.created = skills
	j.ID = uuid.New()
	for _, s := range skills {
		j.Skills = append(j.Skills, skill.JobSkill{JobID: j.ID, SkillID: uuid.New(), SkillName: s.Name, RequiredLevel: s.RequiredLevel})
	}
	if m.jobs == nil {
		m.jobs = map[uuid.UUID]job.Job{}
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListJobs(_ context.Context, limit, offset int) ([]job.Job, error) {
	m.listLimit, m.listOffset = limit, offset
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.jobs[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(m.jobs, id)
	return nil
}

type mockCandidateRepo struct {
	reqs    []matching.Requirement
	workers []matching.WorkerProfile
	calls   int
}

func (m *mockCandidateRepo) Requirements(context.Context, uuid.UUID) ([]matching.Requirement, error) {
	m.calls++
	return m.reqs, nil
}

func (m *mockCandidateRepo) WorkerProfiles(context.Context, uuid.UUID) ([]matching.WorkerProfile, error) {
	return m.workers, nil
}

// memCache is a CandidateCache that round-trips through JSON like Redis does.
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	c.deleted = append(c.deleted, pattern)
	return nil
}

// memAssignments keeps assignments and the notifications written alongside
// their transitions.
type memAssignments struct {
	items         map[uuid.UUID]assignment.Assignment
	notifications []notification.Notification
}

func newMemAssignments() *memAssignments {
	return &memAssignments{items: map[uuid.UUID]assignment.Assignment{}}
}

func (m *memAssignments) Create(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	for _, it := range m.items {
		if it.WorkerID == a.WorkerID && it.JobID == a.JobID && it.Status == assignment.StatusActive {
			return assignment.Assignment{}, repository.ErrActiveAssignmentExists
		}
	}
	a.ID = uuid.New()
	a.Status = assignment.StatusActive
	a.AssignedAt = time.Now().UTC()
	m.items[a.ID] = a
	return a, nil
}

func (m *memAssignments) ExistsActive(_ context.Context, workerID, jobID uuid.UUID) (bool, error) {
	for _, it := range m.items {
		if it.WorkerID == workerID && it.JobID == jobID && it.Status == assignment.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAssignments) GetByID(_ context.Context, id uuid.UUID) (assignment.Assignment, error) {
	a, ok := m.items[id]
	if !ok {
		return assignment.Assignment{}, repository.ErrAssignmentNotFound
	}
	return a, nil
}

func (m *memAssignments) ListByWorker(_ context.Context, workerID uuid.UUID) ([]assignment.WithTasks, error) {
	out := make([]assignment.WithTasks, 0)
	for _, it := range m.items {
		if it.WorkerID == workerID {
			out = append(out, assignment.WithTasks{Assignment: it, Tasks: []assignment.Task{}})
		}
	}
	return out, nil
}

func (m *memAssignments) ApplyTransition(_ context.Context, tr assignment.Transition) (notification.Notification, error) {
	a, ok := m.items[tr.AssignmentID]
	if !ok || a.WorkerID != tr.WorkerID {
		return notification.Notification{}, repository.ErrAssignmentNotFound
	}
	a.Status = tr.To
	a.CompletedAt = tr.CompletedAt
	m.items[a.ID] = a

	n := notification.Notification{
		ID:           uuid.New(),
		ManagerID:    tr.ManagerID,
		WorkerID:     tr.WorkerID,
		AssignmentID: tr.AssignmentID,
		Message:      tr.Message,
		CreatedAt:    time.Now().UTC(),
	}
	m.notifications = append(m.notifications, n)
	return n, nil
}

type memTasks struct {
	items map[uuid.UUID]assignment.Task
	owner map[uuid.UUID]uuid.UUID
}

func newMemTasks() *memTasks {
	return &memTasks{items: map[uuid.UUID]assignment.Task{}, owner: map[uuid.UUID]uuid.UUID{}}
}

func (m *memTasks) Create(_ context.Context, t assignment.Task) (assignment.Task, error) {
	t.ID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	m.items[t.ID] = t
	return t, nil
}

func (m *memTasks) GetWithOwner(_ context.Context, id uuid.UUID) (assignment.Task, uuid.UUID, error) {
	t, ok := m.items[id]
	if !ok {
		return assignment.Task{}, uuid.Nil, repository.ErrTaskNotFound
	}
	return t, m.owner[id], nil
}

func (m *memTasks) SetCompleted(_ context.Context, id uuid.UUID, completed bool, at *time.Time) (assignment.Task, error) {
	t, ok := m.items[id]
	if !ok {
		return assignment.Task{}, repository.ErrTaskNotFound
	}
	t.Completed = completed
	t.CompletedAt = at
	m.items[id] = t
	return t, nil
}

type recordingPublisher struct {
	sent []notification.Notification
}

func (p *recordingPublisher) PublishNotification(n notification.Notification) {
	p.sent = append(p.sent, n)
}

type mockWorkerSkillRepo struct {
	addErr    error
	updateErr error
	deleteErr error
	added     []string
}

func (m *mockWorkerSkillRepo) FindByWorkerID(context.Context, uuid.UUID) ([]skill.WorkerSkill, error) {
	return []skill.WorkerSkill{}, nil
}

func (m *mockWorkerSkillRepo) Add(_ context.Context, workerID uuid.UUID, name string, p int) (skill.WorkerSkill, error) {
	if m.addErr != nil {
		return skill.WorkerSkill{}, m.addErr
	}
	m.added = append(m.added, name)
	return skill.WorkerSkill{ID: uuid.New(), WorkerID: workerID, SkillID: uuid.New(), SkillName: name, Proficiency: p}, nil
}

func (m *mockWorkerSkillRepo) UpdateProficiency(_ context.Context, id, workerID uuid.UUID, p int) (skill.WorkerSkill, error) {
	if m.updateErr != nil {
		return skill.WorkerSkill{}, m.updateErr
	}
	return skill.WorkerSkill{ID: id, WorkerID: workerID, Proficiency: p}, nil
}

func (m *mockWorkerSkillRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return m.deleteErr
}

type mockCertRepo struct {
	created []worker.Certification
}

func (m *mockCertRepo) FindByWorkerID(context.Context, uuid.UUID) ([]worker.Certification, error) {
	return m.created, nil
}

func (m *mockCertRepo) Create(_ context.Context, c worker.Certification) (worker.Certification, error) {
	c.ID = uuid.New()
	m.created = append(m.created, c)
	return c, nil
}

type mockNotificationRepo struct {
	owner map[uuid.UUID]uuid.UUID
	read  map[uuid.UUID]bool
	limit int
}

func (m *mockNotificationRepo) ListByManager(_ context.Context, _ uuid.UUID, limit int) ([]notification.Notification, error) {
	m.limit = limit
	return []notification.Notification{}, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id, managerID uuid.UUID) error {
	if m.owner[id] != managerID {
		return repository.ErrNotificationNotFound
	}
	if m.read == nil {
		m.read = map[uuid.UUID]bool{}
	}
	m.read[id] = true
	return nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, managerID uuid.UUID) (int, error) {
	n := 0
	for id, owner := range m.owner {
		if owner == managerID && !m.read[id] {
			n++
		}
	}
	return n, nil
}
