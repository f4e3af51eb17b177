package handler_test

import (
	"bytes"
	"context"

	"workmatch/internal/domain/assignment"
	"workmatch/internal/domain/job"
	"workmatch/internal/domain/notification"
	"workmatch/internal/usecase"
	ucauth "workmatch/internal/usecase/auth"

	"github.com/google/uuid"
)

type fakeAuth struct {
	session usecase.Session
	err     error
	gotName string
}

func (f *fakeAuth) RegisterWorker(_ context.Context, in ucauth.WorkerRegisterInput) (usecase.Session, error) {
	f.gotName = in.Name
	return f.session, f.err
}

func (f *fakeAuth) LoginWorker(context.Context, ucauth.LoginInput) (usecase.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) RegisterManager(_ context.Context, in ucauth.ManagerRegisterInput) (usecase.Session, error) {
	f.gotName = in.Name
	return f.session, f.err
}

func (f *fakeAuth) LoginManager(context.Context, ucauth.LoginInput) (usecase.Session, error) {
	return f.session, f.err
}

type fakeJobs struct {
	created   usecase.CreateJobInput
	createErr error
	getErr    error
	deleteErr error
	listed    usecase.JobListParams
}

func (f *fakeJobs) CreateJob(_ context.Context, managerID uuid.UUID, in usecase.CreateJobInput) (job.Job, error) {
	f.created = in
	if f.createErr != nil {
		return job.Job{}, f.createErr
	}
	return job.Job{ID: uuid.New(), Title: in.Title, CreatedByManagerID: &managerID}, nil
}

func (f *fakeJobs) ListJobs(_ context.Context, params usecase.JobListParams) ([]job.Job, error) {
	f.listed = params
	return []job.Job{{ID: uuid.New(), Title: "Shift"}}, nil
}

func (f *fakeJobs) GetJob(_ context.Context, id uuid.UUID) (job.Job, error) {
	if f.getErr != nil {
		return job.Job{}, f.getErr
	}
	return job.Job{ID: id, Title: "Shift"}, nil
}

func (f *fakeJobs) DeleteJob(context.Context, uuid.UUID) error { return f.deleteErr }

type fakeCandidates struct {
	list usecase.CandidateList
	err  error
}

func (f *fakeCandidates) RankCandidates(context.Context, uuid.UUID) (usecase.CandidateList, error) {
	return f.list, f.err
}

type fakeExport struct {
	err error
}

func (f *fakeExport) ExportCandidates(context.Context, uuid.UUID) (*bytes.Buffer, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return bytes.NewBufferString("xlsx-bytes"), "candidates_crane-shift.xlsx", nil
}

type fakeAssignments struct {
	toggled   *bool
	toggleErr error
	assignErr error
}

func (f *fakeAssignments) Assign(_ context.Context, managerID, workerID, jobID uuid.UUID) (assignment.Assignment, error) {
	if f.assignErr != nil {
		return assignment.Assignment{}, f.assignErr
	}
	return assignment.Assignment{ID: uuid.New(), WorkerID: workerID, JobID: jobID, AssignedByManagerID: managerID, Status: assignment.StatusActive}, nil
}

func (f *fakeAssignments) ToggleAssignment(_ context.Context, workerID, id uuid.UUID, completed bool) (assignment.Assignment, error) {
	f.toggled = &completed
	if f.toggleErr != nil {
		return assignment.Assignment{}, f.toggleErr
	}
	st := assignment.StatusActive
	if completed {
		st = assignment.StatusCompleted
	}
	return assignment.Assignment{ID: id, WorkerID: workerID, Status: st}, nil
}

func (f *fakeAssignments) ListForWorker(context.Context, uuid.UUID) ([]assignment.WithTasks, error) {
	return nil, nil
}

func (f *fakeAssignments) AddTask(_ context.Context, _ uuid.UUID, assignmentID uuid.UUID, title string) (assignment.Task, error) {
	return assignment.Task{ID: uuid.New(), AssignmentID: assignmentID, Title: title}, nil
}

func (f *fakeAssignments) ToggleTask(_ context.Context, _ uuid.UUID, taskID uuid.UUID, completed bool) (assignment.Task, error) {
	return assignment.Task{ID: taskID, Completed: completed}, nil
}

type fakeNotifications struct {
	markErr error
	items   []notification.Notification
}

func (f *fakeNotifications) List(context.Context, uuid.UUID) ([]notification.Notification, error) {
	return f.items, nil
}

func (f *fakeNotifications) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return f.markErr }

func (f *fakeNotifications) UnreadCount(context.Context, uuid.UUID) (int, error) {
	return len(f.items), nil
}
