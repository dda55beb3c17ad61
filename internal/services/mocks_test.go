package services

import (
	"context"

	"github.com/archilink/jobboard/internal/clients/razorpay"
	"github.com/archilink/jobboard/internal/entities"
	"github.com/stretchr/testify/mock"
)

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) Add(ctx context.Context, job entities.Job) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func (m *mockJobs) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Job), args.Error(1)
}

func (m *mockJobs) Get(ctx context.Context, types []entities.JobType, remote *bool) ([]entities.Job, error) {
	args := m.Called(ctx, types, remote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Job), args.Error(1)
}

func (m *mockJobs) IncrementApplications(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockFeatured struct {
	mock.Mock
}

func (m *mockFeatured) GetFeatured(ctx context.Context, limit int) ([]entities.Job, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Job), args.Error(1)
}

func (m *mockFeatured) Invalidate() {
	m.Called()
}

type stubSession struct {
	user *entities.Identity
}

func (s *stubSession) CurrentUser() (entities.Identity, bool) {
	if s.user == nil {
		return entities.Identity{}, false
	}
	return *s.user, true
}

func firmSession() *stubSession {
	return &stubSession{user: &entities.Identity{UserID: "firm-1", Role: entities.Firm}}
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Charge(ctx context.Context, request razorpay.ChargeRequest) (razorpay.Outcome, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(razorpay.Outcome), args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) CreateJob(ctx context.Context, draft entities.JobDraft, featured bool) (string, error) {
	args := m.Called(ctx, draft, featured)
	return args.String(0), args.Error(1)
}

func (m *mockDirectory) RecordApplication(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) RecordCaptured(ctx context.Context, payment entities.CapturedPayment) error {
	return m.Called(ctx, payment).Error(0)
}
