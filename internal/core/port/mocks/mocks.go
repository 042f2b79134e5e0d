// Package mocks provides testify mock implementations of the core
// ports for use in usecase and adapter tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"buzzline/internal/core/domain"
	"buzzline/internal/core/port"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func setup(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockCampaignBackend mocks port.CampaignBackend.
type MockCampaignBackend struct{ mock.Mock }

func NewMockCampaignBackend(t testingT) *MockCampaignBackend {
	m := &MockCampaignBackend{}
	setup(t, &m.Mock)
	return m
}

func (m *MockCampaignBackend) CreateCampaign(ctx context.Context, payload domain.WirePayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

// MockSubmissionRepository mocks port.SubmissionRepository.
type MockSubmissionRepository struct{ mock.Mock }

func NewMockSubmissionRepository(t testingT) *MockSubmissionRepository {
	m := &MockSubmissionRepository{}
	setup(t, &m.Mock)
	return m
}

func (m *MockSubmissionRepository) Save(ctx context.Context, sub domain.Submission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	sub, _ := args.Get(0).(*domain.Submission)
	return sub, args.Error(1)
}

// MockWebhookVerifier mocks port.WebhookVerifier.
type MockWebhookVerifier struct{ mock.Mock }

func NewMockWebhookVerifier(t testingT) *MockWebhookVerifier {
	m := &MockWebhookVerifier{}
	setup(t, &m.Mock)
	return m
}

func (m *MockWebhookVerifier) VerifyAndParse(payload []byte, signature string) (*domain.PaymentEvent, error) {
	args := m.Called(payload, signature)
	event, _ := args.Get(0).(*domain.PaymentEvent)
	return event, args.Error(1)
}

// MockPaymentBackend mocks port.PaymentBackend.
type MockPaymentBackend struct{ mock.Mock }

func NewMockPaymentBackend(t testingT) *MockPaymentBackend {
	m := &MockPaymentBackend{}
	setup(t, &m.Mock)
	return m
}

func (m *MockPaymentBackend) VerifyPayment(ctx context.Context, req port.VerifyPaymentRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockPaymentBackend) DeductCredits(ctx context.Context, req port.DeductCreditsRequest) error {
	return m.Called(ctx, req).Error(0)
}

// MockIdempotencyStore mocks port.IdempotencyStore.
type MockIdempotencyStore struct{ mock.Mock }

func NewMockIdempotencyStore(t testingT) *MockIdempotencyStore {
	m := &MockIdempotencyStore{}
	setup(t, &m.Mock)
	return m
}

func (m *MockIdempotencyStore) Processed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockMailQueue mocks port.MailQueue.
type MockMailQueue struct{ mock.Mock }

func NewMockMailQueue(t testingT) *MockMailQueue {
	m := &MockMailQueue{}
	setup(t, &m.Mock)
	return m
}

func (m *MockMailQueue) EnqueueConfirmation(mail port.ConfirmationMail) {
	m.Called(mail)
}

func (m *MockMailQueue) EnqueueFailureNotice(mail port.FailureMail) {
	m.Called(mail)
}

// MockPaymentUseCase mocks port.PaymentUseCase.
type MockPaymentUseCase struct{ mock.Mock }

func NewMockPaymentUseCase(t testingT) *MockPaymentUseCase {
	m := &MockPaymentUseCase{}
	setup(t, &m.Mock)
	return m
}

func (m *MockPaymentUseCase) ProcessWebhook(ctx context.Context, payload []byte, signature string) (port.WebhookResult, error) {
	args := m.Called(ctx, payload, signature)
	result, _ := args.Get(0).(port.WebhookResult)
	return result, args.Error(1)
}

// MockCampaignUseCase mocks port.CampaignUseCase.
type MockCampaignUseCase struct{ mock.Mock }

func NewMockCampaignUseCase(t testingT) *MockCampaignUseCase {
	m := &MockCampaignUseCase{}
	setup(t, &m.Mock)
	return m
}

func (m *MockCampaignUseCase) SubmitCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Submission, error) {
	args := m.Called(ctx, draft)
	sub, _ := args.Get(0).(*domain.Submission)
	return sub, args.Error(1)
}

func (m *MockCampaignUseCase) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	sub, _ := args.Get(0).(*domain.Submission)
	return sub, args.Error(1)
}
