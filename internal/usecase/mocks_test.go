package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/database"
	"github.com/rastroinstala/instala-api/internal/infra/queue"
	"github.com/rastroinstala/instala-api/internal/infra/storage"
)

// MockInstallerRepository
type MockInstallerRepository struct {
	mock.Mock
}

func (m *MockInstallerRepository) Create(ctx context.Context, i *entity.Installer) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInstallerRepository) FindByID(ctx context.Context, id string) (*entity.Installer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Installer), args.Error(1)
}

func (m *MockInstallerRepository) FindByEmail(ctx context.Context, email string) (*entity.Installer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Installer), args.Error(1)
}

func (m *MockInstallerRepository) Review(ctx context.Context, id, status string, reviewedAt time.Time) error {
	args := m.Called(ctx, id, status, reviewedAt)
	return args.Error(0)
}

func (m *MockInstallerRepository) ListApproved(ctx context.Context, f entity.DirectoryFilter) ([]entity.Installer, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Installer), args.Error(1)
}

func (m *MockInstallerRepository) ListAll(ctx context.Context, status, search string) ([]entity.Installer, error) {
	args := m.Called(ctx, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Installer), args.Error(1)
}

func (m *MockInstallerRepository) CountApprovedByState(ctx context.Context) ([]entity.StateCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StateCount), args.Error(1)
}

func (m *MockInstallerRepository) CountApprovedCities(ctx context.Context, uf string) ([]entity.CityCount, error) {
	args := m.Called(ctx, uf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CityCount), args.Error(1)
}

// MockCustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkProposalSent(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) Decide(ctx context.Context, leadID, status string, decidedAt time.Time) error {
	args := m.Called(ctx, leadID, status, decidedAt)
	return args.Error(0)
}

func (m *MockLeadRepository) ListByInstaller(ctx context.Context, installerID string) ([]database.InstallerLeadRow, error) {
	args := m.Called(ctx, installerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.InstallerLeadRow), args.Error(1)
}

func (m *MockLeadRepository) ListByCustomer(ctx context.Context, customerID string) ([]database.CustomerLeadRow, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.CustomerLeadRow), args.Error(1)
}

// MockProposalRepository
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) Upsert(ctx context.Context, p *entity.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProposalRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.Proposal, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Proposal), args.Error(1)
}

func (m *MockProposalRepository) ListByLeadIDs(ctx context.Context, leadIDs []string) ([]entity.Proposal, error) {
	args := m.Called(ctx, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Proposal), args.Error(1)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, evt queue.NotificationEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

// MockEvidenceStore
type MockEvidenceStore struct {
	mock.Mock
}

func (m *MockEvidenceStore) SaveDocument(up storage.Upload) (string, error) {
	args := m.Called(up)
	return args.String(0), args.Error(1)
}

func (m *MockEvidenceStore) SaveSelfie(up storage.Upload) (string, error) {
	args := m.Called(up)
	return args.String(0), args.Error(1)
}
