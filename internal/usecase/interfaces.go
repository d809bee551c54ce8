package usecase

import (
	"context"
	"time"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/database"
	"github.com/rastroinstala/instala-api/internal/infra/queue"
	"github.com/rastroinstala/instala-api/internal/infra/storage"
)

type InstallerRepository interface {
	Create(ctx context.Context, i *entity.Installer) error
	FindByID(ctx context.Context, id string) (*entity.Installer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Installer, error)
	Review(ctx context.Context, id, status string, reviewedAt time.Time) error
	ListApproved(ctx context.Context, f entity.DirectoryFilter) ([]entity.Installer, error)
	ListAll(ctx context.Context, status, search string) ([]entity.Installer, error)
	CountApprovedByState(ctx context.Context) ([]entity.StateCount, error)
	CountApprovedCities(ctx context.Context, uf string) ([]entity.CityCount, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
}

type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	MarkProposalSent(ctx context.Context, leadID string) error
	Decide(ctx context.Context, leadID, status string, decidedAt time.Time) error
	ListByInstaller(ctx context.Context, installerID string) ([]database.InstallerLeadRow, error)
	ListByCustomer(ctx context.Context, customerID string) ([]database.CustomerLeadRow, error)
}

type ProposalRepository interface {
	Upsert(ctx context.Context, p *entity.Proposal) error
	FindByLeadID(ctx context.Context, leadID string) (*entity.Proposal, error)
	ListByLeadIDs(ctx context.Context, leadIDs []string) ([]entity.Proposal, error)
}

// NotificationProducer publica eventos de revisão na fila. A entrega
// em si acontece no worker; falha aqui é logada e engolida.
type NotificationProducer interface {
	PublishNotification(ctx context.Context, evt queue.NotificationEvent) error
}

// EvidenceStore guarda os dois arquivos do cadastro de instalador.
type EvidenceStore interface {
	SaveDocument(up storage.Upload) (string, error)
	SaveSelfie(up storage.Upload) (string, error)
}
