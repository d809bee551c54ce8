package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/queue"
)

// ReviewInstallerUseCase é a revisão manual do admin: aprova ou
// rejeita um cadastro pendente. A decisão é terminal.
type ReviewInstallerUseCase struct {
	Installers InstallerRepository
	Queue      NotificationProducer
}

func NewReviewInstallerUseCase(installers InstallerRepository, producer NotificationProducer) *ReviewInstallerUseCase {
	return &ReviewInstallerUseCase{Installers: installers, Queue: producer}
}

func (uc *ReviewInstallerUseCase) Approve(ctx context.Context, id string) error {
	if err := uc.review(ctx, id, entity.InstallerApproved); err != nil {
		return err
	}

	// Avisa o instalador que ele já pode logar. Melhor esforço.
	installer, err := uc.Installers.FindByID(ctx, id)
	if err != nil {
		log.Printf("erro ao carregar instalador aprovado %s: %v", id, err)
		return nil
	}
	go func() {
		evt := notificationEvent(queue.EventInstallerApproved, installer)
		if err := uc.Queue.PublishNotification(context.Background(), evt); err != nil {
			log.Printf("erro ao publicar notificação de aprovação: %v", err)
		}
	}()
	return nil
}

func (uc *ReviewInstallerUseCase) Reject(ctx context.Context, id string) error {
	return uc.review(ctx, id, entity.InstallerRejected)
}

func (uc *ReviewInstallerUseCase) review(ctx context.Context, id, status string) error {
	err := uc.Installers.Review(ctx, id, status, time.Now())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrNotFound):
		return &DomainError{Code: CodeNotFound, Message: "instalador não encontrado"}
	case errors.Is(err, entity.ErrStaleStatus):
		return &DomainError{Code: CodeAlreadyReviewed, Message: "este cadastro já foi revisado"}
	default:
		return storeError(err)
	}
}
