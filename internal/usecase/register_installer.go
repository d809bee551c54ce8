package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/queue"
	"github.com/rastroinstala/instala-api/internal/infra/storage"
)

type RegisterInstallerInput struct {
	Name        string
	Email       string
	CPF         string
	BirthDate   string
	Address     string
	State       string
	City        string
	Phone       string
	WhatsApp    string
	ServiceMode string
	Password    string
	Specialties []string

	Document *storage.Upload
	Selfie   *storage.Upload
}

type RegisterInstallerOutput struct {
	ID     string `json:"id"`
	State  string `json:"estado"`
	City   string `json:"cidade"`
	Status string `json:"status"`
}

type RegisterInstallerUseCase struct {
	Installers InstallerRepository
	Evidence   EvidenceStore
	Queue      NotificationProducer
}

func NewRegisterInstallerUseCase(installers InstallerRepository, evidence EvidenceStore, producer NotificationProducer) *RegisterInstallerUseCase {
	return &RegisterInstallerUseCase{
		Installers: installers,
		Evidence:   evidence,
		Queue:      producer,
	}
}

func (uc *RegisterInstallerUseCase) Execute(ctx context.Context, input RegisterInstallerInput) (*RegisterInstallerOutput, error) {
	// Valida tudo antes de tocar em disco ou banco: cadastro com CPF
	// de 10 dígitos não deixa rastro nenhum.
	if errs := ValidateRegisterInstallerInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	docPath, err := uc.Evidence.SaveDocument(*input.Document)
	if err != nil {
		return nil, evidenceError(err)
	}
	selfiePath, err := uc.Evidence.SaveSelfie(*input.Selfie)
	if err != nil {
		return nil, evidenceError(err)
	}

	passwordHash, err := hashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: "falha ao processar a senha"}
	}

	whatsapp := input.WhatsApp
	if whatsapp == "" {
		whatsapp = input.Phone
	}

	installer, err := entity.NewInstaller(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		entity.OnlyDigits(input.CPF),
		strings.TrimSpace(input.BirthDate),
		strings.TrimSpace(input.Address),
		input.State,
		strings.TrimSpace(input.City),
		strings.TrimSpace(input.Phone),
		whatsapp,
		input.ServiceMode,
		passwordHash,
		input.Specialties,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	installer.DocumentPath = docPath
	installer.SelfiePath = selfiePath

	if err := uc.Installers.Create(ctx, installer); err != nil {
		return nil, storeError(err)
	}

	// Aviso ao admin é melhor esforço: a fila pode estar fora e o
	// cadastro continua valendo.
	go func() {
		evt := notificationEvent(queue.EventInstallerPending, installer)
		if err := uc.Queue.PublishNotification(context.Background(), evt); err != nil {
			log.Printf("erro ao publicar notificação de pendência: %v", err)
		}
	}()

	return &RegisterInstallerOutput{
		ID:     installer.ID,
		State:  installer.State,
		City:   installer.City,
		Status: installer.Status,
	}, nil
}

func evidenceError(err error) error {
	if errors.Is(err, storage.ErrInvalidFile) {
		return &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	return &TechnicalError{Code: "STORAGE_ERROR", Message: "falha ao gravar evidência: " + err.Error()}
}

func notificationEvent(eventType string, i *entity.Installer) queue.NotificationEvent {
	return queue.NotificationEvent{
		Type:        eventType,
		InstallerID: i.ID,
		Name:        i.Name,
		Email:       i.Email,
		CPF:         i.CPF,
		BirthDate:   i.BirthDate,
		State:       i.State,
		City:        i.City,
		Phone:       i.Phone,
		WhatsApp:    i.WhatsApp,
		Specialties: []string(i.Specialties),
		ServiceMode: i.ServiceMode,
	}
}
