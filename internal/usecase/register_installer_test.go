package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/storage"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

func validRegisterInput() usecase.RegisterInstallerInput {
	return usecase.RegisterInstallerInput{
		Name:        "Carlos Andrade",
		Email:       "carlos@rastro.com",
		CPF:         "123.456.789-09",
		BirthDate:   "1988-03-12",
		Address:     "Rua XV de Novembro, 1200",
		State:       "PR",
		City:        "Curitiba",
		Phone:       "(41) 3333-2222",
		WhatsApp:    "(41) 98888-7777",
		ServiceMode: entity.ServiceModeBoth,
		Password:    "segredo1",
		Specialties: []string{"Telemetria"},
		Document: &storage.Upload{
			Name:        "cnh.pdf",
			ContentType: "application/pdf",
			Size:        1024,
			Content:     strings.NewReader("pdf"),
		},
		Selfie: &storage.Upload{
			Name:        "selfie.jpg",
			ContentType: "image/jpeg",
			Size:        2048,
			Content:     strings.NewReader("jpg"),
		},
	}
}

func TestRegisterInstallerSuccess(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	evidence := new(MockEvidenceStore)
	producer := new(MockNotificationProducer)

	evidence.On("SaveDocument", mock.Anything).Return("/uploads/documents/doc.pdf", nil)
	evidence.On("SaveSelfie", mock.Anything).Return("/uploads/selfies/selfie.jpg", nil)
	installerRepo.On("Create", ctx, mock.Anything).Return(nil)
	producer.On("PublishNotification", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewRegisterInstallerUseCase(installerRepo, evidence, producer)
	output, err := uc.Execute(ctx, validRegisterInput())

	assert.NoError(t, err)
	assert.Equal(t, entity.InstallerPending, output.Status)
	assert.Equal(t, "PR", output.State)
	assert.NotEmpty(t, output.ID)

	installerRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(i *entity.Installer) bool {
		return i.Status == entity.InstallerPending &&
			i.CPF == "12345678909" &&
			i.DocumentPath == "/uploads/documents/doc.pdf" &&
			i.SelfiePath == "/uploads/selfies/selfie.jpg"
	}))
}

func TestRegisterInstallerShortCPFLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	evidence := new(MockEvidenceStore)
	producer := new(MockNotificationProducer)

	input := validRegisterInput()
	input.CPF = "123.456.789" // 9 dígitos

	uc := usecase.NewRegisterInstallerUseCase(installerRepo, evidence, producer)
	_, err := uc.Execute(ctx, input)

	assertDomainCode(t, err, usecase.CodeValidation)
	// Validação falhou: nem disco nem banco foram tocados.
	evidence.AssertNotCalled(t, "SaveDocument", mock.Anything)
	evidence.AssertNotCalled(t, "SaveSelfie", mock.Anything)
	installerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterInstallerMissingEvidence(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	evidence := new(MockEvidenceStore)
	producer := new(MockNotificationProducer)

	input := validRegisterInput()
	input.Selfie = nil

	uc := usecase.NewRegisterInstallerUseCase(installerRepo, evidence, producer)
	_, err := uc.Execute(ctx, input)

	assertDomainCode(t, err, usecase.CodeValidation)
	installerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterInstallerInvalidSpecialty(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	evidence := new(MockEvidenceStore)
	producer := new(MockNotificationProducer)

	input := validRegisterInput()
	input.Specialties = []string{"Mecânica Geral"}

	uc := usecase.NewRegisterInstallerUseCase(installerRepo, evidence, producer)
	_, err := uc.Execute(ctx, input)

	assertDomainCode(t, err, usecase.CodeValidation)
}

func TestRegisterInstallerRejectedEvidence(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	evidence := new(MockEvidenceStore)
	producer := new(MockNotificationProducer)

	evidence.On("SaveDocument", mock.Anything).Return("", storage.ErrInvalidFile)

	uc := usecase.NewRegisterInstallerUseCase(installerRepo, evidence, producer)
	_, err := uc.Execute(ctx, validRegisterInput())

	assertDomainCode(t, err, usecase.CodeValidation)
	installerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCustomerSuccess(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterCustomerUseCase(customerRepo)
	output, err := uc.Execute(ctx, usecase.RegisterCustomerInput{
		Name:     "Ana Souza",
		Email:    "Ana@Exemplo.com",
		Phone:    "(11) 97777-1234",
		Password: "segredo1",
		State:    "SP",
		City:     "São Paulo",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)

	customerRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Email == "ana@exemplo.com"
	}))
}

func TestRegisterCustomerDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewRegisterCustomerUseCase(customerRepo)
	_, err := uc.Execute(ctx, usecase.RegisterCustomerInput{
		Name:     "Ana Souza",
		Email:    "ana@exemplo.com",
		Phone:    "(11) 97777-1234",
		Password: "segredo1",
		State:    "SP",
		City:     "São Paulo",
	})

	assertDomainCode(t, err, usecase.CodeEmailTaken)
}

func TestRegisterCustomerShortPassword(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(MockCustomerRepository)

	uc := usecase.NewRegisterCustomerUseCase(customerRepo)
	_, err := uc.Execute(ctx, usecase.RegisterCustomerInput{
		Name:     "Ana Souza",
		Email:    "ana@exemplo.com",
		Phone:    "(11) 97777-1234",
		Password: "12345",
		State:    "SP",
		City:     "São Paulo",
	})

	assertDomainCode(t, err, usecase.CodeValidation)
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
