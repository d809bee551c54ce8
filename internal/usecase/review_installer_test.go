package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

func TestApproveInstaller(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	producer := new(MockNotificationProducer)

	installerRepo.On("Review", ctx, "inst-1", entity.InstallerApproved, mock.Anything).Return(nil)
	installerRepo.On("FindByID", ctx, "inst-1").Return(approvedInstaller("inst-1"), nil)
	producer.On("PublishNotification", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewReviewInstallerUseCase(installerRepo, producer)
	err := uc.Approve(ctx, "inst-1")

	assert.NoError(t, err)
	installerRepo.AssertCalled(t, "Review", ctx, "inst-1", entity.InstallerApproved, mock.Anything)
}

func TestRejectInstaller(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	producer := new(MockNotificationProducer)

	installerRepo.On("Review", ctx, "inst-1", entity.InstallerRejected, mock.Anything).Return(nil)

	uc := usecase.NewReviewInstallerUseCase(installerRepo, producer)
	err := uc.Reject(ctx, "inst-1")

	assert.NoError(t, err)
	// Rejeição não notifica ninguém.
	producer.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestReviewTwice(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	producer := new(MockNotificationProducer)

	installerRepo.On("Review", ctx, "inst-1", entity.InstallerRejected, mock.Anything).
		Return(entity.ErrStaleStatus)

	uc := usecase.NewReviewInstallerUseCase(installerRepo, producer)
	err := uc.Reject(ctx, "inst-1")

	assertDomainCode(t, err, usecase.CodeAlreadyReviewed)
}

func TestReviewUnknownInstaller(t *testing.T) {
	ctx := context.Background()
	installerRepo := new(MockInstallerRepository)
	producer := new(MockNotificationProducer)

	installerRepo.On("Review", ctx, "ghost", entity.InstallerApproved, mock.Anything).
		Return(entity.ErrNotFound)

	uc := usecase.NewReviewInstallerUseCase(installerRepo, producer)
	err := uc.Approve(ctx, "ghost")

	assertDomainCode(t, err, usecase.CodeNotFound)
}
