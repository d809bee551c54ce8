package usecase

import (
	"context"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
)

// DirectoryUseCase responde às consultas de vitrine e às listagens do
// admin. Nenhum caminho daqui devolve instalador não aprovado para o
// público.
type DirectoryUseCase struct {
	Installers InstallerRepository
}

func NewDirectoryUseCase(installers InstallerRepository) *DirectoryUseCase {
	return &DirectoryUseCase{Installers: installers}
}

func (uc *DirectoryUseCase) ListApproved(ctx context.Context, uf, city, specialtiesCSV, search string) ([]entity.Installer, error) {
	uf = entity.NormalizeUF(uf)
	if !entity.IsValidUF(uf) {
		return nil, &DomainError{Code: CodeValidation, Message: "uf inválida"}
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "cidade obrigatória"}
	}

	filter := entity.DirectoryFilter{
		State:       uf,
		City:        city,
		Specialties: entity.ParseSpecialties(nil, specialtiesCSV),
		Search:      strings.TrimSpace(search),
	}

	installers, err := uc.Installers.ListApproved(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return installers, nil
}

func (uc *DirectoryUseCase) ListAll(ctx context.Context, status, search string) ([]entity.Installer, error) {
	installers, err := uc.Installers.ListAll(ctx, strings.TrimSpace(status), strings.TrimSpace(search))
	if err != nil {
		return nil, storeError(err)
	}
	return installers, nil
}

func (uc *DirectoryUseCase) PendingQueue(ctx context.Context) ([]entity.Installer, error) {
	return uc.ListAll(ctx, entity.InstallerPending, "")
}

// States devolve as 27 UFs com a contagem de aprovados, zero incluso.
func (uc *DirectoryUseCase) States(ctx context.Context) ([]entity.StateCount, error) {
	counts, err := uc.Installers.CountApprovedByState(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	byUF := make(map[string]int, len(counts))
	for _, c := range counts {
		byUF[entity.NormalizeUF(c.UF)] = c.Total
	}

	out := make([]entity.StateCount, 0, len(entity.States))
	for _, s := range entity.States {
		out = append(out, entity.StateCount{UF: s.UF, Name: s.Name, Total: byUF[s.UF]})
	}
	return out, nil
}

func (uc *DirectoryUseCase) Cities(ctx context.Context, uf string) ([]entity.CityCount, error) {
	uf = entity.NormalizeUF(uf)
	if !entity.IsValidUF(uf) {
		return nil, &DomainError{Code: CodeValidation, Message: "uf inválida"}
	}
	counts, err := uc.Installers.CountApprovedCities(ctx, uf)
	if err != nil {
		return nil, storeError(err)
	}
	return counts, nil
}
