package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxEvidenceSize limita cada arquivo de evidência a 5 MB.
const MaxEvidenceSize = 5 << 20

// ErrInvalidFile marca violação de tipo ou tamanho. O caller trata
// como erro de entrada (400), nunca como falha de infraestrutura.
var ErrInvalidFile = errors.New("arquivo inválido")

var (
	documentTypes = map[string]bool{
		"image/jpeg":      true,
		"image/png":       true,
		"application/pdf": true,
	}
	selfieTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
	}
)

// Upload é um arquivo recebido no cadastro. Do nome original só a
// extensão é aproveitada; o nome salvo é gerado aqui.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// DiskStore grava as evidências em disco, documentos e selfies em
// subpastas separadas, com nomes aleatórios para evitar colisão.
type DiskStore struct {
	BaseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	for _, dir := range []string{"documents", "selfies"} {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
		}
	}
	return &DiskStore{BaseDir: baseDir}, nil
}

func (s *DiskStore) SaveDocument(up Upload) (string, error) {
	if !documentTypes[up.ContentType] {
		return "", fmt.Errorf("%w: documento precisa ser JPG, PNG ou PDF", ErrInvalidFile)
	}
	return s.save("documents", up)
}

func (s *DiskStore) SaveSelfie(up Upload) (string, error) {
	if !selfieTypes[up.ContentType] {
		return "", fmt.Errorf("%w: selfie precisa ser JPG ou PNG", ErrInvalidFile)
	}
	return s.save("selfies", up)
}

func (s *DiskStore) save(kind string, up Upload) (string, error) {
	if up.Size > MaxEvidenceSize {
		return "", fmt.Errorf("%w: arquivo excede o limite de 5MB", ErrInvalidFile)
	}

	ext := strings.ToLower(filepath.Ext(up.Name))
	name := uuid.NewString() + ext
	dst := filepath.Join(s.BaseDir, kind, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("erro ao gravar evidência: %w", err)
	}
	defer f.Close()

	// Limite reforçado na cópia: Size vem do multipart e não é confiável.
	n, err := io.Copy(f, io.LimitReader(up.Content, MaxEvidenceSize+1))
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("erro ao gravar evidência: %w", err)
	}
	if n > MaxEvidenceSize {
		os.Remove(dst)
		return "", fmt.Errorf("%w: arquivo excede o limite de 5MB", ErrInvalidFile)
	}

	return "/uploads/" + kind + "/" + name, nil
}
