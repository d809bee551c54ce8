package handlers

import (
	"io"
	"net/http"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/http/middleware"
	"github.com/rastroinstala/instala-api/internal/infra/storage"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

// maxRegisterForm limita o corpo multipart inteiro: dois arquivos de
// 5 MB mais os campos de texto.
const maxRegisterForm = 2*storage.MaxEvidenceSize + 1<<20

type InstallerHandler struct {
	RegisterUC  *usecase.RegisterInstallerUseCase
	DirectoryUC *usecase.DirectoryUseCase
}

func NewInstallerHandler(register *usecase.RegisterInstallerUseCase, directory *usecase.DirectoryUseCase) *InstallerHandler {
	return &InstallerHandler{
		RegisterUC:  register,
		DirectoryUC: directory,
	}
}

// Register (POST /api/installers) recebe o cadastro multipart com as
// duas evidências obrigatórias.
func (h *InstallerHandler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRegisterForm)
	if err := r.ParseMultipartForm(maxRegisterForm); err != nil {
		badRequest(w, "formulário multipart inválido ou grande demais")
		return
	}

	input := usecase.RegisterInstallerInput{
		Name:        r.FormValue("nome"),
		Email:       r.FormValue("email"),
		CPF:         r.FormValue("cpf"),
		BirthDate:   r.FormValue("data_nascimento"),
		Address:     r.FormValue("endereco"),
		State:       r.FormValue("estado"),
		City:        r.FormValue("cidade"),
		Phone:       r.FormValue("telefone"),
		WhatsApp:    r.FormValue("whatsapp"),
		ServiceMode: r.FormValue("tipo_atendimento"),
		Password:    r.FormValue("senha"),
		Specialties: entity.ParseSpecialties(
			r.MultipartForm.Value["especialidades"],
			r.FormValue("especialidade"),
		),
	}

	input.Document = formUpload(r, "documento")
	input.Selfie = formUpload(r, "selfie")
	defer closeUpload(input.Document)
	defer closeUpload(input.Selfie)

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordInstallerRegistered()
	writeJSON(w, http.StatusCreated, output)
}

// formUpload extrai um arquivo do formulário; nil quando ausente, a
// validação do usecase decide se ele era obrigatório.
func formUpload(r *http.Request, field string) *storage.Upload {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	return &storage.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
}

func closeUpload(up *storage.Upload) {
	if up == nil {
		return
	}
	if c, ok := up.Content.(io.Closer); ok {
		c.Close()
	}
}

// List (GET /api/installers) é o diretório público de aprovados,
// filtrável por estado, cidade, especialidades e busca livre.
func (h *InstallerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	city := q.Get("cidade")
	if city == "" {
		city = q.Get("city")
	}

	installers, err := h.DirectoryUC.ListApproved(
		r.Context(),
		q.Get("uf"),
		city,
		q.Get("specialties"),
		q.Get("search"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, installers)
}
