package mail

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/rastroinstala/instala-api/internal/infra/queue"
)

// EmailSender entrega as notificações de revisão por SMTP. Sem senha
// configurada ele vira no-op com log, igual ao comportamento em dev.
type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// AdminEmail recebe o aviso de cadastro pendente.
	AdminEmail string
	// AdminPanelURL entra no corpo do email para o admin abrir a fila.
	AdminPanelURL string
}

func NewEmailSender(host string, port int, user, password, adminEmail, adminPanelURL string) *EmailSender {
	return &EmailSender{
		Host:          host,
		Port:          port,
		User:          user,
		Password:      password,
		AdminEmail:    adminEmail,
		AdminPanelURL: adminPanelURL,
	}
}

func (s *EmailSender) configured() bool {
	return s.Password != "" && s.Host != ""
}

func (s *EmailSender) NotifyInstallerPending(evt queue.NotificationEvent) error {
	if !s.configured() {
		log.Println("SMTP não configurado, email de pendência não enviado")
		return nil
	}

	body := fmt.Sprintf(`Novo instalador pendente de aprovação:

ID: %s
Nome: %s
Email: %s
CPF: %s
Nascimento: %s
Estado/Cidade: %s/%s
Telefone: %s
WhatsApp: %s
Especialidades: %s
Atendimento: %s

Painel admin:
%s`,
		evt.InstallerID, evt.Name, evt.Email, evt.CPF, evt.BirthDate,
		evt.State, evt.City, evt.Phone, evt.WhatsApp,
		strings.Join(evt.Specialties, ", "), evt.ServiceMode,
		s.AdminPanelURL,
	)

	subject := fmt.Sprintf("Instaladores de Rastreadores: novo instalador pendente (#%s)", evt.InstallerID)
	return s.send(s.AdminEmail, subject, body)
}

func (s *EmailSender) NotifyInstallerApproved(evt queue.NotificationEvent) error {
	if !s.configured() {
		log.Println("SMTP não configurado, email de aprovação não enviado")
		return nil
	}

	body := fmt.Sprintf(`Olá, %s!

Seu cadastro de instalador foi aprovado. Já é possível fazer login e
receber pedidos de orçamento na sua região (%s/%s).`,
		evt.Name, evt.State, evt.City,
	)

	return s.send(evt.Email, "Instaladores de Rastreadores: cadastro aprovado", body)
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("Instaladores de Rastreadores <%s>", s.User))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
