package mail

import (
	"log"

	gomail "github.com/wneessen/go-mail"

	"github.com/chairtime/booking-api/internal/config"
)

// Confirmation carrega os detalhes já resolvidos do agendamento; o core
// entrega só o time_to calculado, o resto vem das entidades persistidas.
type Confirmation struct {
	To        string
	FirstName string
	LastName  string
	Service   string
	Date      string
	TimeFrom  string
	TimeTo    string
	Employee  string
}

type Mailer struct {
	client   *gomail.Client
	from     string
	shopName string
}

// NewMailer devolve nil quando o SMTP não está configurado; o envio de
// confirmação vira no-op e o agendamento segue normal.
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}

	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPUser),
		gomail.WithPassword(cfg.SMTPPassword),
	)
	if err != nil {
		log.Printf("mail client disabled: %v", err)
		return nil
	}

	return &Mailer{
		client:   client,
		from:     cfg.MailFrom,
		shopName: cfg.ShopName,
	}
}

// SendConfirmation monta e envia o e-mail de confirmação. Falha de envio
// é logada, nunca desfaz o agendamento.
func (m *Mailer) SendConfirmation(conf Confirmation) {
	if m == nil || conf.To == "" {
		return
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		log.Printf("mail from %q rejected: %v", m.from, err)
		return
	}
	if err := msg.To(conf.To); err != nil {
		log.Printf("mail to %q rejected: %v", conf.To, err)
		return
	}

	msg.Subject(m.shopName + " - appointment confirmation")
	msg.SetBodyString(gomail.TypeTextPlain, confirmationText(conf, m.shopName))
	msg.AddAlternativeString(gomail.TypeTextHTML, confirmationHTML(conf, m.shopName))

	if err := m.client.DialAndSend(msg); err != nil {
		log.Printf("failed to send confirmation to %s: %v", conf.To, err)
	}
}
