// Package mail delivers the transactional emails: generated credentials,
// recovered passwords and device status updates. Delivery runs on a worker
// pool fed through a channel so SMTP latency stays out of the request path;
// handlers dispatch only after the triggering row is committed. Send
// failures are logged and never retried.
package mail

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Message is one email job for the worker pool.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender defines the interface for delivering a single message.
type Sender interface {
	Send(msg Message) error
}

// smtpSender delivers through gomail over SMTP.
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return s.dialer.DialAndSend(m)
}

// logSender stands in when mail is disabled in the configuration.
type logSender struct{}

func (logSender) Send(msg Message) error {
	log.Printf("mail disabled; dropping %q to %s", msg.Subject, msg.To)
	return nil
}

// Credenciales is the registration email carrying the generated password.
func Credenciales(correo, plainPassword string) Message {
	return Message{
		To:      correo,
		Subject: "Contraseña para inicio de sesión",
		HTML: fmt.Sprintf(`
    <h1>Bienvenido a Hackers Internet 🦾 </h1>
    <p>Tu contraseña para iniciar sesión es: %s</p>
    <footer>Un hacker te Saluda 🤖!</footer>
    `, plainPassword),
	}
}

// RecuperarPassword is the recovery email with the temporary password.
func RecuperarPassword(correo, plainPassword string) Message {
	return Message{
		To:      correo,
		Subject: "Nueva contraseña temporal",
		HTML: fmt.Sprintf(`
      <h1>Hackers Internet🤖</h1>
      <hr>
      <p>Tu nueva contraseña temporal es: <strong>%s</strong></p>
      <p>Por favor, cambia esta contraseña después de iniciar sesión.</p>
      <hr>
      <footer>Cuida la contraseña!😤 </footer>
    `, plainPassword),
	}
}

// EstadoEquipo notifies a cliente of the current state of their device.
func EstadoEquipo(correo, estadoActual, observaciones, nombreEquipo string) Message {
	return Message{
		To:      correo,
		Subject: "Estado actual de tu equipo",
		HTML: fmt.Sprintf(`
      <h1>Estado actual de tu equipo</h1>
      <p><strong>Estado Actual:</strong> %s</p>
      <p><strong>Observaciones:</strong> %s</p>
      <p><strong>Nombre del Equipo:</strong> %s</p>
      <hr>
      <footer>Gracias por confiar en nosotros! 🛠️ </footer>
    `, estadoActual, observaciones, nombreEquipo),
	}
}
