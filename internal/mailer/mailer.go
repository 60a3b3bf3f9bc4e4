package mailer

import (
	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

type message struct {
	to      string
	subject string
	body    string
}

// Mailer sends notification emails off the request path. Sends are queued to
// a single worker; a failed or dropped send is logged and never surfaced to
// the client.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	queue  chan message
	done   chan struct{}
}

func New(host string, port int, username, password, from string) *Mailer {
	m := &Mailer{
		from:  from,
		queue: make(chan message, 64),
		done:  make(chan struct{}),
	}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, username, password)
	}
	go m.run()
	return m
}

// Send enqueues a notification. It never blocks the caller: when the queue is
// full the message is dropped and logged.
func (m *Mailer) Send(to, subject, body string) {
	select {
	case m.queue <- message{to: to, subject: subject, body: body}:
	default:
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).
			Warn("mail queue full, dropping notification")
	}
}

// Close drains the queue and stops the worker.
func (m *Mailer) Close() {
	close(m.queue)
	<-m.done
}

func (m *Mailer) run() {
	defer close(m.done)
	for msg := range m.queue {
		m.deliver(msg)
	}
}

func (m *Mailer) deliver(msg message) {
	log := logrus.WithFields(logrus.Fields{"to": msg.to, "subject": msg.subject})

	if m.dialer == nil {
		log.Debug("mailer not configured, skipping notification")
		return
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.to)
	mail.SetHeader("Subject", msg.subject)
	mail.SetBody("text/plain", msg.body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		log.WithError(err).Error("error sending notification email")
		return
	}
	log.Info("notification email sent")
}
