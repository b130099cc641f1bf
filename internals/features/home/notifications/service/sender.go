package service

import (
	"fmt"
	"log"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/model"
)

// Sender envoie une notification sur un canal donné.
type Sender interface {
	Send(n model.NotificationQueueModel) error
}

// LogEmailSender trace l'email au lieu de l'envoyer. Suffisant tant que
// l'association n'a pas de compte SMTP transactionnel.
type LogEmailSender struct{}

func (LogEmailSender) Send(n model.NotificationQueueModel) error {
	log.Printf("📧 [email] à=%s sujet=%q", n.NotificationRecipient, n.NotificationSubject)
	return nil
}

// LogSMSSender trace le SMS au lieu de l'envoyer.
type LogSMSSender struct{}

func (LogSMSSender) Send(n model.NotificationQueueModel) error {
	log.Printf("📱 [sms] à=%s corps=%q", n.NotificationRecipient, n.NotificationBody)
	return nil
}

// SenderFor retourne l'émetteur du canal demandé.
func SenderFor(channel string) (Sender, error) {
	switch channel {
	case constants.NotificationChannelEmail:
		return LogEmailSender{}, nil
	case constants.NotificationChannelSMS:
		return LogSMSSender{}, nil
	default:
		return nil, fmt.Errorf("canal de notification inconnu: %s", channel)
	}
}
