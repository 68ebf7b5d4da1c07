package utils

// EmailSender delivers transactional email.
type EmailSender interface {
	Send(to, subject, body string) error
}

// LogEmailSender writes outgoing mail to the log instead of delivering it.
// Used in development and tests.
type LogEmailSender struct{}

func (LogEmailSender) Send(to, subject, body string) error {
	GetLogger().Sugar().Infof("Sending email to %s: %s - %s", to, subject, body)
	return nil
}
