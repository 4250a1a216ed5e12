package sms

import "log"

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(phone, message string) error
}

// LogSender writes messages to the application log instead of a gateway.
// Used until an SMS provider (MSG91, Twilio) is wired in.
type LogSender struct{}

// NewLogSender creates a log-backed sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message
func (s *LogSender) Send(phone, message string) error {
	log.Printf("SMS to %s: %s", phone, message)
	return nil
}
