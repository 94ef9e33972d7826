package sms

import (
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Config struct {
	AccountSid string
	AuthToken  string
	FromNumber string
}

// Sender is what the alert dispatcher depends on; the Twilio wrapper is
// the only production implementation.
type Sender interface {
	SendMessage(to, body string) error
}

type ClientWrapper struct {
	client *twilio.RestClient
	config Config
}

func NewClient(config Config) *ClientWrapper {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSid,
		Password: config.AuthToken,
	})

	return &ClientWrapper{client: client, config: config}
}

func (cw *ClientWrapper) SendMessage(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(cw.config.FromNumber)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := cw.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.ErrorMessage != nil && *resp.ErrorMessage != "" {
		return fmt.Errorf("twilio: %s", *resp.ErrorMessage)
	}

	return nil
}
