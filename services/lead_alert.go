// services/lead_alert.go
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageSender is the slice of the Twilio API the alert uses.
type messageSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// LeadAlertNotifier sends a short WhatsApp message about each new lead to
// the agency's phone.
type LeadAlertNotifier struct {
	sender messageSender
	from   string
	to     string
}

func NewLeadAlertNotifier(accountSid, authToken, from, to string) *LeadAlertNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return &LeadAlertNotifier{sender: client.Api, from: from, to: to}
}

func (n *LeadAlertNotifier) Name() string { return "whatsapp" }

func (n *LeadAlertNotifier) Notify(ctx context.Context, path string, payload map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsAppAddress(n.to))
	params.SetFrom(whatsAppAddress(n.from))
	params.SetBody(leadSummary(path, payload))

	resp, err := n.sender.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp == nil || resp.Sid == nil {
		return fmt.Errorf("twilio returned no message sid")
	}
	return nil
}

func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

// leadSummary renders the alert body: a headline with the submitter followed
// by the remaining text fields in key order.
func leadSummary(path string, payload map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New %s lead", path)
	if name, ok := payload["name"].(string); ok && name != "" {
		fmt.Fprintf(&b, ": %s", name)
	}
	if email, ok := payload["email"].(string); ok && email != "" {
		fmt.Fprintf(&b, " <%s>", email)
	}

	skip := map[string]bool{"id": true, "name": true, "email": true, "timestamp": true}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		if !skip[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := payload[k].(string); ok && s != "" {
			fmt.Fprintf(&b, "\n%s: %s", k, s)
		}
	}
	return b.String()
}
