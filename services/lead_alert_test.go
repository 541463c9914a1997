package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	args := m.Called(params)
	msg, _ := args.Get(0).(*twilioApi.ApiV2010Message)
	return msg, args.Error(1)
}

func TestLeadAlertNotifier_SendsWhatsApp(t *testing.T) {
	sender := new(mockSender)
	sid := "SM123"
	sender.On("CreateMessage", mock.MatchedBy(func(p *twilioApi.CreateMessageParams) bool {
		return *p.To == "whatsapp:+919800000000" &&
			*p.From == "whatsapp:+14155238886" &&
			*p.Body == "New quote lead: Jane Doe <jane@x.com>\nbudget: 50k"
	})).Return(&twilioApi.ApiV2010Message{Sid: &sid}, nil)

	n := &LeadAlertNotifier{sender: sender, from: "+14155238886", to: "whatsapp:+919800000000"}
	err := n.Notify(context.Background(), "quote", map[string]interface{}{
		"id":        "q-1",
		"name":      "Jane Doe",
		"email":     "jane@x.com",
		"budget":    "50k",
		"timestamp": "2026-01-01T00:00:00Z",
	})

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestLeadAlertNotifier_Errors(t *testing.T) {
	sender := new(mockSender)
	sender.On("CreateMessage", mock.Anything).Return(nil, errors.New("auth failed")).Once()
	sender.On("CreateMessage", mock.Anything).Return(&twilioApi.ApiV2010Message{}, nil).Once()

	n := &LeadAlertNotifier{sender: sender, from: "+1", to: "+2"}
	assert.Error(t, n.Notify(context.Background(), "contact", map[string]interface{}{}))
	assert.Error(t, n.Notify(context.Background(), "contact", map[string]interface{}{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, "contact", map[string]interface{}{}), context.Canceled)
	sender.AssertNumberOfCalls(t, "CreateMessage", 2)
}

func TestLeadSummary(t *testing.T) {
	summary := leadSummary("lead-tracking", map[string]interface{}{
		"page":   "/pricing",
		"action": "cta_click",
		"rating": 5,
		"name":   "",
	})
	assert.Equal(t, "New lead-tracking lead\naction: cta_click\npage: /pricing", summary)
}
