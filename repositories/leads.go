package repositories

import (
	"context"
	"errors"

	"unovation-backend/models"
)

var ErrUnknownLeadKind = errors.New("unknown lead kind")

// LeadData is every website submission, newest first per table.
type LeadData struct {
	ServiceInquiries        []models.ServiceInquiry         `json:"serviceInquiries"`
	QuoteRequests           []models.QuoteRequest           `json:"quoteRequests"`
	ContactSubmissions      []models.ContactSubmission      `json:"contactSubmissions"`
	NewsletterSubscriptions []models.NewsletterSubscription `json:"newsletterSubscriptions"`
	JobApplications         []models.JobApplication         `json:"jobApplications"`
	ProjectInterests        []models.ProjectInterest        `json:"projectInterests"`
	LeadTracking            []models.LeadTracking           `json:"leadTracking"`
	FeedbackSubmissions     []models.FeedbackSubmission     `json:"feedbackSubmissions"`
}

func (s *Store) LeadData(ctx context.Context) (*LeadData, error) {
	var (
		out LeadData
		err error
	)
	if out.ServiceInquiries, err = s.ServiceInquiries.List(ctx); err != nil {
		return nil, err
	}
	if out.QuoteRequests, err = s.QuoteRequests.List(ctx); err != nil {
		return nil, err
	}
	if out.ContactSubmissions, err = s.ContactSubmissions.List(ctx); err != nil {
		return nil, err
	}
	if out.NewsletterSubscriptions, err = s.NewsletterSubscriptions.List(ctx); err != nil {
		return nil, err
	}
	if out.JobApplications, err = s.JobApplications.List(ctx); err != nil {
		return nil, err
	}
	if out.ProjectInterests, err = s.ProjectInterests.List(ctx); err != nil {
		return nil, err
	}
	if out.LeadTracking, err = s.LeadTracking.List(ctx); err != nil {
		return nil, err
	}
	if out.FeedbackSubmissions, err = s.FeedbackSubmissions.List(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLead removes one submission. kind is the admin path segment.
func (s *Store) DeleteLead(ctx context.Context, kind, id string) error {
	switch kind {
	case "inquiries":
		return s.ServiceInquiries.Delete(ctx, id)
	case "quotes":
		return s.QuoteRequests.Delete(ctx, id)
	case "contact":
		return s.ContactSubmissions.Delete(ctx, id)
	case "newsletter":
		return s.NewsletterSubscriptions.Delete(ctx, id)
	case "job-applications":
		return s.JobApplications.Delete(ctx, id)
	case "project-interests":
		return s.ProjectInterests.Delete(ctx, id)
	case "lead-tracking":
		return s.LeadTracking.Delete(ctx, id)
	case "feedback":
		return s.FeedbackSubmissions.Delete(ctx, id)
	default:
		return ErrUnknownLeadKind
	}
}
