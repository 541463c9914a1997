package models

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Client{},
		&FollowUp{},
		&Requirement{},
		&Proposal{},
		&Payment{},
		&Project{},
		&ServiceInquiry{},
		&QuoteRequest{},
		&ContactSubmission{},
		&NewsletterSubscription{},
		&JobApplication{},
		&ProjectInterest{},
		&LeadTracking{},
		&FeedbackSubmission{},
		&Admin{},
		&AdminSession{},
	}
}
