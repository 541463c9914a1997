package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRecord holds the columns every website submission carries.
type LeadRecord struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (r *LeadRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ServiceInquiry struct {
	LeadRecord
	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null" json:"email"`
	Service string `gorm:"type:text;not null" json:"service"`
	Message string `gorm:"type:text;not null" json:"message"`
	Page    string `gorm:"type:text;not null" json:"page"`
}

func (ServiceInquiry) TableName() string { return "service_inquiries" }

type QuoteRequest struct {
	LeadRecord
	Name        string `gorm:"type:text;not null" json:"name"`
	Email       string `gorm:"type:text;not null" json:"email"`
	ProjectType string `gorm:"type:text;not null" json:"projectType"`
	Budget      string `gorm:"type:text;not null" json:"budget"`
	Message     string `gorm:"type:text;not null" json:"message"`
	Page        string `gorm:"type:text;not null" json:"page"`
}

func (QuoteRequest) TableName() string { return "quote_requests" }

type ContactSubmission struct {
	LeadRecord
	Name    string  `gorm:"type:text;not null" json:"name"`
	Email   string  `gorm:"type:text;not null" json:"email"`
	Phone   *string `gorm:"type:text" json:"phone"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Page    string  `gorm:"type:text;not null" json:"page"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

type NewsletterSubscription struct {
	LeadRecord
	Email  string  `gorm:"type:text;not null" json:"email"`
	Name   *string `gorm:"type:text" json:"name"`
	Source string  `gorm:"type:text;not null" json:"source"`
}

// NewsletterSourceFooter is stored for every footer signup.
const NewsletterSourceFooter = "footer"

func (NewsletterSubscription) TableName() string { return "newsletter_subscriptions" }

type JobApplication struct {
	LeadRecord
	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null" json:"email"`
	Phone   string `gorm:"type:text;not null" json:"phone"`
	Role    string `gorm:"type:text;not null" json:"role"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (JobApplication) TableName() string { return "job_applications" }

type ProjectInterest struct {
	LeadRecord
	Project string  `gorm:"type:text;not null" json:"project"`
	Name    string  `gorm:"type:text;not null" json:"name"`
	Email   string  `gorm:"type:text;not null" json:"email"`
	Message *string `gorm:"type:text" json:"message"`
	Page    string  `gorm:"type:text;not null" json:"page"`
}

func (ProjectInterest) TableName() string { return "project_interests" }

type LeadTracking struct {
	LeadRecord
	Page   string  `gorm:"type:text;not null" json:"page"`
	Action string  `gorm:"type:text;not null" json:"action"`
	Name   *string `gorm:"type:text" json:"name"`
	Email  *string `gorm:"type:text" json:"email"`
}

func (LeadTracking) TableName() string { return "lead_tracking" }

type FeedbackSubmission struct {
	LeadRecord
	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null" json:"email"`
	Rating  *int   `json:"rating"`
	Message string `gorm:"type:text;not null" json:"message"`
	Page    string `gorm:"type:text;not null" json:"page"`
}

func (FeedbackSubmission) TableName() string { return "feedback_submissions" }
