package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUp is one contact with a client. A client has any number of them.
type FollowUp struct {
	ID               string     `gorm:"type:text;primaryKey" json:"id"`
	ClientID         string     `gorm:"type:text;index;not null" json:"clientId"`
	FollowUpDate     time.Time  `gorm:"not null" json:"followUpDate"`
	FollowUpType     string     `gorm:"type:text;not null" json:"followUpType"` // Call / WhatsApp / Email / Meeting
	DiscussionNotes  string     `gorm:"type:text;not null" json:"discussionNotes"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
	Status           string     `gorm:"type:text;not null" json:"status"` // Interested / Pending / Confirmed
	DateCreated      time.Time  `gorm:"autoCreateTime" json:"dateCreated"`
}

func (FollowUp) TableName() string {
	return "follow_ups"
}

func (f *FollowUp) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// PipelineRecord holds the columns shared by the one-per-client pipeline
// entities. The unique index on client_id backs the upsert contract.
type PipelineRecord struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	ClientID    string    `gorm:"type:text;not null;uniqueIndex" json:"clientId"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}

func (r *PipelineRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Pipeline exposes the shared columns of a one-per-client record.
func (r *PipelineRecord) Pipeline() *PipelineRecord {
	return r
}

type Requirement struct {
	PipelineRecord
	WebsiteType       *string    `gorm:"type:text" json:"websiteType"`
	PagesNeeded       *string    `gorm:"type:text" json:"pagesNeeded"`
	Features          *string    `gorm:"type:text" json:"features"`
	ReferenceWebsites *string    `gorm:"type:text" json:"referenceWebsites"`
	BudgetRange       *string    `gorm:"type:text" json:"budgetRange"`
	Deadline          *time.Time `json:"deadline"`
}

func (Requirement) TableName() string {
	return "requirements"
}

type Proposal struct {
	PipelineRecord
	ProposedService string  `gorm:"type:text;not null" json:"proposedService"`
	Price           int     `gorm:"not null" json:"price"` // whole rupees
	Timeline        string  `gorm:"type:text;not null" json:"timeline"`
	Notes           *string `gorm:"type:text" json:"notes"`
	ProposalStatus  string  `gorm:"type:text;not null" json:"proposalStatus"` // Sent / Accepted / Rejected
}

func (Proposal) TableName() string {
	return "proposals"
}

type Payment struct {
	PipelineRecord
	TotalAmount   int     `gorm:"not null" json:"totalAmount"`
	AdvancePaid   int     `gorm:"not null;default:0" json:"advancePaid"`
	BalanceAmount int     `gorm:"not null" json:"balanceAmount"`
	PaymentMode   *string `gorm:"type:text" json:"paymentMode"`             // Bank Transfer / Cash / UPI / Cheque
	PaymentStatus string  `gorm:"type:text;not null" json:"paymentStatus"` // Pending / Partial / Completed
}

const PaymentCompleted = "Completed"

func (Payment) TableName() string {
	return "payments"
}

// BeforeSave keeps the balance derived from the stored amounts, whatever the
// caller sent.
func (p *Payment) BeforeSave(tx *gorm.DB) error {
	p.BalanceAmount = p.TotalAmount - p.AdvancePaid
	return nil
}

type Project struct {
	PipelineRecord
	ProjectStage         string     `gorm:"type:text;not null" json:"projectStage"` // Design / Development / Review / Completed
	LastUpdate           *string    `gorm:"type:text" json:"lastUpdate"`
	NextAction           *string    `gorm:"type:text" json:"nextAction"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
}

func (Project) TableName() string {
	return "projects"
}
