package repositories

import (
	"context"
	"fmt"

	"unovation-backend/models"

	"gorm.io/gorm"
)

// Store bundles one Table per entity over a shared connection.
type Store struct {
	db *gorm.DB

	Clients      Table[models.Client]
	FollowUps    Table[models.FollowUp]
	Requirements Table[models.Requirement]
	Proposals    Table[models.Proposal]
	Payments     Table[models.Payment]
	Projects     Table[models.Project]

	ServiceInquiries        Table[models.ServiceInquiry]
	QuoteRequests           Table[models.QuoteRequest]
	ContactSubmissions      Table[models.ContactSubmission]
	NewsletterSubscriptions Table[models.NewsletterSubscription]
	JobApplications         Table[models.JobApplication]
	ProjectInterests        Table[models.ProjectInterest]
	LeadTracking            Table[models.LeadTracking]
	FeedbackSubmissions     Table[models.FeedbackSubmission]

	Admins   Table[models.Admin]
	Sessions Table[models.AdminSession]
}

func NewStore(db *gorm.DB) *Store {
	const (
		byDateAdded   = "date_added DESC"
		byDateCreated = "date_created DESC"
		byTimestamp   = "timestamp DESC"
	)
	return &Store{
		db: db,

		Clients:      newTable[models.Client](db, byDateAdded),
		FollowUps:    newTable[models.FollowUp](db, byDateCreated),
		Requirements: newTable[models.Requirement](db, byDateCreated),
		Proposals:    newTable[models.Proposal](db, byDateCreated),
		Payments:     newTable[models.Payment](db, byDateCreated),
		Projects:     newTable[models.Project](db, byDateCreated),

		ServiceInquiries:        newTable[models.ServiceInquiry](db, byTimestamp),
		QuoteRequests:           newTable[models.QuoteRequest](db, byTimestamp),
		ContactSubmissions:      newTable[models.ContactSubmission](db, byTimestamp),
		NewsletterSubscriptions: newTable[models.NewsletterSubscription](db, byTimestamp),
		JobApplications:         newTable[models.JobApplication](db, byTimestamp),
		ProjectInterests:        newTable[models.ProjectInterest](db, byTimestamp),
		LeadTracking:            newTable[models.LeadTracking](db, byTimestamp),
		FeedbackSubmissions:     newTable[models.FeedbackSubmission](db, byTimestamp),

		Admins:   newTable[models.Admin](db, "created_at ASC"),
		Sessions: newTable[models.AdminSession](db, "created_at DESC"),
	}
}

// Migrate creates or updates every table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(models.All()...)
}

// Ping checks that the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// DeleteClient removes a client together with its pipeline records.
// Deleting an unknown id is not an error.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		children := []interface{}{
			&models.FollowUp{},
			&models.Requirement{},
			&models.Proposal{},
			&models.Payment{},
			&models.Project{},
		}
		for _, child := range children {
			if err := tx.Where("client_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("delete client children: %w", err)
			}
		}
		if err := tx.Where("id = ?", id).Delete(&models.Client{}).Error; err != nil {
			return fmt.Errorf("delete client: %w", err)
		}
		return nil
	})
}

// ConvertInquiry inserts a new client built from a service inquiry. The
// inquiry itself is left as it was. Returns (nil, nil) when the inquiry
// does not exist.
func (s *Store) ConvertInquiry(ctx context.Context, inquiryID string) (*models.Client, error) {
	inquiry, err := s.ServiceInquiries.Get(ctx, inquiryID)
	if err != nil || inquiry == nil {
		return nil, err
	}

	email := inquiry.Email
	client := &models.Client{
		Name:          inquiry.Name,
		Phone:         "",
		Email:         &email,
		ServiceNeeded: inquiry.Service,
		Source:        models.SourceInquiry,
	}
	if err := s.Clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("convert inquiry: %w", err)
	}
	return client, nil
}
