package repositories

import (
	"context"
	"fmt"
	"time"

	"unovation-backend/models"
	"unovation-backend/utils"

	"gorm.io/gorm"
)

// Dashboard is the pipeline summary shown on the CRM landing page.
type Dashboard struct {
	TotalClients       int64            `json:"totalClients"`
	ClientsBySource    map[string]int64 `json:"clientsBySource"`
	FollowUpsDue       int64            `json:"followUpsDue"`
	ProposalsByStatus  map[string]int64 `json:"proposalsByStatus"`
	OutstandingBalance int64            `json:"outstandingBalance"`
	ProjectsByStage    map[string]int64 `json:"projectsByStage"`
	RecentClients      []models.Client  `json:"recentClients"`
}

type groupCount struct {
	Bucket string
	Total  int64
}

func (s *Store) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	db := s.db.WithContext(ctx)
	out := &Dashboard{}

	if err := db.Model(&models.Client{}).Count(&out.TotalClients).Error; err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	var err error
	if out.ClientsBySource, err = countBy(db.Model(&models.Client{}), "source"); err != nil {
		return nil, err
	}
	if out.ProposalsByStatus, err = countBy(db.Model(&models.Proposal{}), "proposal_status"); err != nil {
		return nil, err
	}
	if out.ProjectsByStage, err = countBy(db.Model(&models.Project{}), "project_stage"); err != nil {
		return nil, err
	}

	// Due today or overdue
	if err := db.Model(&models.FollowUp{}).
		Where("next_follow_up_date IS NOT NULL AND next_follow_up_date <= ?", utils.EndOfDay(now)).
		Count(&out.FollowUpsDue).Error; err != nil {
		return nil, fmt.Errorf("count follow-ups due: %w", err)
	}

	if err := db.Model(&models.Payment{}).
		Where("payment_status <> ?", models.PaymentCompleted).
		Select("COALESCE(SUM(balance_amount), 0)").
		Scan(&out.OutstandingBalance).Error; err != nil {
		return nil, fmt.Errorf("sum outstanding balance: %w", err)
	}

	out.RecentClients = []models.Client{}
	if err := db.Order("date_added DESC").Limit(5).Find(&out.RecentClients).Error; err != nil {
		return nil, fmt.Errorf("recent clients: %w", err)
	}

	return out, nil
}

func countBy(q *gorm.DB, column string) (map[string]int64, error) {
	var rows []groupCount
	if err := q.Select(column + " AS bucket, COUNT(*) AS total").Group(column).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Bucket] = r.Total
	}
	return out, nil
}
