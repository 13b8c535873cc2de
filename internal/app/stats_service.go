package app

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/analytics"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/company"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/job"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/user"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

// StatsService backs the admin dashboard and analytics page.
type StatsService struct {
	applications application.Repository
	jobs         job.Repository
	companies    company.Repository
	users        user.Repository
	analytics    analytics.Repository
	admins       security.AdminPolicy
}

func NewStatsService(applications application.Repository, jobs job.Repository, companies company.Repository, users user.Repository, analyticsRepo analytics.Repository, admins security.AdminPolicy) *StatsService {
	return &StatsService{applications: applications, jobs: jobs, companies: companies, users: users, analytics: analyticsRepo, admins: admins}
}

type DashboardStats struct {
	TotalJobs            int                        `json:"total_jobs"`
	ActiveJobs           int                        `json:"active_jobs"`
	TotalCompanies       int                        `json:"total_companies"`
	TotalUsers           int                        `json:"total_users"`
	TotalApplications    int                        `json:"total_applications"`
	ApplicationsByStatus map[application.Status]int `json:"applications_by_status"`
	ApplicationsThisWeek int                        `json:"applications_this_week"`
}

func (s *StatsService) Dashboard(ctx context.Context, actorEmail string) (*DashboardStats, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	stats := &DashboardStats{}
	var err error
	if stats.TotalJobs, err = s.jobs.Count(ctx, false); err != nil {
		return nil, err
	}
	if stats.ActiveJobs, err = s.jobs.Count(ctx, true); err != nil {
		return nil, err
	}
	if stats.TotalCompanies, err = s.companies.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	counts, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.ApplicationsByStatus = counts
	for _, count := range counts {
		stats.TotalApplications += count
	}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	if stats.ApplicationsThisWeek, err = s.analytics.CountSince(ctx, "application.created", weekAgo); err != nil {
		return nil, err
	}
	return stats, nil
}
