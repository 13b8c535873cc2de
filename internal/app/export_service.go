package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/company"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/job"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/profile"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/user"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportService produces the admin data dumps. Applications are joined
// with their job, company, and applicant profile in memory, matching the
// column set of the portal's original export.
type ExportService struct {
	applications application.Repository
	jobs         job.Repository
	companies    company.Repository
	profiles     profile.Repository
	users        user.Repository
	admins       security.AdminPolicy
}

func NewExportService(applications application.Repository, jobs job.Repository, companies company.Repository, profiles profile.Repository, users user.Repository, admins security.AdminPolicy) *ExportService {
	return &ExportService{applications: applications, jobs: jobs, companies: companies, profiles: profiles, users: users, admins: admins}
}

type ApplicationExportRow struct {
	ID                common.UUID `json:"id"`
	JobTitle          string      `json:"job_title"`
	CompanyName       string      `json:"company_name"`
	ApplicantName     string      `json:"applicant_name"`
	ApplicantEmail    string      `json:"applicant_email"`
	ApplicantPhone    string      `json:"applicant_phone"`
	ApplicantLocation string      `json:"applicant_location"`
	Status            string      `json:"status"`
	AppliedDate       string      `json:"applied_date"`
	CoverLetterLength int         `json:"cover_letter_length"`
	HasResume         bool        `json:"has_resume"`
	HasPortfolio      bool        `json:"has_portfolio"`
	ResumeURL         string      `json:"resume_url"`
	PortfolioURL      string      `json:"portfolio_url"`
	AdditionalInfo    string      `json:"additional_info"`
	Notes             string      `json:"notes"`
}

func (s *ExportService) ExportApplications(ctx context.Context, format string, actorEmail string) ([]byte, string, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, "", common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	apps, err := s.applications.List(ctx, "")
	if err != nil {
		return nil, "", err
	}
	rows := make([]ApplicationExportRow, 0, len(apps))
	for _, app := range apps {
		row := ApplicationExportRow{
			ID:                app.ID,
			JobTitle:          "N/A",
			CompanyName:       "N/A",
			ApplicantName:     "N/A",
			ApplicantEmail:    "N/A",
			ApplicantPhone:    "N/A",
			ApplicantLocation: "N/A",
			Status:            string(app.Status),
			AppliedDate:       app.AppliedAt.Format("2006-01-02"),
			CoverLetterLength: len(app.CoverLetter),
			HasResume:         app.ResumeURL != "",
			HasPortfolio:      app.PortfolioURL != "",
			ResumeURL:         app.ResumeURL,
			PortfolioURL:      app.PortfolioURL,
			AdditionalInfo:    app.AdditionalInfo,
			Notes:             app.Notes,
		}
		if posting, err := s.jobs.GetByID(ctx, app.JobID); err == nil {
			row.JobTitle = posting.Title
			if comp, err := s.companies.GetByID(ctx, posting.CompanyID); err == nil {
				row.CompanyName = comp.Name
			}
		}
		if candidate, err := s.profiles.GetByUserID(ctx, app.CandidateID); err == nil {
			row.ApplicantName = candidate.FullName
			row.ApplicantEmail = candidate.Email
			if candidate.Phone != "" {
				row.ApplicantPhone = candidate.Phone
			}
			if candidate.Location != "" {
				row.ApplicantLocation = candidate.Location
			}
		}
		rows = append(rows, row)
	}
	return s.encode(format, rows, applicationCSVHeader, func(w *csv.Writer) error {
		for _, row := range rows {
			record := []string{
				row.ID.String(), row.JobTitle, row.CompanyName, row.ApplicantName, row.ApplicantEmail,
				row.ApplicantPhone, row.ApplicantLocation, row.Status, row.AppliedDate,
				strconv.Itoa(row.CoverLetterLength), strconv.FormatBool(row.HasResume), strconv.FormatBool(row.HasPortfolio),
				row.ResumeURL, row.PortfolioURL, row.AdditionalInfo, row.Notes,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

var applicationCSVHeader = []string{"id", "job_title", "company_name", "applicant_name", "applicant_email", "applicant_phone", "applicant_location", "status", "applied_date", "cover_letter_length", "has_resume", "has_portfolio", "resume_url", "portfolio_url", "additional_info", "notes"}

func (s *ExportService) ExportJobs(ctx context.Context, format string, actorEmail string) ([]byte, string, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, "", common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	header := []string{"id", "title", "company_id", "location", "employment_type", "experience_level", "is_remote", "is_active", "created_at"}
	return s.encode(format, jobs, header, func(w *csv.Writer) error {
		for _, j := range jobs {
			record := []string{
				j.ID.String(), j.Title, j.CompanyID.String(), j.Location, j.EmploymentType, j.ExperienceLevel,
				strconv.FormatBool(j.IsRemote), strconv.FormatBool(j.IsActive), j.CreatedAt.Format("2006-01-02"),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ExportService) ExportUsers(ctx context.Context, format string, actorEmail string) ([]byte, string, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, "", common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	header := []string{"id", "email", "created_at"}
	return s.encode(format, users, header, func(w *csv.Writer) error {
		for _, u := range users {
			if err := w.Write([]string{u.ID.String(), u.Email, u.CreatedAt.Format("2006-01-02")}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ExportService) encode(format string, payload any, csvHeader []string, writeRows func(*csv.Writer) error) ([]byte, string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, "", common.NewError(common.CodeInternal, "failed to encode export", err)
		}
		return data, "application/json", nil
	case FormatCSV, "":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(csvHeader); err != nil {
			return nil, "", common.NewError(common.CodeInternal, "failed to encode export", err)
		}
		if err := writeRows(w); err != nil {
			return nil, "", common.NewError(common.CodeInternal, "failed to encode export", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", common.NewError(common.CodeInternal, "failed to encode export", err)
		}
		return buf.Bytes(), "text/csv", nil
	default:
		return nil, "", common.NewValidationError("invalid export format", map[string]string{"format": "format must be csv or json"})
	}
}
