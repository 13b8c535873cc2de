package app

import (
	"context"
	"sync"
	"testing"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/settings"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type fakeSettingsRepo struct {
	mu  sync.Mutex
	cfg settings.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := r.cfg
	return &copied, nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, s settings.Settings) (*settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = s
	copied := s
	return &copied, nil
}

func TestSettingsServiceGet_HidesPassword(t *testing.T) {
	cfg := settings.Defaults()
	cfg.SMTPPassword = "stored-secret"
	repo := &fakeSettingsRepo{cfg: cfg}
	service := NewSettingsService(repo, security.DefaultAdminPolicy())

	if _, err := service.Get(context.Background(), outsiderEmail); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	current, err := service.Get(context.Background(), adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if current.SMTPPassword != "" {
		t.Fatal("expected smtp password to be blanked")
	}
}

func TestSettingsServiceUpdate_BlankPasswordKeepsStored(t *testing.T) {
	cfg := settings.Defaults()
	cfg.SMTPPassword = "stored-secret"
	repo := &fakeSettingsRepo{cfg: cfg}
	service := NewSettingsService(repo, security.DefaultAdminPolicy())

	next := settings.Defaults()
	next.PortalName = "FortisLedger Careers"
	next.SMTPPassword = ""
	updated, err := service.Update(context.Background(), next, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.SMTPPassword != "" {
		t.Fatal("expected response password to be blanked")
	}

	stored, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("expected stored settings, got %v", err)
	}
	if stored.SMTPPassword != "stored-secret" {
		t.Fatalf("expected stored password kept, got %q", stored.SMTPPassword)
	}
	if stored.PortalName != "FortisLedger Careers" {
		t.Fatalf("expected portal name updated, got %q", stored.PortalName)
	}
}

func TestSettingsServiceUpdate_NewPasswordReplaces(t *testing.T) {
	cfg := settings.Defaults()
	cfg.SMTPPassword = "stored-secret"
	repo := &fakeSettingsRepo{cfg: cfg}
	service := NewSettingsService(repo, security.DefaultAdminPolicy())

	next := settings.Defaults()
	next.SMTPPassword = "rotated"
	if _, err := service.Update(context.Background(), next, adminEmail); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	stored, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("expected stored settings, got %v", err)
	}
	if stored.SMTPPassword != "rotated" {
		t.Fatalf("expected rotated password, got %q", stored.SMTPPassword)
	}
}
