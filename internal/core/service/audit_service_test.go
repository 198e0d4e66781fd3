package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

type stubAuditRepo struct {
	inserted []domain.AuditEvent
	err      error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, *event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := domain.AuditEvent{
		Action:    domain.AuditLoginSucceeded,
		Subject:   "2b1f8c1e-55aa-4b83-bb0d-3f5f6d1c9e10",
		Username:  "gustavo",
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Action != domain.AuditLoginSucceeded {
		t.Fatalf("unexpected inserts: %+v", repo.inserted)
	}
}

func TestAuditService_Process_RepoFailure(t *testing.T) {
	sentinel := errors.New("mongo down")
	svc := NewAuditService(&stubAuditRepo{err: sentinel}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.AuditEvent{Action: domain.AuditLoginFailed})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
