package usecase

import (
	"context"
	"strings"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

// Leads captures join requests and contact messages: persist, then notify.
type Leads struct {
	repo     LeadRepo
	notifier Notifier
}

func NewLeads(repo LeadRepo, notifier Notifier) *Leads {
	return &Leads{repo: repo, notifier: notifier}
}

func (l *Leads) SubmitJoin(ctx context.Context, j domain.JoinRequest) error {
	j.Name = strings.TrimSpace(j.Name)
	j.Phone = strings.TrimSpace(j.Phone)
	j.Email = strings.TrimSpace(j.Email)
	if j.Name == "" || j.Phone == "" || j.Email == "" || j.Package == "" {
		return invalid("All fields are required 🚫")
	}
	if err := l.repo.SaveJoinRequest(ctx, j); err != nil {
		return storeErr("save join request", err)
	}
	l.notifier.NotifyJoin(ctx, j)
	return nil
}

func (l *Leads) SubmitContact(ctx context.Context, m domain.ContactMessage) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
	if m.Name == "" || m.Phone == "" || m.Email == "" || m.Message == "" {
		return invalid("All fields are required 🚫")
	}
	if err := l.repo.SaveContactMessage(ctx, m); err != nil {
		return storeErr("save contact message", err)
	}
	l.notifier.NotifyContact(ctx, m)
	return nil
}
