package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

func TestSubmitJoinSavesAndNotifies(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := &recordingNotifier{}
	leads := NewLeads(repo, notifier)

	err := leads.SubmitJoin(context.Background(), domain.JoinRequest{
		Name:    "  Sipho ",
		Phone:   "0731112222",
		Email:   "sipho@example.com",
		Package: "Start Your Journey Combo",
	})
	require.NoError(t, err)

	require.Len(t, repo.joins, 1)
	assert.Equal(t, "Sipho", repo.joins[0].Name, "whitespace is trimmed before save")
	require.Len(t, notifier.joins, 1)
	assert.Equal(t, "Start Your Journey Combo", notifier.joins[0].Package)
}

func TestSubmitJoinRejectsMissingFields(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := &recordingNotifier{}
	leads := NewLeads(repo, notifier)

	err := leads.SubmitJoin(context.Background(), domain.JoinRequest{
		Name:  "Sipho",
		Phone: "0731112222",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, repo.joins)
	assert.Empty(t, notifier.joins)
}

func TestSubmitJoinStoreFailureSkipsNotify(t *testing.T) {
	repo := &fakeLeadRepo{fail: errors.New("unavailable")}
	notifier := &recordingNotifier{}
	leads := NewLeads(repo, notifier)

	err := leads.SubmitJoin(context.Background(), domain.JoinRequest{
		Name:    "Sipho",
		Phone:   "0731112222",
		Email:   "sipho@example.com",
		Package: "Business Builder Pack",
	})
	require.Error(t, err)
	assert.Empty(t, notifier.joins)
}

func TestSubmitContactSavesAndNotifies(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := &recordingNotifier{}
	leads := NewLeads(repo, notifier)

	err := leads.SubmitContact(context.Background(), domain.ContactMessage{
		Name:    "Lerato",
		Phone:   "0823334444",
		Email:   "lerato@example.com",
		Message: " Do you deliver to Durban? ",
	})
	require.NoError(t, err)

	require.Len(t, repo.contacts, 1)
	assert.Equal(t, "Do you deliver to Durban?", repo.contacts[0].Message)
	assert.Len(t, notifier.contacts, 1)
}

func TestSubmitContactRejectsEmptyMessage(t *testing.T) {
	repo := &fakeLeadRepo{}
	notifier := &recordingNotifier{}
	leads := NewLeads(repo, notifier)

	err := leads.SubmitContact(context.Background(), domain.ContactMessage{
		Name:    "Lerato",
		Phone:   "0823334444",
		Email:   "lerato@example.com",
		Message: "   ",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, repo.contacts)
}
