package repo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

const (
	joinRequestsCollection = "join_requests"
	contactsCollection     = "contacts"
)

// FirestoreLeadRepo persists lead-capture submissions.
type FirestoreLeadRepo struct {
	client *firestore.Client
	now    func() time.Time
}

func NewFirestoreLeadRepo(client *firestore.Client) *FirestoreLeadRepo {
	return &FirestoreLeadRepo{client: client, now: time.Now}
}

type joinRequestDoc struct {
	Name      string    `firestore:"name"`
	Phone     string    `firestore:"phone"`
	Email     string    `firestore:"email"`
	Package   string    `firestore:"package"`
	Timestamp time.Time `firestore:"timestamp"`
}

type contactMessageDoc struct {
	Name      string    `firestore:"name"`
	Phone     string    `firestore:"phone"`
	Email     string    `firestore:"email"`
	Message   string    `firestore:"message"`
	Timestamp time.Time `firestore:"timestamp"`
}

func (r *FirestoreLeadRepo) SaveJoinRequest(ctx context.Context, j domain.JoinRequest) error {
	_, err := r.client.Collection(joinRequestsCollection).NewDoc().Set(ctx, joinRequestDoc{
		Name:      j.Name,
		Phone:     j.Phone,
		Email:     j.Email,
		Package:   j.Package,
		Timestamp: r.now().UTC(),
	})
	return err
}

func (r *FirestoreLeadRepo) SaveContactMessage(ctx context.Context, m domain.ContactMessage) error {
	_, err := r.client.Collection(contactsCollection).NewDoc().Set(ctx, contactMessageDoc{
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Message:   m.Message,
		Timestamp: r.now().UTC(),
	})
	return err
}

var _ usecase.LeadRepo = (*FirestoreLeadRepo)(nil)
