package repo

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

// deleteGone reports whether a delete failed only because the document was
// already gone, which happens when a checkout clear races a manual remove.
func deleteGone(err error) bool {
	return status.Code(err) == codes.NotFound
}

const cartsCollection = "carts"

// FirestoreCartRepo stores one document per cart line in the "carts"
// collection. Document order on List is whatever Firestore returns, not
// insertion order.
type FirestoreCartRepo struct {
	client *firestore.Client
}

func NewFirestoreCartRepo(client *firestore.Client) *FirestoreCartRepo {
	return &FirestoreCartRepo{client: client}
}

func (r *FirestoreCartRepo) col() *firestore.CollectionRef {
	return r.client.Collection(cartsCollection)
}

type cartLineDoc struct {
	Name     string `firestore:"name"`
	Amount   int64  `firestore:"amount"`
	Quantity int    `firestore:"quantity"`
	Total    int64  `firestore:"total"`
}

func (r *FirestoreCartRepo) Add(ctx context.Context, line domain.CartLine) error {
	_, err := r.col().NewDoc().Set(ctx, cartLineDoc{
		Name:     line.Name,
		Amount:   line.AmountCents,
		Quantity: line.Quantity,
		Total:    line.TotalCents,
	})
	return err
}

// RemoveByName deletes every document whose name matches exactly. Deletes
// run one by one; a failure mid-loop leaves the earlier deletes in place.
func (r *FirestoreCartRepo) RemoveByName(ctx context.Context, name string) (int, error) {
	it := r.col().Where("name", "==", name).Documents(ctx)
	defer it.Stop()

	var refs []*firestore.DocumentRef
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		refs = append(refs, snap.Ref)
	}

	removed := 0
	for _, ref := range refs {
		if _, err := ref.Delete(ctx); err != nil && !deleteGone(err) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (r *FirestoreCartRepo) List(ctx context.Context) ([]domain.CartLine, error) {
	it := r.col().Documents(ctx)
	defer it.Stop()

	var lines []domain.CartLine
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc cartLineDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		// A document written without a total decodes to zero; the domain
		// falls back to the unit amount when summing.
		lines = append(lines, domain.CartLine{
			Name:        doc.Name,
			AmountCents: doc.Amount,
			Quantity:    doc.Quantity,
			TotalCents:  doc.Total,
		})
	}
	return lines, nil
}

func (r *FirestoreCartRepo) Clear(ctx context.Context) error {
	it := r.col().Documents(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := snap.Ref.Delete(ctx); err != nil && !deleteGone(err) {
			return err
		}
	}
}

var _ usecase.CartRepo = (*FirestoreCartRepo)(nil)
