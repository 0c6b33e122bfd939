package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

const collectionReviews = "reviews"

// ReviewRepository implements ports.ReviewRepository using MongoDB. The
// unique index on booking_id is the enforcement mechanism for
// one-review-per-booking; a duplicate key error surfaces as
// domain.ErrDuplicateReview.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

type reviewDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BookingID  primitive.ObjectID `bson:"booking_id"`
	CustomerID primitive.ObjectID `bson:"customer_id"`
	PropertyID primitive.ObjectID `bson:"property_id"`
	Rating     int                `bson:"rating"`
	Text       string             `bson:"text,omitempty"`
	IsVerified bool               `bson:"is_verified"`
	Helpful    int                `bson:"helpful"`
	Reported   bool               `bson:"reported"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:         d.ID.Hex(),
		BookingID:  d.BookingID.Hex(),
		CustomerID: d.CustomerID.Hex(),
		PropertyID: d.PropertyID.Hex(),
		Rating:     d.Rating,
		Text:       d.Text,
		IsVerified: d.IsVerified,
		Helpful:    d.Helpful,
		Reported:   d.Reported,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

// Create inserts a new review. The unique booking_id index makes this the
// compare-and-set that closes the concurrent double-review race.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	bookingID, err := objectID(rv.BookingID, domain.ErrBookingNotFound)
	if err != nil {
		return nil, err
	}
	customerID, err := objectID(rv.CustomerID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	propertyID, err := objectID(rv.PropertyID, domain.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}

	doc := reviewDoc{
		BookingID:  bookingID,
		CustomerID: customerID,
		PropertyID: propertyID,
		Rating:     rv.Rating,
		Text:       rv.Text,
		IsVerified: rv.IsVerified,
		CreatedAt:  rv.CreatedAt,
		UpdatedAt:  rv.UpdatedAt,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateReview
		}
		return nil, err
	}

	created := *rv
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := objectID(id, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ReviewRepository) FindByBookingID(ctx context.Context, bookingID string) (*domain.Review, error) {
	oid, err := objectID(bookingID, domain.ErrBookingNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"booking_id": oid})
}

func (r *ReviewRepository) findOne(ctx context.Context, filter bson.M) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// ListByProperties returns every review on the given properties.
func (r *ReviewRepository) ListByProperties(ctx context.Context, propertyIDs []string) ([]*domain.Review, error) {
	oids, err := objectIDs(propertyIDs, domain.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"property_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeReviews(ctx, cur)
}

// ListPageByProperties returns one page of reviews, newest first. The _id
// sort key breaks creation-time ties deterministically.
func (r *ReviewRepository) ListPageByProperties(ctx context.Context, propertyIDs []string, page, limit int) ([]*domain.Review, int64, error) {
	oids, err := objectIDs(propertyIDs, domain.ErrPropertyNotFound)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"property_id": bson.M{"$in": oids}}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	reviews, err := decodeReviews(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// IncrementHelpful atomically bumps the helpful counter.
func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id string) (*domain.Review, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$inc": bson.M{"helpful": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
}

// MarkReported atomically sets the reported flag.
func (r *ReviewRepository) MarkReported(ctx context.Context, id string) (*domain.Review, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{"reported": true, "updated_at": time.Now().UTC()},
	})
}

func (r *ReviewRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Review, error) {
	oid, err := objectID(id, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc reviewDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func decodeReviews(ctx context.Context, cur *mongo.Cursor) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, doc.toDomain())
	}
	return reviews, cur.Err()
}

// EnsureIndexes creates necessary indexes on the reviews collection,
// including the unique constraint on the booking reference.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
