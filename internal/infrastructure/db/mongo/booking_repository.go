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

const collectionBookings = "bookings"

// BookingRepository implements ports.BookingRepository using MongoDB.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type bookingDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID `bson:"customer_id"`
	PropertyID    primitive.ObjectID `bson:"property_id"`
	CheckIn       time.Time          `bson:"check_in"`
	CheckOut      time.Time          `bson:"check_out"`
	Guests        int                `bson:"guests"`
	Nights        int                `bson:"nights"`
	PricePerNight float64            `bson:"price_per_night"`
	TaxesAndFees  float64            `bson:"taxes_and_fees"`
	TotalAmount   float64            `bson:"total_amount"`
	Status        string             `bson:"status"`
	Rating        *int               `bson:"rating,omitempty"`
	Review        string             `bson:"review,omitempty"`
	ReviewedAt    *time.Time         `bson:"reviewed_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:            d.ID.Hex(),
		CustomerID:    d.CustomerID.Hex(),
		PropertyID:    d.PropertyID.Hex(),
		CheckIn:       d.CheckIn.UTC(),
		CheckOut:      d.CheckOut.UTC(),
		Guests:        d.Guests,
		Nights:        d.Nights,
		PricePerNight: d.PricePerNight,
		TaxesAndFees:  d.TaxesAndFees,
		TotalAmount:   d.TotalAmount,
		Status:        domain.BookingStatus(d.Status),
		Rating:        d.Rating,
		Review:        d.Review,
		ReviewedAt:    d.ReviewedAt,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

// Create inserts a new booking document and returns it with the assigned id.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	customerID, err := objectID(b.CustomerID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	propertyID, err := objectID(b.PropertyID, domain.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}

	doc := bookingDoc{
		CustomerID:    customerID,
		PropertyID:    propertyID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		Nights:        b.Nights,
		PricePerNight: b.PricePerNight,
		TaxesAndFees:  b.TaxesAndFees,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := objectID(id, domain.ErrBookingNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	oid, err := objectID(customerID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"customer_id": oid})
}

func (r *BookingRepository) ListByProperties(ctx context.Context, propertyIDs []string) ([]*domain.Booking, error) {
	oids, err := objectIDs(propertyIDs, domain.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"property_id": bson.M{"$in": oids}})
}

// UpdateStatus performs a compare-and-set on the booking status. A filter on
// the expected current status guarantees that concurrent transitions cannot
// both succeed.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, at time.Time) error {
	oid, err := objectID(id, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(to), "updated_at": at.UTC()}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// The booking either vanished or its status moved underneath us.
		return domain.ErrInvalidTransition
	}
	return nil
}

// SetReviewMirror writes the denormalized review fields in one atomic update.
func (r *BookingRepository) SetReviewMirror(ctx context.Context, id string, rating int, text string, at time.Time) error {
	oid, err := objectID(id, domain.ErrBookingNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":      rating,
		"review":      text,
		"reviewed_at": at.UTC(),
		"updated_at":  at.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// CountOverlapping counts confirmed/completed bookings on the property whose
// date range overlaps [checkIn, checkOut).
func (r *BookingRepository) CountOverlapping(ctx context.Context, propertyID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
	propertyOID, err := objectID(propertyID, domain.ErrPropertyNotFound)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"property_id": propertyOID,
		"status":      bson.M{"$in": []string{string(domain.StatusConfirmed), string(domain.StatusCompleted)}},
		"check_in":    bson.M{"$lt": checkOut.UTC()},
		"check_out":   bson.M{"$gt": checkIn.UTC()},
	}
	if excludeID != "" {
		if excludeOID, err := objectID(excludeID, domain.ErrBookingNotFound); err == nil {
			filter["_id"] = bson.M{"$ne": excludeOID}
		}
	}

	return r.col.CountDocuments(ctx, filter)
}

// ListDueForCompletion returns confirmed bookings whose checkout has passed.
func (r *BookingRepository) ListDueForCompletion(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{
		"status":    string(domain.StatusConfirmed),
		"check_out": bson.M{"$lte": now.UTC()},
	})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bookings := []*domain.Booking{}
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, cur.Err()
}

// EnsureIndexes creates necessary indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "check_out", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// objectID parses a hex identifier, mapping malformed ids to the entity's
// not-found error so callers never see a parse failure.
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

func objectIDs(ids []string, notFound error) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := objectID(id, notFound)
		if err != nil {
			return nil, err
		}
		oids[i] = oid
	}
	return oids, nil
}
