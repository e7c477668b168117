package donationstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/normalize"
	"lifelink/internal/domain/models"
)

// Store owns the donation_requests collection and enforces the request
// lifecycle at the data layer.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donation_requests")}
}

// Filter narrows a List call. Zero values mean "no constraint".
type Filter struct {
	RequesterEmail string
	Status         string
	Limit          int64
}

// Create publishes a new request. The lifecycle starts at pending no
// matter what the caller sent, and donor attribution is cleared so a
// request can never be born claimed.
func (s *Store) Create(ctx context.Context, req models.DonationRequest) (models.DonationRequest, error) {
	req.ID = primitive.NewObjectID()
	req.RequesterEmail = normalize.Email(req.RequesterEmail)
	req.BloodGroup = normalize.BloodGroup(req.BloodGroup)
	req.Status = models.RequestPending
	req.DonorName = ""
	req.DonorEmail = ""
	req.DonatedAt = nil
	req.CreatedAt = time.Now().UTC()

	if req.RequesterEmail == "" {
		return models.DonationRequest{}, apierr.New(apierr.InvalidInput, "requester email is required")
	}
	if req.RecipientName == "" {
		return models.DonationRequest{}, apierr.New(apierr.InvalidInput, "recipient name is required")
	}
	if req.BloodGroup == "" {
		return models.DonationRequest{}, apierr.New(apierr.InvalidInput, "blood group is required")
	}

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.DonationRequest{}, err
	}
	return req, nil
}

// List returns requests newest first, optionally filtered by requester
// email and/or lifecycle status, optionally capped at Limit documents.
func (s *Store) List(ctx context.Context, f Filter) ([]models.DonationRequest, error) {
	query := bson.M{}
	if f.RequesterEmail != "" {
		query["requester_email"] = normalize.Email(f.RequesterEmail)
	}
	if f.Status != "" {
		status := normalize.Status(f.Status)
		if !models.ValidRequestStatus(status) {
			return nil, apierr.New(apierr.InvalidInput, "unknown status filter")
		}
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reqs := []models.DonationRequest{}
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// GetByID loads one request.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error) {
	var req models.DonationRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apierr.Wrap(apierr.NotFound, "donation request not found", err)
		}
		return nil, err
	}
	return &req, nil
}

// Claim performs the pending -> inprogress transition and records donor
// attribution in one conditional update. The filter matches only while
// the request is still pending, so of N concurrent claimers exactly one
// wins; the rest see Conflict. A claim of a missing id is NotFound.
func (s *Store) Claim(ctx context.Context, id primitive.ObjectID, donorName, donorEmail string) (*models.DonationRequest, error) {
	donorEmail = normalize.Email(donorEmail)
	if donorEmail == "" {
		return nil, apierr.New(apierr.InvalidInput, "donor email is required")
	}
	donorName = normalize.Name(donorName)
	if donorName == "" {
		donorName = "Anonymous"
	}

	now := time.Now().UTC()
	var req models.DonationRequest
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": models.RequestPending},
		bson.M{"$set": bson.M{
			"status":      models.RequestInProgress,
			"donor_name":  donorName,
			"donor_email": donorEmail,
			"donated_at":  now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)

	if err == nil {
		return &req, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// The conditional update missed: either the request does not exist or
	// someone else already moved it out of pending. Disambiguate with a
	// plain read so the caller gets the right error.
	if _, getErr := s.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, apierr.New(apierr.Conflict, "donation request is no longer pending")
}

// editableFields are the keys an Update may touch. The id, creation
// time, requester identity, and donor attribution are immutable through
// the edit path; donor fields change only via Claim.
var editableFields = map[string]bool{
	"requester_name": true,
	"recipient_name": true,
	"district":       true,
	"upazila":        true,
	"hospital":       true,
	"address":        true,
	"blood_group":    true,
	"donation_date":  true,
	"donation_time":  true,
	"message":        true,
	"status":         true,
}

// Update applies a partial edit to a request. Immutable keys are
// dropped. A status value, when present, may only move the request to a
// terminal state: re-opening to pending would leave stale donor
// attribution behind and make the document claimable a second time, and
// setting inprogress directly would forge a claim with no donor.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	set := bson.M{}
	for k, v := range fields {
		if !editableFields[k] {
			continue
		}
		set[k] = v
	}
	if raw, ok := set["status"]; ok {
		status, _ := raw.(string)
		status = normalize.Status(status)
		if status != models.RequestDone && status != models.RequestCanceled {
			return apierr.New(apierr.InvalidInput, `status may only be set to "done" or "canceled"`)
		}
		set["status"] = status
	}
	if bg, ok := set["blood_group"].(string); ok {
		set["blood_group"] = normalize.BloodGroup(bg)
	}
	if len(set) == 0 {
		return apierr.New(apierr.InvalidInput, "no updatable fields supplied")
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apierr.New(apierr.NotFound, "donation request not found")
	}
	return nil
}

// Delete removes a request.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apierr.New(apierr.NotFound, "donation request not found")
	}
	return nil
}
