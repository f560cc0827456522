package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no
	// database connection so the prog must crash here as the service cannot continue
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash
	pingContext, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb database
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
	Client() *mongo.Client
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the
// backend driver
type MongoService struct {
	db                    MongoDatabaseInterface
	ReturnsCollection     string
	ReturnItemsCollection string
	OrdersCollection      string
	InventoryCollection   string
	SequencesCollection   string
}

// NewDAOService returns a new MongoService using the provided config
func NewDAOService(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                    database,
		ReturnsCollection:     cfg.ReturnsCollection,
		ReturnItemsCollection: cfg.ReturnItemsCollection,
		OrdersCollection:      cfg.OrdersCollection,
		InventoryCollection:   cfg.InventoryCollection,
		SequencesCollection:   cfg.SequencesCollection,
	}
}

// withTransaction runs fn inside a single mongo session transaction. Every
// write fn performs must go through the supplied SessionContext so the unit
// commits or aborts as a whole.
func (m *MongoService) withTransaction(fn func(sc mongo.SessionContext) error) error {
	ctx := context.Background()

	session, err := m.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("error starting mongodb session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})

	return err
}

// CreateReturnRequest writes a new return request and its items to the DB as
// one transactional unit
func (m *MongoService) CreateReturnRequest(returnRequest *models.ReturnRequestResourceDB, items []models.ReturnItemResourceDB) error {
	return m.withTransaction(func(sc mongo.SessionContext) error {
		_, err := m.db.Collection(m.ReturnsCollection).InsertOne(sc, returnRequest)
		if err != nil {
			return err
		}

		itemDocuments := make([]interface{}, len(items))
		for i := range items {
			itemDocuments[i] = items[i]
		}

		_, err = m.db.Collection(m.ReturnItemsCollection).InsertMany(sc, itemDocuments)
		return err
	})
}

// GetReturnRequest gets a return request from the DB
// If the request is not found in the DB, return nil
func (m *MongoService) GetReturnRequest(id string) (*models.ReturnRequestResourceDB, error) {
	var resource models.ReturnRequestResourceDB

	collection := m.db.Collection(m.ReturnsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetReturnItems gets all items belonging to a return request
func (m *MongoService) GetReturnItems(returnRequestID string) ([]models.ReturnItemResourceDB, error) {
	collection := m.db.Collection(m.ReturnItemsCollection)

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := collection.Find(context.Background(), bson.M{"return_request_id": returnRequestID}, findOptions)
	if err != nil {
		return nil, err
	}

	items := []models.ReturnItemResourceDB{}
	err = cursor.All(context.Background(), &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ListReturnRequests gets the return requests matching the supplied filter,
// most recent first
func (m *MongoService) ListReturnRequests(filter models.ReturnRequestFilter) ([]models.ReturnRequestResourceDB, error) {
	query := bson.M{}

	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.OrderID != "" {
		query["order_id"] = filter.OrderID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	// a product-scoped listing resolves the owning requests through the items
	// collection first
	if len(filter.ProductIDs) > 0 {
		requestIDs, err := m.db.Collection(m.ReturnItemsCollection).Distinct(
			context.Background(),
			"return_request_id",
			bson.M{"product_id": bson.M{"$in": filter.ProductIDs}},
		)
		if err != nil {
			return nil, err
		}
		if len(requestIDs) == 0 {
			return []models.ReturnRequestResourceDB{}, nil
		}
		query["_id"] = bson.M{"$in": requestIDs}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	cursor, err := m.db.Collection(m.ReturnsCollection).Find(context.Background(), query, findOptions)
	if err != nil {
		return nil, err
	}

	returnRequests := []models.ReturnRequestResourceDB{}
	err = cursor.All(context.Background(), &returnRequests)
	if err != nil {
		return nil, err
	}

	return returnRequests, nil
}

// UpdateReturnRequest patches a return request, its targeted items and any
// resulting inventory increments as one transactional unit. A missing request,
// item or inventory record aborts the whole unit.
func (m *MongoService) UpdateReturnRequest(id string, patch *models.ReturnRequestPatchDB, itemPatches []models.ReturnItemPatchDB, adjustments []models.InventoryAdjustmentDB) error {
	return m.withTransaction(func(sc mongo.SessionContext) error {
		patchUpdate := bson.M{}

		// Patch only these fields
		if patch.Status != "" {
			patchUpdate["status"] = patch.Status
		}
		if patch.StaffComments != "" {
			patchUpdate["staff_comments"] = patch.StaffComments
		}
		if patch.ReviewedBy != "" {
			patchUpdate["reviewed_by"] = patch.ReviewedBy
		}
		if patch.ReviewedAt != nil {
			patchUpdate["reviewed_at"] = patch.ReviewedAt
		}
		if patch.Etag != "" {
			patchUpdate["etag"] = patch.Etag
		}

		if len(patchUpdate) > 0 {
			result, err := m.db.Collection(m.ReturnsCollection).UpdateByID(sc, id, bson.M{"$set": patchUpdate})
			if err != nil {
				return err
			}
			if result.MatchedCount == 0 {
				return fmt.Errorf("return request %s: %w", id, ErrNotFound)
			}
		}

		for _, itemPatch := range itemPatches {
			update := itemPatchUpdate(itemPatch)
			if len(update) == 0 {
				continue
			}

			result, err := m.db.Collection(m.ReturnItemsCollection).UpdateOne(
				sc,
				bson.M{"_id": itemPatch.ItemID, "return_request_id": id},
				bson.M{"$set": update},
			)
			if err != nil {
				return err
			}
			if result.MatchedCount == 0 {
				return fmt.Errorf("return item %s: %w", itemPatch.ItemID, ErrNotFound)
			}
		}

		for _, adjustment := range adjustments {
			result, err := m.db.Collection(m.InventoryCollection).UpdateByID(
				sc,
				adjustment.ProductID,
				bson.M{
					"$inc": bson.M{"quantity": adjustment.Delta},
					"$set": bson.M{"updated_at": time.Now().Truncate(time.Millisecond)},
				},
			)
			if err != nil {
				return err
			}
			if result.MatchedCount == 0 {
				return fmt.Errorf("inventory record %s: %w", adjustment.ProductID, ErrNotFound)
			}
		}

		return nil
	})
}

func itemPatchUpdate(itemPatch models.ReturnItemPatchDB) bson.M {
	update := bson.M{}

	if itemPatch.QuantityReceived != nil {
		update["quantity_received"] = itemPatch.QuantityReceived
		update["received_at"] = itemPatch.ReceivedAt
	}
	if itemPatch.Condition != "" {
		update["condition"] = itemPatch.Condition
		update["condition_set_by"] = itemPatch.ConditionSetBy
		update["condition_set_at"] = itemPatch.ConditionSetAt
	}
	if itemPatch.Disposition != "" {
		update["disposition"] = itemPatch.Disposition
		update["disposition_set_by"] = itemPatch.DispositionSetBy
		update["disposition_set_at"] = itemPatch.DispositionSetAt
	}
	if itemPatch.TrackingNumber != "" {
		update["tracking_number"] = itemPatch.TrackingNumber
	}
	if itemPatch.ShippingLabelRef != "" {
		update["shipping_label_ref"] = itemPatch.ShippingLabelRef
	}

	return update
}

// resolutionClaimFilter only matches a return request that has no resolution
// yet, a failed resolution, or the same non-completed resolution being
// retried. A non-match means another resolution is active, which surfaces as
// ErrResolutionConflict and keeps at most one non-failed resolution per
// request.
func resolutionClaimFilter(returnRequestID, resolutionID string) bson.M {
	return bson.M{
		"_id": returnRequestID,
		"$or": bson.A{
			bson.M{"resolution": bson.M{"$exists": false}},
			bson.M{"resolution.status": models.ResolutionStatusFailed.String()},
			bson.M{
				"resolution.id":     resolutionID,
				"resolution.status": bson.M{"$ne": models.ResolutionStatusCompleted.String()},
			},
		},
	}
}

// PatchResolution writes the resolution subdocument on a return request. The
// write is conditional on no other non-failed resolution being present.
func (m *MongoService) PatchResolution(returnRequestID string, resolution *models.ReturnResolutionDB) error {
	result, err := m.db.Collection(m.ReturnsCollection).UpdateOne(
		context.Background(),
		resolutionClaimFilter(returnRequestID, resolution.ID),
		bson.M{"$set": bson.M{"resolution": resolution}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrResolutionConflict
	}

	return nil
}

// CompleteResolution records a completed resolution, transitions the return
// request to its completed status and, for replacement resolutions, inserts
// the replacement order, all as one transactional unit
func (m *MongoService) CompleteResolution(returnRequestID string, resolution *models.ReturnResolutionDB, replacementOrder *models.OrderResourceDB, etag string) error {
	return m.withTransaction(func(sc mongo.SessionContext) error {
		filter := bson.M{
			"_id":               returnRequestID,
			"resolution.id":     resolution.ID,
			"resolution.status": bson.M{"$ne": models.ResolutionStatusCompleted.String()},
			"status": bson.M{"$in": bson.A{
				models.Approved.String(),
				models.ItemsReceived.String(),
				models.Processing.String(),
			}},
		}

		update := bson.M{"$set": bson.M{
			"resolution": resolution,
			"status":     models.Completed.String(),
			"etag":       etag,
		}}

		result, err := m.db.Collection(m.ReturnsCollection).UpdateOne(sc, filter, update)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrResolutionConflict
		}

		if replacementOrder != nil {
			_, err = m.db.Collection(m.OrdersCollection).InsertOne(sc, replacementOrder)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// GetOrder gets an order from the DB
// If the order is not found in the DB, return nil
func (m *MongoService) GetOrder(id string) (*models.OrderResourceDB, error) {
	var resource models.OrderResourceDB

	dbResource := m.db.Collection(m.OrdersCollection).FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetInventoryResource gets the inventory record for a product from the DB
// If the record is not found in the DB, return nil
func (m *MongoService) GetInventoryResource(productID string) (*models.InventoryResourceDB, error) {
	var resource models.InventoryResourceDB

	dbResource := m.db.Collection(m.InventoryCollection).FindOne(context.Background(), bson.M{"_id": productID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// NextReturnSequence increments and returns the sequence used for human
// readable return reference numbers
func (m *MongoService) NextReturnSequence() (int64, error) {
	findOptions := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var sequence struct {
		Value int64 `bson:"value"`
	}

	err := m.db.Collection(m.SequencesCollection).FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": "return_reference"},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		findOptions,
	).Decode(&sequence)
	if err != nil {
		return 0, err
	}

	return sequence.Value, nil
}
