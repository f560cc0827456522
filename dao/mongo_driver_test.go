package dao

import (
	"testing"
	"time"

	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/models"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options) {
	client = &mongo.Client{}
	cfg, _ := config.Get()

	mongoService := MongoService{
		ReturnsCollection:     cfg.ReturnsCollection,
		ReturnItemsCollection: cfg.ReturnItemsCollection,
		OrdersCollection:      cfg.OrdersCollection,
		InventoryCollection:   cfg.InventoryCollection,
		SequencesCollection:   cfg.SequencesCollection,
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	opts := mtest.NewOptions().DatabaseName("databaseName").ClientType(mtest.Mock)

	return mongoService, commandError, opts
}

func returnRequestDoc(id, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "reference", Value: "RTN000042"},
		{Key: "order_id", Value: "order123"},
		{Key: "customer_id", Value: "customer123"},
		{Key: "status", Value: status},
		{Key: "reason", Value: "defective"},
		{Key: "requested_at", Value: primitive.NewDateTimeFromTime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))},
		{Key: "etag", Value: "etag123"},
		{Key: "kind", Value: "return-request#return-request"},
	}
}

func TestUnitGetReturnRequestDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("GetReturnRequest runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "databaseName.returns", mtest.FirstBatch, returnRequestDoc("return123", "approved")))

		mongoService.db = mt.DB

		returnRequest, err := mongoService.GetReturnRequest("return123")

		assert.Nil(t, err)
		assert.Equal(t, "return123", returnRequest.ID)
		assert.Equal(t, "RTN000042", returnRequest.Reference)
		assert.Equal(t, "approved", returnRequest.Status)
	})

	mt.Run("GetReturnRequest returns nil when not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.returns", mtest.FirstBatch))

		mongoService.db = mt.DB

		returnRequest, err := mongoService.GetReturnRequest("return123")

		assert.Nil(t, err)
		assert.Nil(t, returnRequest)
	})

	mt.Run("GetReturnRequest runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		returnRequest, err := mongoService.GetReturnRequest("return123")

		assert.NotNil(t, err)
		assert.Nil(t, returnRequest)
	})
}

func TestUnitGetReturnItemsDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("GetReturnItems runs successfully", func(mt *mtest.T) {
		itemDoc := bson.D{
			{Key: "_id", Value: "item1"},
			{Key: "return_request_id", Value: "return123"},
			{Key: "order_line_id", Value: "line1"},
			{Key: "product_id", Value: "product1"},
			{Key: "quantity_requested", Value: 1},
		}

		first := mtest.CreateCursorResponse(1, "databaseName.return_items", mtest.FirstBatch, itemDoc)
		killCursors := mtest.CreateCursorResponse(0, "databaseName.return_items", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		mongoService.db = mt.DB

		items, err := mongoService.GetReturnItems("return123")

		assert.Nil(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "item1", items[0].ID)
		assert.Equal(t, "product1", items[0].ProductID)
	})

	mt.Run("GetReturnItems runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		items, err := mongoService.GetReturnItems("return123")

		assert.NotNil(t, err)
		assert.Nil(t, items)
	})
}

func TestUnitListReturnRequestsDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("ListReturnRequests runs successfully", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, "databaseName.returns", mtest.FirstBatch, returnRequestDoc("return123", "pending-approval"))
		killCursors := mtest.CreateCursorResponse(0, "databaseName.returns", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		mongoService.db = mt.DB

		returnRequests, err := mongoService.ListReturnRequests(models.ReturnRequestFilter{CustomerID: "customer123"})

		assert.Nil(t, err)
		assert.Len(t, returnRequests, 1)
		assert.Equal(t, "return123", returnRequests[0].ID)
	})

	mt.Run("ListReturnRequests resolves product scoped filters through the items collection", func(mt *mtest.T) {
		distinct := mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"return123"}})
		first := mtest.CreateCursorResponse(1, "databaseName.returns", mtest.FirstBatch, returnRequestDoc("return123", "pending-approval"))
		killCursors := mtest.CreateCursorResponse(0, "databaseName.returns", mtest.NextBatch)
		mt.AddMockResponses(distinct, first, killCursors)

		mongoService.db = mt.DB

		returnRequests, err := mongoService.ListReturnRequests(models.ReturnRequestFilter{ProductIDs: []string{"product1"}})

		assert.Nil(t, err)
		assert.Len(t, returnRequests, 1)
	})

	mt.Run("ListReturnRequests returns empty when no product matches", func(mt *mtest.T) {
		distinct := mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{}})
		mt.AddMockResponses(distinct)

		mongoService.db = mt.DB

		returnRequests, err := mongoService.ListReturnRequests(models.ReturnRequestFilter{ProductIDs: []string{"product9"}})

		assert.Nil(t, err)
		assert.Empty(t, returnRequests)
	})

	mt.Run("ListReturnRequests runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		returnRequests, err := mongoService.ListReturnRequests(models.ReturnRequestFilter{})

		assert.NotNil(t, err)
		assert.Nil(t, returnRequests)
	})
}

func TestUnitPatchResolutionDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	resolution := &models.ReturnResolutionDB{
		ID:     "resolution123",
		Type:   "refund",
		Status: "in-progress",
	}

	mt.Run("PatchResolution runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		mongoService.db = mt.DB

		err := mongoService.PatchResolution("return123", resolution)

		assert.Nil(t, err)
	})

	mt.Run("PatchResolution reports a conflict when nothing matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		mongoService.db = mt.DB

		err := mongoService.PatchResolution("return123", resolution)

		assert.Equal(t, ErrResolutionConflict, err)
	})

	mt.Run("PatchResolution runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.PatchResolution("return123", resolution)

		assert.NotNil(t, err)
	})
}

func TestUnitGetOrderDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("GetOrder runs successfully", func(mt *mtest.T) {
		orderDoc := bson.D{
			{Key: "_id", Value: "order123"},
			{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC))},
			{Key: "customer_id", Value: "customer123"},
			{Key: "status", Value: "delivered"},
			{Key: "prepaid", Value: true},
			{Key: "payment_capture_id", Value: "capture123"},
			{Key: "total_amount", Value: "150.00"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "databaseName.orders", mtest.FirstBatch, orderDoc))

		mongoService.db = mt.DB

		order, err := mongoService.GetOrder("order123")

		assert.Nil(t, err)
		assert.Equal(t, "order123", order.ID)
		assert.Equal(t, "capture123", order.PaymentCaptureID)
	})

	mt.Run("GetOrder returns nil when not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.orders", mtest.FirstBatch))

		mongoService.db = mt.DB

		order, err := mongoService.GetOrder("order123")

		assert.Nil(t, err)
		assert.Nil(t, order)
	})

	mt.Run("GetOrder runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		order, err := mongoService.GetOrder("order123")

		assert.NotNil(t, err)
		assert.Nil(t, order)
	})
}

func TestUnitGetInventoryResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("GetInventoryResource runs successfully", func(mt *mtest.T) {
		inventoryDoc := bson.D{
			{Key: "_id", Value: "product1"},
			{Key: "quantity", Value: 10},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "databaseName.inventory", mtest.FirstBatch, inventoryDoc))

		mongoService.db = mt.DB

		inventory, err := mongoService.GetInventoryResource("product1")

		assert.Nil(t, err)
		assert.Equal(t, "product1", inventory.ProductID)
		assert.Equal(t, 10, inventory.Quantity)
	})

	mt.Run("GetInventoryResource returns nil when not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.inventory", mtest.FirstBatch))

		mongoService.db = mt.DB

		inventory, err := mongoService.GetInventoryResource("product1")

		assert.Nil(t, err)
		assert.Nil(t, inventory)
	})

	mt.Run("GetInventoryResource runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		inventory, err := mongoService.GetInventoryResource("product1")

		assert.NotNil(t, err)
		assert.Nil(t, inventory)
	})
}

func TestUnitNextReturnSequenceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("NextReturnSequence runs successfully", func(mt *mtest.T) {
		sequenceDoc := bson.D{
			{Key: "_id", Value: "return_reference"},
			{Key: "value", Value: int64(42)},
		}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: sequenceDoc}))

		mongoService.db = mt.DB

		sequence, err := mongoService.NextReturnSequence()

		assert.Nil(t, err)
		assert.Equal(t, int64(42), sequence)
	})

	mt.Run("NextReturnSequence runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		sequence, err := mongoService.NextReturnSequence()

		assert.NotNil(t, err)
		assert.Equal(t, int64(0), sequence)
	})
}
