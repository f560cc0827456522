package transformers

import (
	"github.com/tradepoint/returns.api/models"
)

// ReturnTransformer transforms return request data between database and rest models
type ReturnTransformer struct{}

// TransformToRest transforms a return request database model and its item
// documents into the public facing rest model
func (rt ReturnTransformer) TransformToRest(dbResource models.ReturnRequestResourceDB, items []models.ReturnItemResourceDB) models.ReturnRequestResourceRest {
	returnResource := models.ReturnRequestResourceRest{
		Reference:           dbResource.Reference,
		OrderID:             dbResource.OrderID,
		CustomerID:          dbResource.CustomerID,
		Status:              dbResource.Status,
		Reason:              dbResource.Reason,
		ReasonDetail:        dbResource.ReasonDetail,
		ProofImages:         dbResource.ProofImages,
		PreferredResolution: dbResource.PreferredResolution,
		StaffComments:       dbResource.StaffComments,
		ReviewedBy:          dbResource.ReviewedBy,
		ReviewedAt:          dbResource.ReviewedAt,
		RequestedAt:         dbResource.RequestedAt,
		MetaData: models.ReturnMetaDataRest{
			ID:   dbResource.ID,
			Etag: dbResource.Etag,
			Kind: dbResource.Kind,
		},
	}

	returnResource.Items = make([]models.ReturnItemResourceRest, len(items))
	for i, item := range items {
		returnResource.Items[i] = rt.ItemToRest(item)
	}

	if dbResource.Resolution != nil {
		resolution := rt.ResolutionToRest(*dbResource.Resolution)
		returnResource.Resolution = &resolution
	}

	return returnResource
}

// ItemToRest transforms a return item database model into its rest model
func (rt ReturnTransformer) ItemToRest(dbItem models.ReturnItemResourceDB) models.ReturnItemResourceRest {
	return models.ReturnItemResourceRest{
		ItemID:            dbItem.ID,
		OrderLineID:       dbItem.OrderLineID,
		ProductID:         dbItem.ProductID,
		QuantityRequested: dbItem.QuantityRequested,
		QuantityReceived:  dbItem.QuantityReceived,
		ReceivedAt:        dbItem.ReceivedAt,
		Condition:         dbItem.Condition,
		ConditionSetBy:    dbItem.ConditionSetBy,
		ConditionSetAt:    dbItem.ConditionSetAt,
		Disposition:       dbItem.Disposition,
		DispositionSetBy:  dbItem.DispositionSetBy,
		DispositionSetAt:  dbItem.DispositionSetAt,
		TrackingNumber:    dbItem.TrackingNumber,
		ShippingLabelRef:  dbItem.ShippingLabelRef,
	}
}

// ResolutionToRest transforms a resolution subdocument into its rest model
func (rt ReturnTransformer) ResolutionToRest(dbResolution models.ReturnResolutionDB) models.ReturnResolutionRest {
	return models.ReturnResolutionRest{
		ID:                  dbResolution.ID,
		Type:                dbResolution.Type,
		Status:              dbResolution.Status,
		ResolvedBy:          dbResolution.ResolvedBy,
		ResolvedAt:          dbResolution.ResolvedAt,
		Notes:               dbResolution.Notes,
		RefundAmount:        dbResolution.RefundAmount,
		RefundTransactionID: dbResolution.RefundTransactionID,
		ReplacementOrderID:  dbResolution.ReplacementOrderID,
		CreditCode:          dbResolution.CreditCode,
		CreditAmount:        dbResolution.CreditAmount,
		ExchangeNotes:       dbResolution.ExchangeNotes,
	}
}
