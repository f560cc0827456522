package models

// ReturnStatus Enum Type
type ReturnStatus int

// Enumeration containing all possible return request statuses
const (
	PendingApproval ReturnStatus = 1 + iota
	Approved
	Rejected
	ItemsReceived
	Processing
	ResolutionPending
	Completed
)

// String representation of return request statuses
var returnStatuses = [...]string{
	"pending-approval",
	"approved",
	"rejected",
	"items-received",
	"processing",
	"resolution-pending",
	"completed",
}

func (returnStatus ReturnStatus) String() string {
	return returnStatuses[returnStatus-1]
}

// ResolutionStatus Enum Type
type ResolutionStatus int

// Enumeration containing all possible resolution statuses
const (
	ResolutionStatusPending ResolutionStatus = 1 + iota
	ResolutionStatusInProgress
	ResolutionStatusCompleted
	ResolutionStatusFailed
)

var resolutionStatuses = [...]string{
	"pending",
	"in-progress",
	"completed",
	"failed",
}

func (resolutionStatus ResolutionStatus) String() string {
	return resolutionStatuses[resolutionStatus-1]
}

// ResolutionType Enum Type
type ResolutionType int

// Enumeration containing all recognised resolution types
const (
	Refund ResolutionType = 1 + iota
	Replacement
	StoreCredit
	Exchange
)

var resolutionTypes = [...]string{
	"refund",
	"replacement",
	"store-credit",
	"exchange",
}

func (resolutionType ResolutionType) String() string {
	return resolutionTypes[resolutionType-1]
}

// ItemCondition Enum Type
type ItemCondition int

// Enumeration containing all recognised item conditions
const (
	NewInBox ItemCondition = 1 + iota
	LikeNewOpenBox
	Used
	Damaged
	DamagedBeyondRepair
)

var itemConditions = [...]string{
	"new-in-box",
	"like-new-open-box",
	"used",
	"damaged",
	"damaged-beyond-repair",
}

func (itemCondition ItemCondition) String() string {
	return itemConditions[itemCondition-1]
}

// Disposition Enum Type
type Disposition int

// Enumeration containing all recognised dispositions for returned units
const (
	Restock Disposition = 1 + iota
	ReturnToSupplier
	Refurbish
	Dispose
	Quarantine
)

var dispositions = [...]string{
	"restock",
	"return-to-supplier",
	"refurbish",
	"dispose",
	"quarantine",
}

func (disposition Disposition) String() string {
	return dispositions[disposition-1]
}

// ReturnReason Enum Type
type ReturnReason int

// Enumeration containing all recognised return reasons
const (
	ReasonDamaged ReturnReason = 1 + iota
	ReasonDefective
	ReasonWrongItem
	ReasonNotAsDescribed
	ReasonNoLongerNeeded
	ReasonOther
)

var returnReasons = [...]string{
	"damaged",
	"defective",
	"wrong-item",
	"not-as-described",
	"no-longer-needed",
	"other",
}

func (returnReason ReturnReason) String() string {
	return returnReasons[returnReason-1]
}

// IsValidReturnStatus tells whether s is a recognised return request status
func IsValidReturnStatus(s string) bool {
	return containsValue(returnStatuses[:], s)
}

// IsValidItemCondition tells whether s is a recognised item condition
func IsValidItemCondition(s string) bool {
	return containsValue(itemConditions[:], s)
}

// IsValidDisposition tells whether s is a recognised disposition
func IsValidDisposition(s string) bool {
	return containsValue(dispositions[:], s)
}

// IsValidResolutionType tells whether s is a recognised resolution type
func IsValidResolutionType(s string) bool {
	return containsValue(resolutionTypes[:], s)
}

// IsValidReturnReason tells whether s is a recognised return reason
func IsValidReturnReason(s string) bool {
	return containsValue(returnReasons[:], s)
}

// IsTerminalReturnStatus tells whether s is a write-once terminal status
func IsTerminalReturnStatus(s string) bool {
	return s == Rejected.String() || s == Completed.String()
}

// IsResolvableReturnStatus tells whether a request in status s may be resolved
func IsResolvableReturnStatus(s string) bool {
	return s == Approved.String() || s == ItemsReceived.String() || s == Processing.String()
}

// IsAtOrPastProcessing tells whether s is at or past the processing stage of
// the forward lifecycle. Terminal statuses are rejected before this check is
// ever consulted.
func IsAtOrPastProcessing(s string) bool {
	return s == Processing.String() || s == ResolutionPending.String() || s == Completed.String()
}

// IsRestockableCondition tells whether an item in condition s may be restocked.
// Any other condition downgrades a restock disposition to quarantine.
func IsRestockableCondition(s string) bool {
	return s == NewInBox.String() || s == LikeNewOpenBox.String()
}

func containsValue(values []string, s string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
