package entities

// IssueKind classifies a reconciliation finding.
type IssueKind string

const (
	IssueProductUnavailable IssueKind = "product_unavailable"
	IssueStockReduced       IssueKind = "stock_reduced"
	IssuePriceChanged       IssueKind = "price_changed"
	IssueEmptyCart          IssueKind = "empty_cart"
	IssueValidationFailed   IssueKind = "validation_failed"
)

// ReconciliationIssue is one blocking error or non-blocking warning.
type ReconciliationIssue struct {
	Kind        IssueKind `json:"kind"`
	ProductID   string    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Message     string    `json:"message"`
	OldValue    int64     `json:"old_value,omitempty"`
	NewValue    int64     `json:"new_value,omitempty"`
}

// ReconciliationResult is the verdict of re-validating a cart against backend state.
//
// Every item dropped for being unavailable has a matching entry in Errors and every
// price or quantity adjustment has a matching entry in Warnings.
type ReconciliationResult struct {
	Valid        bool                  `json:"valid"`
	Errors       []ReconciliationIssue `json:"errors"`
	Warnings     []ReconciliationIssue `json:"warnings"`
	UpdatedItems []CartLineItem        `json:"updated_items"`
}

// HasWarnings reports whether any soft adjustment was made.
func (r ReconciliationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
