package model

import "time"

// Default values applied when an order request omits optional fields.
const (
	DefaultTableNo = "Takeaway"
	DefaultQty     = 1
)

// Order represents a placed order for a quantity of one menu item.
// ItemName is a snapshot of the menu item's name at order time; it is
// never recomputed. ItemID is a historical reference, not a live
// foreign key.
type Order struct {
	ID        string    `json:"id" db:"id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Qty       int       `json:"qty" db:"qty"`
	TableNo   string    `json:"table_no" db:"table_no"`
	Served    bool      `json:"served" db:"served"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OrderRequest represents the request payload for placing an order.
// TableNo and Qty are pointers so that an absent field can be told apart
// from an explicit zero value.
type OrderRequest struct {
	ItemID  string  `json:"item_id"`
	TableNo *string `json:"table_no,omitempty"`
	Qty     *int    `json:"qty,omitempty"`
}

// AggregatedOrder is one row of the unserved-plates aggregation: the
// total quantity still to serve, keyed by the denormalized item name.
type AggregatedOrder struct {
	ItemName string `json:"item_name" db:"item_name"`
	Plates   int    `json:"plates" db:"plates"`
}

// IDResponse is the response payload for create endpoints.
type IDResponse struct {
	ID string `json:"id"`
}
