package request

// CartLineRequest adds Quantity units of ItemID to the cart. Quantity is
// checked by the cart itself so that every rejection carries the same shape.
type CartLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CommitRequest turns the cart into a bill. Date is YYYY-MM-DD; blank means today.
type CommitRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
}
