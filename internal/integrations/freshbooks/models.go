package freshbooks

// Line строка счета FreshBooks
type Line struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Qty         int    `json:"qty"`
	UnitCost    Amount `json:"unit_cost"`
}

// Amount денежная сумма в формате FreshBooks
type Amount struct {
	Amount string `json:"amount"`
	Code   string `json:"code"`
}

// Invoice модель счета FreshBooks
type Invoice struct {
	ID             int64  `json:"id,omitempty"`
	CustomerID     int64  `json:"customerid,omitempty"`
	Email          string `json:"email,omitempty"`
	OrganizationID string `json:"organization,omitempty"`
	CreateDate     string `json:"create_date,omitempty"`
	Status         string `json:"v3_status,omitempty"`
	Lines          []Line `json:"lines,omitempty"`
}
