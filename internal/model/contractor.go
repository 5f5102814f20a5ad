package model

// Contract is one service agreement of a contractor. A contract is
// active while its expiry date has not passed.
type Contract struct {
	Subject    string  `json:"subject,omitempty"`
	ExpiryDate *string `json:"expiryDate"`
	Remarks    string  `json:"remarks,omitempty"`
	ServicedBy string  `json:"servicedBy,omitempty"`
}

// Contractor is the contractor detail record together with its
// contracts. The contracts key stays "umowy" for compatibility with the
// dashboard's existing wire format.
type Contractor struct {
	Acronym    string     `json:"acronym"`
	Name       string     `json:"name,omitempty"`
	City       string     `json:"city,omitempty"`
	Address    string     `json:"address,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	PostalCode string     `json:"postalCode,omitempty"`
	USCID      string     `json:"uscId,omitempty"`
	Contracts  []Contract `json:"umowy"`
}
