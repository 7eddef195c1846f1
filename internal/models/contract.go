// Package models defines the canonical records emitted by every source adapter.
package models

import "math"

// PartyRef is the minimal pointer to a buyer or supplier embedded in another record.
type PartyRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

// Contract is a canonical awarded contract.
type Contract struct {
	ID              string     `json:"id"`
	Country         string     `json:"country"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	PublishDate     *string    `json:"publish_date"`
	AwardDate       *string    `json:"award_date"`
	ContractDate    *string    `json:"contract_date"`
	Buyer           PartyRef   `json:"buyer"`
	Supplier        PartyRef   `json:"supplier"`
	ProcuringEntity *PartyRef  `json:"procuring_entity,omitempty"`
	OtherBuyers     []PartyRef `json:"other_buyers,omitempty"`
	Amount          *float64   `json:"amount,omitempty"`
	Currency        string     `json:"currency"`
	Method          string     `json:"method"`
	MethodDetails   string     `json:"method_details"`
	Category        string     `json:"category"`
	Categories      []string   `json:"categories,omitempty"`
	Status          string     `json:"status"`
	URL             string     `json:"url"`
	Source          string     `json:"source"`
}

// RecordID returns the contract id.
func (c Contract) RecordID() string {
	return c.ID
}

// SetAmount stores f unless it is zero, NaN or infinite, in which case the field stays absent.
func (c *Contract) SetAmount(f float64) {
	if v, ok := Amount(f); ok {
		c.Amount = &v
	}
}

// Amount reports whether f is a usable monetary value.
func Amount(f float64) (float64, bool) {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
