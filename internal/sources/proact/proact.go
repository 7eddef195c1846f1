// Package proact maps ProACT flat tender/lot/bid rows.
package proact

import (
	"encoding/json"
	"errors"
	"fmt"

	"procnorm/internal/identity"
	"procnorm/internal/models"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

// Source is the tag on every ProACT record.
const Source = "proact"

// Drop reasons.
var (
	ErrMissingTenderID   = errors.New("missing tender_id")
	ErrMissingBuyerName  = errors.New("missing buyer_name")
	ErrMissingBidderName = errors.New("missing bidder_name")
)

// Row is one ProACT lot/bid row. Every column is optional.
type Row struct {
	TenderID       transform.String `json:"tender_id"`
	TenderCountry  transform.String `json:"tender_country"`
	TenderTitle    transform.String `json:"tender_title"`
	LotTitle       transform.String `json:"lot_title"`
	LotRowNr       transform.String `json:"lot_row_nr"`
	ProcedureType  transform.String `json:"tender_proceduretype"`
	SupplyType     transform.String `json:"tender_supplytype"`
	MainCPV        transform.String `json:"tender_maincpv"`
	PublishDate    transform.String `json:"tender_publications_firstcallfortenderdate"`
	AwardDate      transform.String `json:"tender_awarddecisiondate"`
	SignatureDate  transform.String `json:"tender_contractsignaturedate"`
	AwardURL       transform.String `json:"tender_publications_lastcontractawardurl"`
	BidPrice       transform.Number `json:"bid_price"`
	BidCurrency    transform.String `json:"bid_pricecurrency"`
	BuyerID        transform.String `json:"buyer_id"`
	BuyerName      transform.String `json:"buyer_name"`
	BuyerCountry   transform.String `json:"buyer_country"`
	BuyerCity      transform.String `json:"buyer_city"`
	BuyerPostcode  transform.String `json:"buyer_postcode"`
	BuyerNUTS      transform.String `json:"buyer_nuts"`
	BuyerType      transform.String `json:"buyer_buyertype"`
	BidderID       transform.String `json:"bidder_id"`
	BidderName     transform.String `json:"bidder_name"`
	BidderCountry  transform.String `json:"bidder_country"`
	BidderCity     transform.String `json:"bidder_city"`
	BidderPostcode transform.String `json:"bidder_postcode"`
	BidderNUTS     transform.String `json:"bidder_nuts"`
}

func decodeRow(raw []byte) (Row, error) {
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return Row{}, fmt.Errorf("decode proact row: %w", err)
	}

	return row, nil
}

// country is the tender country as an ISO code, or "" when unresolved.
func (r Row) country() string {
	code, _ := lexical.CountryCode(string(r.TenderCountry))

	return code
}

func (r Row) buyer() models.Entity {
	return party(string(r.BuyerName), string(r.BuyerID), string(r.BuyerCountry), r.country(), models.Address{
		Locality:   string(r.BuyerCity),
		PostalCode: string(r.BuyerPostcode),
		Region:     string(r.BuyerNUTS),
	})
}

func (r Row) bidder() models.Entity {
	return party(string(r.BidderName), string(r.BidderID), string(r.BidderCountry), r.country(), models.Address{
		Locality:   string(r.BidderCity),
		PostalCode: string(r.BidderPostcode),
		Region:     string(r.BidderNUTS),
	})
}

func party(name, id, countryName, fallback string, addr models.Address) models.Entity {
	country, ok := lexical.CountryCode(countryName)
	if !ok {
		country = fallback
	}

	addr.Country = country

	e := models.Entity{
		ID:         identity.GenerateEntityID(name, country, fallback),
		Name:       name,
		Identifier: id,
		Country:    country,
		Source:     Source,
	}
	e.SetAddress(addr)

	return e
}

// Contracts maps a row to its contract.
func Contracts(raw []byte, _ transform.Options) (transform.Output, error) {
	row, err := decodeRow(raw)
	if err != nil {
		return nil, err
	}

	if row.TenderID == "" {
		return nil, transform.Drop(ErrMissingTenderID)
	}

	country := row.country()

	nativeID := string(row.TenderID)
	if row.LotRowNr != "" {
		nativeID += "-" + string(row.LotRowNr)
	}

	title := row.LotTitle
	if title == "" {
		title = row.TenderTitle
	}

	contract := models.Contract{
		ID:           identity.ContractID(country, nativeID),
		Country:      country,
		Title:        lexical.Transliterate(string(title)),
		Description:  lexical.Transliterate(string(row.TenderTitle)),
		PublishDate:  lexical.ISODateTime(string(row.PublishDate)),
		AwardDate:    lexical.ISODateTime(string(row.AwardDate)),
		ContractDate: lexical.ISODateTime(string(row.SignatureDate)),
		Buyer:        row.buyer().Ref(),
		Supplier:     row.bidder().Ref(),
		Currency:     string(row.BidCurrency),
		Method:       string(row.ProcedureType),
		Category:     string(row.SupplyType),
		URL:          string(row.AwardURL),
		Source:       Source,
	}

	if row.MainCPV != "" {
		contract.Categories = []string{string(row.MainCPV)}
	}

	contract.SetAmount(row.BidPrice.Float())

	return transform.One(contract), nil
}

// Buyers maps a row to its buyer.
func Buyers(raw []byte, _ transform.Options) (transform.Output, error) {
	row, err := decodeRow(raw)
	if err != nil {
		return nil, err
	}

	if row.BuyerName == "" {
		return nil, transform.Drop(ErrMissingBuyerName)
	}

	buyer := row.buyer()
	buyer.Classification = string(row.BuyerType)

	return transform.One(buyer), nil
}

// Suppliers maps a row to its winning bidder.
func Suppliers(raw []byte, _ transform.Options) (transform.Output, error) {
	row, err := decodeRow(raw)
	if err != nil {
		return nil, err
	}

	if row.BidderName == "" {
		return nil, transform.Drop(ErrMissingBidderName)
	}

	return transform.One(row.bidder()), nil
}
