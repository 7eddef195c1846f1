// Package opentender maps OpenTender OCDS releases from the EU-wide procurement
// datasets.
package opentender

import (
	"errors"
	"strconv"

	"procnorm/internal/identity"
	"procnorm/internal/models"
	"procnorm/internal/sources/ocds"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

// Source is the tag on every OpenTender record.
const Source = "opentender"

// ErrNoSuppliedAward is the drop reason for releases with no award naming a supplier.
var ErrNoSuppliedAward = errors.New("no award with a supplier")

type release struct {
	*ocds.Release
	override string
	hasOver  bool
}

func decode(raw []byte, opts transform.Options) (*release, error) {
	rel, err := ocds.Decode(raw)
	if err != nil {
		return nil, err
	}

	override, ok := overrideCountry(opts.Country)

	return &release{Release: rel, override: override, hasOver: ok}, nil
}

// firstBuyerID is the id used to infer countries the parties do not state.
func (r *release) firstBuyerID() string {
	if buyers := r.PartiesWithRole(ocds.RoleBuyer); len(buyers) > 0 {
		return string(buyers[0].ID)
	}

	if r.Buyer != nil {
		return string(r.Buyer.ID)
	}

	return ""
}

func (r *release) buyerCountry(p ocds.Party) string {
	if r.hasOver {
		return r.override
	}

	if code, ok := addressCountry(p.CountryName()); ok {
		return code
	}

	return idCountry(string(p.ID))
}

func (r *release) supplierCountry(p ocds.Party) string {
	if code, ok := addressCountry(p.CountryName()); ok {
		return code
	}

	return idCountry(r.firstBuyerID())
}

func (r *release) buyers() []models.Entity {
	parties := r.PartiesWithRole(ocds.RoleBuyer)

	if len(parties) == 0 && r.Buyer != nil {
		p, ok := r.Party(r.Buyer.ID)
		if !ok {
			p = ocds.Party{ID: r.Buyer.ID, Name: r.Buyer.Name}
		}

		parties = []ocds.Party{p}
	}

	out := make([]models.Entity, 0, len(parties))
	for _, p := range parties {
		out = append(out, entity(p, r.buyerCountry(p)))
	}

	return out
}

func (r *release) supplierRef(ref ocds.Reference) models.PartyRef {
	p, ok := r.Party(ref.ID)
	if !ok {
		p = ocds.Party{ID: ref.ID, Name: ref.Name}
	}

	return entity(p, r.supplierCountry(p)).Ref()
}

func entity(p ocds.Party, country string) models.Entity {
	name := string(p.Name)
	if name == "" {
		name = p.LegalName()
	}

	e := models.Entity{
		ID:         identity.GenerateEntityID(name, country, ""),
		Name:       name,
		Identifier: p.IdentifierID(),
		Country:    country,
		Source:     Source,
	}

	e.AddOtherName(p.LegalName())

	if p.Address != nil {
		e.SetAddress(models.Address{
			Street:     string(p.Address.StreetAddress),
			Locality:   string(p.Address.Locality),
			Region:     string(p.Address.Region),
			PostalCode: string(p.Address.PostalCode),
			Country:    country,
		})
	}

	if p.ContactPoint != nil {
		e.SetContactPoint(models.ContactPoint{
			Name:      string(p.ContactPoint.Name),
			Email:     string(p.ContactPoint.Email),
			Telephone: string(p.ContactPoint.Telephone),
			URL:       string(p.ContactPoint.URL),
		})
	}

	if p.Details != nil {
		e.Classification = string(p.Details.Type)
	}

	return e
}

// Contracts emits one contract per award that names at least one supplier.
func Contracts(raw []byte, opts transform.Options) (transform.Output, error) {
	rel, err := decode(raw, opts)
	if err != nil {
		return nil, err
	}

	tender := rel.TenderOrEmpty()
	buyers := rel.buyers()

	var buyer models.PartyRef
	var others []models.PartyRef

	for i, b := range buyers {
		if i == 0 {
			buyer = b.Ref()
			continue
		}

		others = append(others, b.Ref())
	}

	baseID := string(tender.ID)
	if baseID == "" {
		baseID = string(rel.OCID)
	}

	var contracts []models.Contract

	for i, award := range rel.Awards {
		if len(award.Suppliers) == 0 {
			continue
		}

		awardID := string(award.ID)
		if awardID == "" {
			awardID = strconv.Itoa(i + 1)
		}

		signed, hasContract := rel.ContractForAward(award.ID)

		contract := models.Contract{
			ID:            identity.ContractID(buyer.Country, baseID+"-"+awardID),
			Country:       buyer.Country,
			Title:         lexical.Transliterate(firstNonEmpty(string(award.Title), string(tender.Title))),
			Description:   lexical.Transliterate(firstNonEmpty(string(award.Description), string(tender.Description))),
			PublishDate:   firstDate(string(tender.DatePublished), string(award.Date), string(signed.DateSigned)),
			AwardDate:     lexical.ISODateTime(string(award.Date)),
			ContractDate:  lexical.ISODateTime(string(signed.DateSigned)),
			Buyer:         buyer,
			Supplier:      rel.supplierRef(award.Suppliers[0]),
			OtherBuyers:   others,
			Method:        string(tender.ProcurementMethod),
			MethodDetails: string(tender.ProcurementMethodDetails),
			Category:      string(tender.MainProcurementCategory),
			Categories:    tender.AdditionalProcurementCats,
			Status:        string(award.Status),
			Source:        Source,
		}

		if len(tender.Documents) > 0 {
			contract.URL = string(tender.Documents[0].URL)
		}

		value := award.Value
		if value == nil && hasContract {
			value = signed.Value
		}

		if value != nil {
			contract.SetAmount(value.Amount.Float())
			contract.Currency = string(value.Currency)
		}

		contracts = append(contracts, contract)
	}

	if len(contracts) == 0 {
		return nil, transform.Drop(ErrNoSuppliedAward)
	}

	return transform.Many(contracts), nil
}

// Buyers emits every buyer party.
func Buyers(raw []byte, opts transform.Options) (transform.Output, error) {
	rel, err := decode(raw, opts)
	if err != nil {
		return nil, err
	}

	return transform.Many(rel.buyers()), nil
}

// Suppliers emits every supplier party.
func Suppliers(raw []byte, opts transform.Options) (transform.Output, error) {
	rel, err := decode(raw, opts)
	if err != nil {
		return nil, err
	}

	parties := rel.PartiesWithRole(ocds.RoleSupplier)
	suppliers := make([]models.Entity, 0, len(parties))

	for _, p := range parties {
		suppliers = append(suppliers, entity(p, rel.supplierCountry(p)))
	}

	return transform.Many(suppliers), nil
}

// firstDate returns the first parseable date of candidates.
func firstDate(candidates ...string) *string {
	for _, c := range candidates {
		if d := lexical.ISODateTime(c); d != nil {
			return d
		}
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
