// Package ocds holds the subset of the Open Contracting Data Standard release
// shape read by the Guatecompras and OpenTender adapters.
package ocds

import (
	"encoding/json"
	"fmt"
	"slices"

	"procnorm/internal/transform"
)

// Party roles.
const (
	RoleBuyer    = "buyer"
	RoleSupplier = "supplier"
)

// Release is one snapshot of a contracting process. Every nested part is optional.
type Release struct {
	OCID      transform.String `json:"ocid"`
	ID        transform.String `json:"id"`
	Date      transform.String `json:"date"`
	Buyer     *Reference       `json:"buyer"`
	Parties   []Party          `json:"parties"`
	Tender    *Tender          `json:"tender"`
	Awards    []Award          `json:"awards"`
	Contracts []Contract       `json:"contracts"`
}

// Reference points at a party by id.
type Reference struct {
	ID   transform.String `json:"id"`
	Name transform.String `json:"name"`
}

// Party is an organization taking part in the process.
type Party struct {
	ID            transform.String `json:"id"`
	Name          transform.String `json:"name"`
	Roles         []string         `json:"roles"`
	Identifier    *Identifier      `json:"identifier"`
	AdditionalIDs []Identifier     `json:"additionalIdentifiers"`
	Address       *Address         `json:"address"`
	ContactPoint  *ContactPoint    `json:"contactPoint"`
	MemberOf      []Reference      `json:"memberOf"`
	Details       *PartyDetails    `json:"details"`
}

// Identifier is a scheme-tagged registration id, e.g. scheme "GT-NIT".
type Identifier struct {
	Scheme    transform.String `json:"scheme"`
	ID        transform.String `json:"id"`
	LegalName transform.String `json:"legalName"`
	URI       transform.String `json:"uri"`
}

// Address is a postal address.
type Address struct {
	StreetAddress transform.String `json:"streetAddress"`
	Locality      transform.String `json:"locality"`
	Region        transform.String `json:"region"`
	PostalCode    transform.String `json:"postalCode"`
	CountryName   transform.String `json:"countryName"`
}

// ContactPoint is a contact person or office.
type ContactPoint struct {
	Name      transform.String `json:"name"`
	Email     transform.String `json:"email"`
	Telephone transform.String `json:"telephone"`
	URL       transform.String `json:"url"`
}

// PartyDetails carries the extension fields some publishers attach to parties.
type PartyDetails struct {
	Classification transform.String `json:"classification"`
	EntityType     transform.String `json:"entityType"`
	Type           transform.String `json:"type"`
}

// Tender describes the tender stage.
type Tender struct {
	ID                        transform.String `json:"id"`
	Title                     transform.String `json:"title"`
	Description               transform.String `json:"description"`
	Status                    transform.String `json:"status"`
	DatePublished             transform.String `json:"datePublished"`
	ProcurementMethod         transform.String `json:"procurementMethod"`
	ProcurementMethodDetails  transform.String `json:"procurementMethodDetails"`
	MainProcurementCategory   transform.String `json:"mainProcurementCategory"`
	AdditionalProcurementCats []string         `json:"additionalProcurementCategories"`
	TenderPeriod              *Period          `json:"tenderPeriod"`
	Value                     *Value           `json:"value"`
	Documents                 []Document       `json:"documents"`
}

// Period is a start/end date range.
type Period struct {
	StartDate transform.String `json:"startDate"`
	EndDate   transform.String `json:"endDate"`
}

// Value is an amount with its currency.
type Value struct {
	Amount   transform.Number `json:"amount"`
	Currency transform.String `json:"currency"`
}

// Document is a published document link.
type Document struct {
	URL transform.String `json:"url"`
}

// Award is one award decision.
type Award struct {
	ID          transform.String `json:"id"`
	Title       transform.String `json:"title"`
	Description transform.String `json:"description"`
	Status      transform.String `json:"status"`
	Date        transform.String `json:"date"`
	Value       *Value           `json:"value"`
	Suppliers   []Reference      `json:"suppliers"`
}

// Contract is a signed contract.
type Contract struct {
	ID         transform.String `json:"id"`
	AwardID    transform.String `json:"awardID"`
	Status     transform.String `json:"status"`
	DateSigned transform.String `json:"dateSigned"`
	Value      *Value           `json:"value"`
}

// Decode parses a release. Some publishers wrap it as {"releases":[...]} or
// {"compiledRelease":{...}}; the first release is taken from those.
func Decode(raw []byte) (*Release, error) {
	var envelope struct {
		Releases        []json.RawMessage `json:"releases"`
		CompiledRelease json.RawMessage   `json:"compiledRelease"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	switch {
	case len(envelope.CompiledRelease) > 0 && string(envelope.CompiledRelease) != "null":
		raw = envelope.CompiledRelease
	case len(envelope.Releases) > 0:
		raw = envelope.Releases[0]
	}

	var rel Release
	if err := json.Unmarshal(raw, &rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	return &rel, nil
}

// HasRole reports whether the party carries role.
func (p Party) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// PartiesWithRole returns the parties carrying role, in document order.
func (r *Release) PartiesWithRole(role string) []Party {
	var out []Party

	for _, p := range r.Parties {
		if p.HasRole(role) {
			out = append(out, p)
		}
	}

	return out
}

// Party looks a party up by id.
func (r *Release) Party(id transform.String) (Party, bool) {
	if id == "" {
		return Party{}, false
	}

	for _, p := range r.Parties {
		if p.ID == id {
			return p, true
		}
	}

	return Party{}, false
}

// ContractForAward returns the contract whose awardID matches the award.
func (r *Release) ContractForAward(awardID transform.String) (Contract, bool) {
	for _, c := range r.Contracts {
		if awardID != "" && c.AwardID == awardID {
			return c, true
		}
	}

	return Contract{}, false
}

// TenderOrEmpty returns the tender, or an empty one when the release has none.
func (r *Release) TenderOrEmpty() Tender {
	if r.Tender == nil {
		return Tender{}
	}

	return *r.Tender
}

// LegalName returns the identifier's legal name, falling back to the party name.
func (p Party) LegalName() string {
	if p.Identifier != nil && p.Identifier.LegalName != "" {
		return string(p.Identifier.LegalName)
	}

	return string(p.Name)
}

// IdentifierID returns the identifier id, or "".
func (p Party) IdentifierID() string {
	if p.Identifier == nil {
		return ""
	}

	return string(p.Identifier.ID)
}

// Scheme returns the scheme of the main identifier, falling back to the first
// additional identifier that names one.
func (p Party) Scheme() string {
	if p.Identifier != nil && p.Identifier.Scheme != "" {
		return string(p.Identifier.Scheme)
	}

	for _, id := range p.AdditionalIDs {
		if id.Scheme != "" {
			return string(id.Scheme)
		}
	}

	return ""
}

// CountryName returns the address country name, or "".
func (p Party) CountryName() string {
	if p.Address == nil {
		return ""
	}

	return string(p.Address.CountryName)
}
