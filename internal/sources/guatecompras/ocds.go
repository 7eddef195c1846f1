package guatecompras

import (
	"strings"

	"procnorm/internal/identity"
	"procnorm/internal/models"
	"procnorm/internal/sources/ocds"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

const (
	statusComplete = "complete"
	statusActive   = "active"
)

// OCDSContracts emits one contract per active award of a completed tender.
func OCDSContracts(raw []byte, _ transform.Options) (transform.Output, error) {
	rel, err := ocds.Decode(raw)
	if err != nil {
		return nil, err
	}

	tender := rel.TenderOrEmpty()
	if tender.Status != statusComplete {
		return nil, transform.Drop(ErrTenderNotComplete)
	}

	var active []ocds.Award

	for _, award := range rel.Awards {
		if award.Status == statusActive {
			active = append(active, award)
		}
	}

	if len(active) == 0 {
		return nil, transform.Drop(ErrNoActiveAward)
	}

	nog := string(tender.ID)
	if nog == "" {
		nog = string(rel.OCID)
	}

	buyer, unit := splitBuyers(rel)

	contracts := make([]models.Contract, 0, len(active))

	for _, award := range active {
		nativeID := nog
		if len(active) > 1 && award.ID != "" {
			nativeID += "-" + string(award.ID)
		}

		contract := models.Contract{
			ID:            identity.ContractID(Country, nativeID),
			Country:       Country,
			Title:         string(tender.Title),
			Description:   firstNonEmpty(string(award.Description), string(tender.Description)),
			PublishDate:   lexical.ISODateTime(string(tender.DatePublished)),
			AwardDate:     lexical.ISODateTime(string(award.Date)),
			Currency:      Currency,
			Method:        string(tender.ProcurementMethod),
			MethodDetails: string(tender.ProcurementMethodDetails),
			Category:      string(tender.MainProcurementCategory),
			Categories:    tender.AdditionalProcurementCats,
			Status:        string(award.Status),
			URL:           tenderURL(string(tender.ID)),
			Source:        SourceOCDS,
		}

		if buyer != nil {
			contract.Buyer = buyer.Ref()
		}

		if unit != nil {
			ref := unit.Ref()
			contract.ProcuringEntity = &ref
		}

		if len(award.Suppliers) > 0 {
			contract.Supplier = supplierRef(rel, award.Suppliers[0])
		}

		signed, hasContract := rel.ContractForAward(award.ID)
		if hasContract {
			contract.ContractDate = signedDate(string(signed.DateSigned))
		}

		value := award.Value
		if value == nil && hasContract {
			value = signed.Value
		}

		if value != nil {
			contract.SetAmount(value.Amount.Float())

			if value.Currency != "" {
				contract.Currency = string(value.Currency)
			}
		}

		contracts = append(contracts, contract)
	}

	return transform.Many(contracts), nil
}

// OCDSBuyers emits every buyer-role party.
func OCDSBuyers(raw []byte, _ transform.Options) (transform.Output, error) {
	rel, err := ocds.Decode(raw)
	if err != nil {
		return nil, err
	}

	parties := rel.PartiesWithRole(ocds.RoleBuyer)
	buyers := make([]models.Entity, 0, len(parties))

	for _, p := range parties {
		buyers = append(buyers, buyerEntity(rel, p))
	}

	return transform.Many(buyers), nil
}

// OCDSSuppliers emits every supplier-role party.
func OCDSSuppliers(raw []byte, _ transform.Options) (transform.Output, error) {
	rel, err := ocds.Decode(raw)
	if err != nil {
		return nil, err
	}

	parties := rel.PartiesWithRole(ocds.RoleSupplier)
	suppliers := make([]models.Entity, 0, len(parties))

	for _, p := range parties {
		suppliers = append(suppliers, supplierEntity(p))
	}

	return transform.Many(suppliers), nil
}

// splitBuyers tells the buying entity (no memberOf) from its purchasing unit.
func splitBuyers(rel *ocds.Release) (buyer, unit *models.Entity) {
	for _, p := range rel.PartiesWithRole(ocds.RoleBuyer) {
		e := buyerEntity(rel, p)

		switch {
		case len(p.MemberOf) == 0 && buyer == nil:
			buyer = &e
		case len(p.MemberOf) > 0 && unit == nil:
			unit = &e
		}
	}

	if buyer == nil && unit != nil && unit.MemberOf != nil {
		parent := models.Entity{
			ID:      unit.MemberOf.ID,
			Name:    unit.MemberOf.Name,
			Country: unit.MemberOf.Country,
		}
		buyer = &parent
	}

	return buyer, unit
}

func buyerEntity(rel *ocds.Release, p ocds.Party) models.Entity {
	e := partyEntity(p, Country)

	if len(p.MemberOf) > 0 {
		parentName := string(p.MemberOf[0].Name)
		if parent, ok := rel.Party(p.MemberOf[0].ID); ok {
			parentName = partyName(parent)
		}

		e.ID = unitID(parentName, e.Name)
		ref := entityRef(parentName, Country)
		e.MemberOf = &ref
	}

	if p.Details != nil {
		e.Classification = firstNonEmpty(string(p.Details.Classification), string(p.Details.EntityType), string(p.Details.Type))
	}

	return e
}

func supplierEntity(p ocds.Party) models.Entity {
	return partyEntity(p, schemeCountry(p.Scheme()))
}

func supplierRef(rel *ocds.Release, ref ocds.Reference) models.PartyRef {
	if p, ok := rel.Party(ref.ID); ok {
		return supplierEntity(p).Ref()
	}

	return entityRef(string(ref.Name), Country)
}

func partyName(p ocds.Party) string {
	return firstNonEmpty(string(p.Name), p.LegalName())
}

func partyEntity(p ocds.Party, country string) models.Entity {
	name := partyName(p)

	e := models.Entity{
		ID:         identity.GenerateEntityID(name, country, Country),
		Name:       name,
		Identifier: p.IdentifierID(),
		Country:    country,
		Source:     SourceOCDS,
	}

	e.AddOtherName(p.LegalName())

	if p.Address != nil {
		e.SetAddress(models.Address{
			Street:     string(p.Address.StreetAddress),
			Locality:   string(p.Address.Locality),
			Region:     string(p.Address.Region),
			PostalCode: string(p.Address.PostalCode),
			Country:    string(p.Address.CountryName),
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

	return e
}

func tenderURL(nog string) string {
	if nog == "" {
		return ""
	}

	return nogURL + nog
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// signedDate parses a dateSigned value. Legacy feeds put a stray space inside the
// value, so the first space is removed when the value does not parse as is.
func signedDate(raw string) *string {
	if d := lexical.ISODateTime(raw); d != nil {
		return d
	}

	return lexical.ISODateTime(strings.Replace(raw, " ", "", 1))
}
