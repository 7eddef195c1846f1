package guatecompras

import (
	"github.com/tidwall/gjson"

	"procnorm/internal/identity"
	"procnorm/internal/models"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

const maxTitleLength = 200

// Historic export column labels.
const (
	colNOG           = "NOG"
	colDescription   = "Descripción"
	colMethod        = "Modalidad"
	colMethodDetails = "Sub modalidad"
	colCategory      = "Categoría"
	colStatus        = "Estatus"
	colPublished     = "Fecha de publicación"
	colAwarded       = "Fecha de adjudicación"
	colEntity        = "Entidad compradora"
	colUnit          = "Unidad compradora"
	colEntityType    = "Tipo de entidad"
	colNIT           = "NIT"
	colSupplier      = "Nombre"
	colAmount        = "Monto"
)

type historicRow struct {
	gjson.Result
}

func parseHistoricRow(raw []byte) historicRow {
	return historicRow{gjson.ParseBytes(raw)}
}

func (r historicRow) text(column string) string {
	return transform.Text(r.Get(column))
}

// HistoricContracts maps one row of the historic contracts export.
func HistoricContracts(raw []byte, _ transform.Options) (transform.Output, error) {
	row := parseHistoricRow(raw)

	nog := row.text(colNOG)
	if nog == "" {
		return nil, transform.Drop(ErrMissingNOG)
	}

	description := row.text(colDescription)
	entity := row.text(colEntity)

	contract := models.Contract{
		ID:            identity.ContractID(Country, nog),
		Country:       Country,
		Title:         lexical.Truncate(lexical.NormalizeWhitespace(description), maxTitleLength),
		Description:   description,
		PublishDate:   parseDate(row.text(colPublished)),
		AwardDate:     parseDate(row.text(colAwarded)),
		Buyer:         entityRef(entity, Country),
		Supplier:      entityRef(row.text(colSupplier), Country),
		Currency:      Currency,
		Method:        row.text(colMethod),
		MethodDetails: row.text(colMethodDetails),
		Category:      row.text(colCategory),
		Status:        row.text(colStatus),
		URL:           tenderURL(nog),
		Source:        SourceHistoric,
	}

	if unit := row.text(colUnit); unit != "" {
		contract.ProcuringEntity = &models.PartyRef{ID: unitID(entity, unit), Name: unit, Country: Country}
	}

	if category := contract.Category; category != "" {
		contract.Categories = []string{category}
	}

	contract.SetAmount(transform.Money(row.Get(colAmount)))

	return transform.One(contract), nil
}

// HistoricBuyers maps a row to its buying entity and, when present, the purchasing
// unit that belongs to it.
func HistoricBuyers(raw []byte, _ transform.Options) (transform.Output, error) {
	row := parseHistoricRow(raw)

	name := row.text(colEntity)
	if name == "" {
		return nil, transform.Drop(ErrMissingBuyer)
	}

	buyer := models.Entity{
		ID:             identity.GenerateEntityID(name, Country, ""),
		Name:           name,
		Country:        Country,
		Classification: row.text(colEntityType),
		Source:         SourceHistoric,
	}

	buyers := []models.Entity{buyer}

	if unit := row.text(colUnit); unit != "" {
		parent := buyer.Ref()

		buyers = append(buyers, models.Entity{
			ID:       unitID(name, unit),
			Name:     unit,
			Country:  Country,
			MemberOf: &parent,
			Source:   SourceHistoric,
		})
	}

	return transform.Many(buyers), nil
}

// HistoricSuppliers maps a row to its awarded supplier.
func HistoricSuppliers(raw []byte, _ transform.Options) (transform.Output, error) {
	row := parseHistoricRow(raw)

	name := row.text(colSupplier)
	if name == "" {
		return nil, transform.Drop(ErrMissingSupplier)
	}

	return transform.One(models.Entity{
		ID:         identity.GenerateEntityID(name, Country, ""),
		Name:       name,
		Identifier: row.text(colNIT),
		Country:    Country,
		Source:     SourceHistoric,
	}), nil
}
