// Package guatecompras maps the Guatemalan public procurement system's exports:
// the legacy OCDS feed, the historic flat contract rows, the OCDS releases and the
// supplier registry (proveedores).
package guatecompras

import (
	"errors"
	"strings"

	"procnorm/internal/identity"
	"procnorm/internal/models"
	"procnorm/pkg/lexical"
)

// Country and Currency are fixed for every Guatecompras record.
const (
	Country  = "GT"
	Currency = "GTQ"
)

// Source tags.
const (
	SourceHistoric    = "guatecompras_historico"
	SourceOCDS        = "guatecompras_ocds"
	SourceProveedores = "guatecompras_proveedores"
)

const nogURL = "https://www.guatecompras.gt/concursos/consultaConcurso.aspx?nog="

// Drop reasons.
var (
	ErrMissingNOG        = errors.New("missing NOG")
	ErrMissingBuyer      = errors.New("missing buyer entity")
	ErrMissingSupplier   = errors.New("missing supplier name")
	ErrTenderNotComplete = errors.New("tender status is not complete")
	ErrNoActiveAward     = errors.New("no active award")
	ErrMissingLegalName  = errors.New("missing legal name")
)

// unitID keys a purchasing unit by its parent entity as well, since unit names such
// as "Dirección Financiera" repeat across entities.
func unitID(parent, unit string) string {
	return identity.GenerateEntityID(parent+" "+unit, Country, "")
}

func entityRef(name, country string) models.PartyRef {
	if country == "" {
		country = Country
	}

	return models.PartyRef{
		ID:      identity.GenerateEntityID(name, country, Country),
		Name:    name,
		Country: country,
	}
}

// parseDate reads the formats Guatecompras mixes across exports.
func parseDate(s string) *string {
	if d := lexical.ParseSpanishDate(s); d != nil {
		return d
	}

	return lexical.ISODateTime(s)
}

// schemeCountry infers a supplier country from an identifier scheme such as "GT-NIT".
func schemeCountry(scheme string) string {
	prefix, _, found := strings.Cut(scheme, "-")
	if !found {
		return Country
	}

	code := strings.ToUpper(prefix)
	if lexical.IsCountryCode(code) {
		return code
	}

	return Country
}
