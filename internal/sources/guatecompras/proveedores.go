package guatecompras

import (
	"strings"

	"github.com/tidwall/gjson"

	"procnorm/internal/identity"
	"procnorm/internal/models"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

// Supplier registry labels, matched exactly.
const (
	lblLegalName          = "Nombre o razón social"
	lblNIT                = "NIT"
	lblTradeName          = "Nombre comercial"
	lblStatus             = "Estado del proveedor"
	lblEconomicActivity   = "Actividad económica"
	lblOrganizationType   = "Tipo de organización"
	lblProviderType       = "Tipo de proveedor"
	lblSystemAccess       = "¿Tiene acceso al sistema?"
	lblRGAE               = "Inscripción en RGAE"
	lblStateContractor    = "¿Es contratista del Estado?"
	lblTaxRegime          = "Régimen tributario"
	lblFoundingDate       = "Fecha de constitución"
	lblRegistrationDate   = "Fecha de inscripción"
	lblUpdatedDate        = "Fecha de última actualización"
	lblRegistryNumber     = "Número de registro mercantil"
	lblRegistryFolio      = "Folio"
	lblRegistryBook       = "Libro"
	lblAuthorizedCapital  = "Capital autorizado"
	lblAddress            = "Dirección"
	lblMunicipality       = "Municipio"
	lblDepartment         = "Departamento"
	lblCountry            = "País"
	lblPhones             = "Teléfonos"
	lblEmail              = "Correo electrónico"
	lblWebsite            = "Página web"
	lblNotaryName         = "Nombre del notario"
	lblDeedNumber         = "Número de escritura"
	lblDeedDate           = "Fecha de la escritura"
	lblRepresentative     = "Representante legal"
	lblRepresentativeNIT  = "NIT del representante legal"
	lblAppointmentDate    = "Fecha de nombramiento"
	lblAppointmentExpires = "Vigencia del nombramiento"
)

// Phrases whose exact presence turns a label into true.
const (
	phraseSystemAccess    = "Sí tiene acceso al sistema"
	phraseRGAE            = "Inscrito en el RGAE"
	phraseStateContractor = "Sí es contratista del Estado"
	phraseSmallTaxpayer   = "Pequeño contribuyente"
)

const companyMarker = "SOCIEDAD"

// Proveedor is a supplier registry record.
type Proveedor struct {
	models.Entity
	Status             string              `json:"status"`
	EconomicActivity   string              `json:"economic_activity"`
	OrganizationType   string              `json:"organization_type"`
	ProviderType       string              `json:"provider_type"`
	SystemAccess       bool                `json:"system_access"`
	RGAERegistered     bool                `json:"rgae_registered"`
	StateContractor    bool                `json:"state_contractor"`
	SmallTaxpayer      bool                `json:"small_taxpayer"`
	FoundingDate       *string             `json:"founding_date"`
	RegistrationDate   *string             `json:"registration_date"`
	MercantileRegistry *MercantileRegistry `json:"mercantile_registry,omitempty"`
	AuthorizedCapital  *float64            `json:"authorized_capital,omitempty"`
	Notary             *Notary             `json:"notary,omitempty"`
	Representative     *Representative     `json:"legal_representative,omitempty"`
}

// MercantileRegistry locates the company in the mercantile registry.
type MercantileRegistry struct {
	Number string `json:"number,omitempty"`
	Folio  string `json:"folio,omitempty"`
	Book   string `json:"book,omitempty"`
}

// Notary is the notary who authorized the incorporation deed.
type Notary struct {
	Name       string  `json:"name,omitempty"`
	DeedNumber string  `json:"deed_number,omitempty"`
	DeedDate   *string `json:"deed_date,omitempty"`
}

// Representative is the supplier's legal representative.
type Representative struct {
	Name            string  `json:"name,omitempty"`
	Identifier      string  `json:"identifier,omitempty"`
	AppointmentDate *string `json:"appointment_date,omitempty"`
	ValidUntil      *string `json:"valid_until,omitempty"`
}

// Proveedores maps a label-keyed supplier registry record. Unknown labels are ignored.
func Proveedores(raw []byte, _ transform.Options) (transform.Output, error) {
	labels := make(map[string]string)

	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		labels[strings.TrimSpace(key.String())] = transform.Text(value)
		return true
	})

	legalName := labels[lblLegalName]
	if legalName == "" {
		return nil, transform.Drop(ErrMissingLegalName)
	}

	name := ParseLegalName(legalName)

	country := Country
	if resolved := lexical.ResolveCountryName(labels[lblCountry]); lexical.IsCountryCode(resolved) {
		country = resolved
	}

	p := Proveedor{
		Entity: models.Entity{
			ID:          identity.GenerateEntityID(name, country, Country),
			Name:        name,
			Identifier:  labels[lblNIT],
			Country:     country,
			Source:      SourceProveedores,
			UpdatedDate: parseDate(labels[lblUpdatedDate]),
		},
		Status:           labels[lblStatus],
		EconomicActivity: labels[lblEconomicActivity],
		OrganizationType: labels[lblOrganizationType],
		ProviderType:     labels[lblProviderType],
		SystemAccess:     labels[lblSystemAccess] == phraseSystemAccess,
		RGAERegistered:   labels[lblRGAE] == phraseRGAE,
		StateContractor:  labels[lblStateContractor] == phraseStateContractor,
		SmallTaxpayer:    labels[lblTaxRegime] == phraseSmallTaxpayer,
		FoundingDate:     parseDate(labels[lblFoundingDate]),
		RegistrationDate: parseDate(labels[lblRegistrationDate]),
	}

	p.AddOtherName(legalName)
	p.AddOtherName(labels[lblTradeName])

	p.SetAddress(models.Address{
		Street:   labels[lblAddress],
		Locality: labels[lblMunicipality],
		Region:   labels[lblDepartment],
		Country:  labels[lblCountry],
	})

	p.SetContactPoint(models.ContactPoint{
		Email:     labels[lblEmail],
		Telephone: labels[lblPhones],
		URL:       labels[lblWebsite],
	})

	registry := MercantileRegistry{
		Number: labels[lblRegistryNumber],
		Folio:  labels[lblRegistryFolio],
		Book:   labels[lblRegistryBook],
	}
	if registry != (MercantileRegistry{}) {
		p.MercantileRegistry = &registry
	}

	if capital, ok := models.Amount(lexical.ParseMonetary(labels[lblAuthorizedCapital])); ok {
		p.AuthorizedCapital = &capital
	}

	notary := Notary{
		Name:       labels[lblNotaryName],
		DeedNumber: labels[lblDeedNumber],
		DeedDate:   parseDate(labels[lblDeedDate]),
	}
	if notary.Name != "" || notary.DeedNumber != "" || notary.DeedDate != nil {
		p.Notary = &notary
	}

	rep := Representative{
		Identifier:      labels[lblRepresentativeNIT],
		AppointmentDate: parseDate(labels[lblAppointmentDate]),
		ValidUntil:      parseDate(labels[lblAppointmentExpires]),
	}
	if repName := labels[lblRepresentative]; repName != "" {
		rep.Name = ParseLegalName(repName)
	}
	if rep.Name != "" || rep.Identifier != "" {
		p.Representative = &rep
	}

	return transform.One(p), nil
}

// ParseLegalName reorders the registry's "LAST1,LAST2,LAST3,FIRST1,FIRST2" person
// names into natural order, skipping empty parts. Company names containing
// "SOCIEDAD" and names in any other form are returned with whitespace normalized.
func ParseLegalName(raw string) string {
	name := lexical.NormalizeWhitespace(raw)
	if strings.Contains(strings.ToUpper(name), companyMarker) || strings.Count(name, ",") != 4 {
		return name
	}

	parts := strings.Split(name, ",")
	ordered := append(parts[3:5:5], parts[0:3]...)

	words := make([]string, 0, len(ordered))
	for _, part := range ordered {
		if part = strings.TrimSpace(part); part != "" {
			words = append(words, part)
		}
	}

	return strings.Join(words, " ")
}
