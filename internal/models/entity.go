package models

import "slices"

// Address holds the populated parts of a postal address.
type Address struct {
	Street     string `json:"street,omitempty"`
	Locality   string `json:"locality,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsZero reports whether no part of the address is populated.
func (a Address) IsZero() bool {
	return a == Address{}
}

// ContactPoint holds the populated parts of a contact.
type ContactPoint struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	URL       string `json:"url,omitempty"`
}

// IsZero reports whether no part of the contact point is populated.
func (c ContactPoint) IsZero() bool {
	return c == ContactPoint{}
}

// Entity is a canonical buyer or supplier.
type Entity struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	OtherNames     []string      `json:"other_names,omitempty"`
	Identifier     string        `json:"identifier"`
	Country        string        `json:"country"`
	Address        *Address      `json:"address,omitempty"`
	ContactPoint   *ContactPoint `json:"contactPoint,omitempty"`
	Classification string        `json:"classification,omitempty"`
	MemberOf       *PartyRef     `json:"member_of,omitempty"`
	Source         string        `json:"source"`
	UpdatedDate    *string       `json:"updated_date,omitempty"`
}

// RecordID returns the entity id.
func (e Entity) RecordID() string {
	return e.ID
}

// DisplayName returns the entity name.
func (e Entity) DisplayName() string {
	return e.Name
}

// Ref builds the PartyRef other records use to point at e.
func (e Entity) Ref() PartyRef {
	return PartyRef{ID: e.ID, Name: e.Name, Country: e.Country}
}

// AddOtherName records an alternative name. Blanks, the primary name and repeats are ignored.
func (e *Entity) AddOtherName(name string) {
	if name == "" || name == e.Name || slices.Contains(e.OtherNames, name) {
		return
	}

	e.OtherNames = append(e.OtherNames, name)
}

// SetAddress stores a unless it is empty.
func (e *Entity) SetAddress(a Address) {
	if !a.IsZero() {
		e.Address = &a
	}
}

// SetContactPoint stores c unless it is empty.
func (e *Entity) SetContactPoint(c ContactPoint) {
	if !c.IsZero() {
		e.ContactPoint = &c
	}
}
