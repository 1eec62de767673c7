// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contact

// Field names used as confidence keys and in serialized output.
const (
	FieldFullName    = "fullName"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldTitle       = "title"
	FieldCompany     = "company"
	FieldEmail       = "email"
	FieldMobilePhone = "mobilePhone"
	FieldWorkPhone   = "workPhone"
	FieldHomePhone   = "homePhone"
	FieldLinkedIn    = "linkedIn"
	FieldWebsite     = "website"
	FieldAddress     = "address"
	FieldStreet      = "street"
	FieldCity        = "city"
	FieldState       = "state"
	FieldZipCode     = "zipCode"
	FieldCountry     = "country"
	FieldHeadline    = "headline"
	FieldLocation    = "location"
)

// FieldOrder lists every extractable field in presentation order.
var FieldOrder = []string{
	FieldFullName, FieldFirstName, FieldLastName,
	FieldTitle, FieldCompany, FieldHeadline,
	FieldEmail, FieldMobilePhone, FieldWorkPhone, FieldHomePhone,
	FieldLinkedIn, FieldWebsite,
	FieldAddress, FieldStreet, FieldCity, FieldState, FieldZipCode, FieldCountry,
	FieldLocation,
}

// Record is the structured contact produced for one block of text.
// An empty string means the field was not found.
type Record struct {
	FullName  string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" yaml:"lastName,omitempty"`

	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Company  string `json:"company,omitempty" yaml:"company,omitempty"`
	Headline string `json:"headline,omitempty" yaml:"headline,omitempty"`

	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	MobilePhone string `json:"mobilePhone,omitempty" yaml:"mobilePhone,omitempty"`
	WorkPhone   string `json:"workPhone,omitempty" yaml:"workPhone,omitempty"`
	HomePhone   string `json:"homePhone,omitempty" yaml:"homePhone,omitempty"`

	LinkedIn string `json:"linkedIn,omitempty" yaml:"linkedIn,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`

	Address  string `json:"address,omitempty" yaml:"address,omitempty"`
	Street   string `json:"street,omitempty" yaml:"street,omitempty"`
	City     string `json:"city,omitempty" yaml:"city,omitempty"`
	State    string `json:"state,omitempty" yaml:"state,omitempty"`
	ZipCode  string `json:"zipCode,omitempty" yaml:"zipCode,omitempty"`
	Country  string `json:"country,omitempty" yaml:"country,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	RawText    string             `json:"rawText,omitempty" yaml:"rawText,omitempty"`
	Confidence map[string]float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// Get returns the value of the named field, or "" for unknown names.
func (r *Record) Get(field string) string {
	if p := r.fieldPtr(field); p != nil {
		return *p
	}
	return ""
}

// Set assigns the named field. Unknown names are ignored.
func (r *Record) Set(field, value string) {
	if p := r.fieldPtr(field); p != nil {
		*p = value
	}
}

// Populated returns the names of all non-empty fields in FieldOrder.
func (r *Record) Populated() []string {
	var fields []string
	for _, f := range FieldOrder {
		if r.Get(f) != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Clone returns an independent copy, safe for an editor to mutate.
func (r Record) Clone() Record {
	c := r
	if r.Confidence != nil {
		c.Confidence = make(map[string]float64, len(r.Confidence))
		for k, v := range r.Confidence {
			c.Confidence[k] = v
		}
	}
	return c
}

func (r *Record) fieldPtr(field string) *string {
	switch field {
	case FieldFullName:
		return &r.FullName
	case FieldFirstName:
		return &r.FirstName
	case FieldLastName:
		return &r.LastName
	case FieldTitle:
		return &r.Title
	case FieldCompany:
		return &r.Company
	case FieldHeadline:
		return &r.Headline
	case FieldEmail:
		return &r.Email
	case FieldMobilePhone:
		return &r.MobilePhone
	case FieldWorkPhone:
		return &r.WorkPhone
	case FieldHomePhone:
		return &r.HomePhone
	case FieldLinkedIn:
		return &r.LinkedIn
	case FieldWebsite:
		return &r.Website
	case FieldAddress:
		return &r.Address
	case FieldStreet:
		return &r.Street
	case FieldCity:
		return &r.City
	case FieldState:
		return &r.State
	case FieldZipCode:
		return &r.ZipCode
	case FieldCountry:
		return &r.Country
	case FieldLocation:
		return &r.Location
	}
	return nil
}
