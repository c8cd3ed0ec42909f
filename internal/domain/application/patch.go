package application

import "realname-backend/pkg/identity"

// ResubmitPatch carries the fields a customer may change on resubmission.
// Nil means "keep the stored value".
type ResubmitPatch struct {
	Name           *string
	Gender         *Gender
	DocumentType   *identity.DocumentType
	DocumentNumber *string
	Phone          *string
	Address        *string
	PhotoFrontURL  *string
	PhotoBackURL   *string
}

// Apply copies the patched fields onto app and reports which ones actually
// differed from the stored values. A patch that changes nothing returns an
// empty slice and leaves app untouched.
func (p ResubmitPatch) Apply(app *Application) []string {
	var changed []string
	if p.Name != nil && *p.Name != app.Name {
		app.Name = *p.Name
		changed = append(changed, "name")
	}
	if p.Gender != nil && *p.Gender != app.Gender {
		app.Gender = *p.Gender
		changed = append(changed, "gender")
	}
	if p.DocumentType != nil && *p.DocumentType != app.DocumentType {
		app.DocumentType = *p.DocumentType
		changed = append(changed, "document_type")
	}
	if p.DocumentNumber != nil && *p.DocumentNumber != app.DocumentNumber {
		app.DocumentNumber = *p.DocumentNumber
		changed = append(changed, "document_number")
	}
	if p.Phone != nil && *p.Phone != app.Phone {
		app.Phone = *p.Phone
		changed = append(changed, "phone")
	}
	if p.Address != nil && *p.Address != app.Address {
		app.Address = *p.Address
		changed = append(changed, "address")
	}
	if p.PhotoFrontURL != nil && *p.PhotoFrontURL != app.PhotoFrontURL {
		app.PhotoFrontURL = *p.PhotoFrontURL
		changed = append(changed, "photo_front_url")
	}
	if p.PhotoBackURL != nil && *p.PhotoBackURL != app.PhotoBackURL {
		app.PhotoBackURL = *p.PhotoBackURL
		changed = append(changed, "photo_back_url")
	}
	return changed
}
