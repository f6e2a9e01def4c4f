package service

import "github.com/MKhiriev/go-diner/models"

// CheckIdentity allows a request scoped to requested when it equals the
// authenticated claim email. An empty requested identity means no scoping
// was asked for and is allowed.
func CheckIdentity(claim models.Claim, requested string) error {
	if requested != "" && requested != claim.Email {
		return ErrForbidden
	}
	return nil
}
