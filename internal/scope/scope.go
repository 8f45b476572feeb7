// Package scope models the company partition every read and write runs under.
//
// A Scope is resolved once per request from the caller's credentials and is
// passed explicitly down to the repositories. The zero value is not a valid
// scope: repositories reject it instead of issuing an unfiltered query.
package scope

import "fmt"

// DefaultCompanyID is the company a non-privileged caller falls back to when
// its credentials carry no company.
const DefaultCompanyID uint = 1

// Scope is the resolved company partition of a caller
type Scope struct {
	companyID uint
	seeAll    bool
}

// ForCompany returns a scope restricted to a single company
func ForCompany(companyID uint) Scope {
	return Scope{companyID: companyID}
}

// Global returns an administrative scope that sees every company. Records
// created under it are still assigned to companyID.
func Global(companyID uint) Scope {
	return Scope{companyID: companyID, seeAll: true}
}

// Resolve builds the scope for a caller. A missing company id resolves to
// fallback (DefaultCompanyID when fallback is 0), never to an unscoped view.
func Resolve(companyID *uint, seeAll bool, fallback uint) Scope {
	if fallback == 0 {
		fallback = DefaultCompanyID
	}
	id := fallback
	if companyID != nil && *companyID != 0 {
		id = *companyID
	}
	return Scope{companyID: id, seeAll: seeAll}
}

// CompanyID returns the company new records are assigned to
func (s Scope) CompanyID() uint {
	return s.companyID
}

// SeesAll reports whether the caller may read every company's records
func (s Scope) SeesAll() bool {
	return s.seeAll
}

// Valid reports whether the scope was built through a constructor
func (s Scope) Valid() bool {
	return s.companyID != 0
}

// Allows reports whether a record owned by companyID is visible in this scope
func (s Scope) Allows(companyID uint) bool {
	if !s.Valid() {
		return false
	}
	return s.seeAll || s.companyID == companyID
}

func (s Scope) String() string {
	if s.seeAll {
		return fmt.Sprintf("company=%d (all companies)", s.companyID)
	}
	return fmt.Sprintf("company=%d", s.companyID)
}
