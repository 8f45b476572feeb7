package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/logger"
	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/scope"
)

// SearchKind tags a unified search result with its entity type
type SearchKind string

const (
	SearchKindLandlord SearchKind = "locador"
	SearchKindTenant   SearchKind = "locatario"
	SearchKindProperty SearchKind = "imovel"
	SearchKindContract SearchKind = "contrato"
)

// Relevance levels, highest first
const (
	RelevanceExact     = 3
	RelevanceName      = 2
	RelevanceSecondary = 1
)

// DefaultSearchGroupLimit caps each entity group when no limit is configured
const DefaultSearchGroupLimit = 25

// candidateFactor widens the per-group fetch. Repositories return candidates best
// match class first; the extra rows cover case differences in the title ordering.
const candidateFactor = 4

// SearchResult is one tagged match of the unified search
type SearchResult struct {
	Kind      SearchKind `json:"tipo"`
	ID        uint       `json:"id"`
	Title     string     `json:"titulo"`
	Subtitle  string     `json:"subtitulo"`
	Relevance int        `json:"relevancia"`
	CompanyID uint       `json:"empresa_id"`
}

// SearchService fans a term out to every entity repository and merges the groups
type SearchService struct {
	landlords  repository.LandlordRepositoryInterface
	tenants    repository.TenantRepositoryInterface
	properties repository.PropertyRepositoryInterface
	contracts  repository.ContractRepositoryInterface
	groupLimit int
}

// NewSearchService creates a new search service. A non-positive groupLimit uses DefaultSearchGroupLimit.
func NewSearchService(
	landlords repository.LandlordRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	properties repository.PropertyRepositoryInterface,
	contracts repository.ContractRepositoryInterface,
	groupLimit int,
) *SearchService {
	if groupLimit <= 0 {
		groupLimit = DefaultSearchGroupLimit
	}
	return &SearchService{
		landlords:  landlords,
		tenants:    tenants,
		properties: properties,
		contracts:  contracts,
		groupLimit: groupLimit,
	}
}

// searchTerm holds the forms of a term the relevance rules compare against
type searchTerm struct {
	raw    string
	lower  string
	digits string
	id     uint
}

func newSearchTerm(raw string) searchTerm {
	t := searchTerm{
		raw:    raw,
		lower:  strings.ToLower(raw),
		digits: repository.OnlyDigits(raw),
	}
	if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
		t.id = uint(id)
	}
	return t
}

func (t searchTerm) in(s string) bool {
	return strings.Contains(strings.ToLower(s), t.lower)
}

func (t searchTerm) isID(id uint) bool {
	return t.id != 0 && t.id == id
}

func (t searchTerm) isDigits(s string) bool {
	return t.digits != "" && s == t.digits
}

// Search returns the matches for term grouped in the order landlords, tenants,
// properties, contracts. Each group is ranked by relevance, then title, then id.
// A blank term matches nothing.
func (s *SearchService) Search(ctx context.Context, sc scope.Scope, term string) ([]SearchResult, error) {
	if !sc.Valid() {
		return nil, apperrors.ErrScopeMissing
	}
	term = strings.TrimSpace(term)
	results := []SearchResult{}
	if term == "" {
		return results, nil
	}
	t := newSearchTerm(term)
	limit := s.groupLimit * candidateFactor

	landlords, err := s.landlords.Search(term, sc, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search landlords: %w", err)
	}
	group := make([]SearchResult, 0, len(landlords))
	for _, l := range landlords {
		relevance := RelevanceSecondary
		switch {
		case t.isID(l.ID), t.isDigits(l.TaxID):
			relevance = RelevanceExact
		case t.in(l.Name):
			relevance = RelevanceName
		}
		group = append(group, SearchResult{
			Kind:      SearchKindLandlord,
			ID:        l.ID,
			Title:     l.Name,
			Subtitle:  joinNonEmpty(" - ", l.TaxID, l.City),
			Relevance: relevance,
			CompanyID: l.CompanyID,
		})
	}
	results = append(results, s.rank(group)...)

	tenants, err := s.tenants.Search(term, sc, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search tenants: %w", err)
	}
	group = make([]SearchResult, 0, len(tenants))
	for _, tn := range tenants {
		relevance := RelevanceSecondary
		switch {
		case t.isID(tn.ID), t.isDigits(tn.TaxID):
			relevance = RelevanceExact
		case t.in(tn.Name):
			relevance = RelevanceName
		}
		group = append(group, SearchResult{
			Kind:      SearchKindTenant,
			ID:        tn.ID,
			Title:     tn.Name,
			Subtitle:  joinNonEmpty(" - ", tn.TaxID, tn.City),
			Relevance: relevance,
			CompanyID: tn.CompanyID,
		})
	}
	results = append(results, s.rank(group)...)

	properties, err := s.properties.Search(term, sc, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	group = make([]SearchResult, 0, len(properties))
	for _, p := range properties {
		relevance := RelevanceSecondary
		switch {
		case t.isID(p.ID), p.RegistryCode != "" && p.RegistryCode == t.raw, t.isDigits(p.ZipCode):
			relevance = RelevanceExact
		case t.in(p.Address):
			relevance = RelevanceName
		}
		group = append(group, SearchResult{
			Kind:      SearchKindProperty,
			ID:        p.ID,
			Title:     joinNonEmpty(", ", p.Address, p.Number),
			Subtitle:  joinNonEmpty(" - ", p.District, p.City),
			Relevance: relevance,
			CompanyID: p.CompanyID,
		})
	}
	results = append(results, s.rank(group)...)

	contracts, err := s.contracts.Search(term, sc, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search contracts: %w", err)
	}
	group = make([]SearchResult, 0, len(contracts))
	for _, c := range contracts {
		var tenantName, tenantTaxID, address string
		if c.Tenant != nil {
			tenantName, tenantTaxID = c.Tenant.Name, c.Tenant.TaxID
		}
		if c.Property != nil {
			address = joinNonEmpty(", ", c.Property.Address, c.Property.Number)
		}
		relevance := RelevanceSecondary
		switch {
		case t.isID(c.ID), t.isDigits(tenantTaxID):
			relevance = RelevanceExact
		case t.in(tenantName):
			relevance = RelevanceName
		}
		group = append(group, SearchResult{
			Kind:      SearchKindContract,
			ID:        c.ID,
			Title:     joinNonEmpty(" - ", fmt.Sprintf("Contrato #%d", c.ID), tenantName),
			Subtitle:  address,
			Relevance: relevance,
			CompanyID: c.CompanyID,
		})
	}
	results = append(results, s.rank(group)...)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"scope":   sc.String(),
		"results": len(results),
	}).Debug("Unified search completed")

	return results, nil
}

// rank orders one group and applies the group cap
func (s *SearchService) rank(group []SearchResult) []SearchResult {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.Relevance != b.Relevance {
			return a.Relevance > b.Relevance
		}
		at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if at != bt {
			return at < bt
		}
		return a.ID < b.ID
	})
	if len(group) > s.groupLimit {
		group = group[:s.groupLimit]
	}
	return group
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
