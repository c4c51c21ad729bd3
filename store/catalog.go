package store

import (
	"strings"

	"github.com/junaidrashid-git/stitchlink-api/models"
)

// CategoryAll matches every design in FilterDesigns.
const CategoryAll = "ALL"

// AddDesign puts d at the front of the catalog. Ids are not checked for
// uniqueness.
func (s *Store) AddDesign(d models.Design) {
	d = d.Clone()

	s.mu.Lock()
	s.designs = append([]models.Design{d}, s.designs...)
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeDesign, DesignID: d.ID})
}

func (s *Store) Designs() []models.Design {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDesigns(s.designs)
}

func (s *Store) Design(id string) (models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.designs {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return models.Design{}, ErrDesignNotFound
}

// FilterDesigns matches search against the title or any tag
// (case-insensitive) and category exactly. An empty category or
// CategoryAll matches everything.
func (s *Store) FilterDesigns(search, category string) []models.Design {
	term := strings.ToLower(search)
	out := []models.Design{}
	for _, d := range s.Designs() {
		if category != "" && category != CategoryAll && d.Category != category {
			continue
		}
		if term == "" || strings.Contains(strings.ToLower(d.Title), term) || tagMatches(d.Tags, term) {
			out = append(out, d)
		}
	}
	return out
}

func tagMatches(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// SearchInventory is the admin inventory search: title or category.
func (s *Store) SearchInventory(term string) []models.Design {
	term = strings.ToLower(term)
	out := []models.Design{}
	for _, d := range s.Designs() {
		if strings.Contains(strings.ToLower(d.Title), term) || strings.Contains(strings.ToLower(d.Category), term) {
			out = append(out, d)
		}
	}
	return out
}

// Categories lists distinct categories in catalog order.
func (s *Store) Categories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, d := range s.Designs() {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out
}
