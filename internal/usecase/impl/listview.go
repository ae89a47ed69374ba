package impl

import (
	"sort"
	"strconv"
	"strings"

	"agenda/internal/domain/entity"
)

// The contact grid applies three independent view transforms: free-text
// filter, column sort and page windowing. Each one is pure and the
// composition is order-independent for a fixed dataset as long as the filter
// runs before windowing.

// filterContacts keeps contacts whose composite of displayed fields contains
// the term, case-insensitively. An empty term keeps everything.
func filterContacts(contacts []entity.Contact, term string) []entity.Contact {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return contacts
	}

	filtered := make([]entity.Contact, 0, len(contacts))
	for _, contact := range contacts {
		composite := strings.ToLower(
			contact.Nombre + " " + strconv.FormatInt(contact.Telefono, 10) + " " + contact.Email + " " + contact.Action,
		)
		if strings.Contains(composite, term) {
			filtered = append(filtered, contact)
		}
	}

	return filtered
}

// sortContacts returns a sorted copy. An empty column keeps the incoming
// order (created descending, as delivered by the repository). The sort is
// stable so equal keys preserve that order.
func sortContacts(contacts []entity.Contact, column, dir string) []entity.Contact {
	if column == "" {
		return contacts
	}

	sorted := make([]entity.Contact, len(contacts))
	copy(sorted, contacts)

	less := lessFunc(column)
	if less == nil {
		return contacts
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == "desc" {
			return less(sorted[j], sorted[i])
		}

		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFunc(column string) func(a, b entity.Contact) bool {
	switch column {
	case "nombre":
		return func(a, b entity.Contact) bool {
			return strings.ToLower(a.Nombre) < strings.ToLower(b.Nombre)
		}
	case "telefono":
		return func(a, b entity.Contact) bool { return a.Telefono < b.Telefono }
	case "email":
		return func(a, b entity.Contact) bool {
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		}
	case "action":
		return func(a, b entity.Contact) bool { return a.Action < b.Action }
	case "created":
		return func(a, b entity.Contact) bool { return a.Created.Before(b.Created) }
	case "updated":
		return func(a, b entity.Contact) bool { return a.Updated.Before(b.Updated) }
	default:
		return nil
	}
}

// paginateContacts returns the 1-based page window. A page past the end is
// empty rather than an error, matching paginator behavior.
func paginateContacts(contacts []entity.Contact, page, pageSize int) []entity.Contact {
	if pageSize <= 0 {
		return contacts
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(contacts) {
		return []entity.Contact{}
	}

	end := start + pageSize
	if end > len(contacts) {
		end = len(contacts)
	}

	return contacts[start:end]
}
