package impl

import (
	"testing"
	"time"

	"agenda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureContacts() []entity.Contact {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	return []entity.Contact{
		{ID: "c3", Nombre: "Carlos", Telefono: 644555666, Email: "carlos@example.com", Action: "llamar", Created: base.Add(2 * time.Hour)},
		{ID: "c2", Nombre: "Beatriz", Telefono: 633444555, Email: "bea@example.com", Action: "email", Created: base.Add(time.Hour)},
		{ID: "c1", Nombre: "ana", Telefono: 622333444, Email: "ana@example.com", Action: "llamar", Created: base},
	}
}

func TestFilterContacts(t *testing.T) {
	contacts := fixtureContacts()

	t.Run("empty term keeps everything", func(t *testing.T) {
		assert.Len(t, filterContacts(contacts, ""), 3)
		assert.Len(t, filterContacts(contacts, "   "), 3)
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		filtered := filterContacts(contacts, "ANA")
		require.Len(t, filtered, 1)
		assert.Equal(t, "c1", filtered[0].ID)
	})

	t.Run("matches phone digits", func(t *testing.T) {
		filtered := filterContacts(contacts, "633444")
		require.Len(t, filtered, 1)
		assert.Equal(t, "c2", filtered[0].ID)
	})

	t.Run("matches across fields", func(t *testing.T) {
		assert.Len(t, filterContacts(contacts, "llamar"), 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, filterContacts(contacts, "zzz"))
	})
}

func TestSortContacts(t *testing.T) {
	contacts := fixtureContacts()

	t.Run("empty column keeps incoming order", func(t *testing.T) {
		sorted := sortContacts(contacts, "", "asc")
		assert.Equal(t, "c3", sorted[0].ID)
	})

	t.Run("by name ascending is case-insensitive", func(t *testing.T) {
		sorted := sortContacts(contacts, "nombre", "asc")
		assert.Equal(t, []string{"c1", "c2", "c3"}, contactIDs(sorted))
	})

	t.Run("by name descending", func(t *testing.T) {
		sorted := sortContacts(contacts, "nombre", "desc")
		assert.Equal(t, []string{"c3", "c2", "c1"}, contactIDs(sorted))
	})

	t.Run("by phone", func(t *testing.T) {
		sorted := sortContacts(contacts, "telefono", "asc")
		assert.Equal(t, []string{"c1", "c2", "c3"}, contactIDs(sorted))
	})

	t.Run("unknown column keeps incoming order", func(t *testing.T) {
		sorted := sortContacts(contacts, "bogus", "asc")
		assert.Equal(t, contactIDs(contacts), contactIDs(sorted))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := contactIDs(contacts)
		_ = sortContacts(contacts, "nombre", "asc")
		assert.Equal(t, before, contactIDs(contacts))
	})
}

func TestPaginateContacts(t *testing.T) {
	contacts := fixtureContacts()

	t.Run("first page window", func(t *testing.T) {
		page := paginateContacts(contacts, 1, 2)
		assert.Equal(t, []string{"c3", "c2"}, contactIDs(page))
	})

	t.Run("last partial page", func(t *testing.T) {
		page := paginateContacts(contacts, 2, 2)
		assert.Equal(t, []string{"c1"}, contactIDs(page))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		assert.Empty(t, paginateContacts(contacts, 5, 2))
	})

	t.Run("zero page size keeps everything", func(t *testing.T) {
		assert.Len(t, paginateContacts(contacts, 1, 0), 3)
	})
}

// Filtering then sorting must give the same result as sorting then filtering;
// the grid applies them as independent transforms.
func TestFilterSortCommute(t *testing.T) {
	contacts := fixtureContacts()

	a := sortContacts(filterContacts(contacts, "llamar"), "nombre", "asc")
	b := filterContacts(sortContacts(contacts, "nombre", "asc"), "llamar")

	assert.Equal(t, contactIDs(a), contactIDs(b))
}

func contactIDs(contacts []entity.Contact) []string {
	ids := make([]string, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}

	return ids
}
