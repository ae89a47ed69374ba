package firestoredb

import (
	"testing"
	"time"

	"agenda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The guarded create merges into the users/{uid} document with MergeAll,
// which the Firestore client only accepts with map data. These tests pin the
// map shape so the transactional write never regresses to passing the struct.
func TestProfileWriteData_IsMapKeyedByFirestoreTags(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	profile := &entity.Profile{
		Nombre:    "Ana",
		Apellido:  "García",
		CodPostal: 28001,
		Ciudad:    "Madrid",
		Movil:     622333444,
		Email:     "ana@example.com",
		Pais:      "España",
		Created:   created,
		Updated:   created,
	}

	data := profileWriteData(profile)

	require.IsType(t, map[string]any{}, data)
	assert.Equal(t, map[string]any{
		"nombre":     "Ana",
		"apellido":   "García",
		"cod_postal": 28001,
		"ciudad":     "Madrid",
		"movil":      int64(622333444),
		"email":      "ana@example.com",
		"pais":       "España",
		"created":    created,
		"updated":    created,
	}, data)
}

func TestProfileWriteData_AvatarOnlyWhenSet(t *testing.T) {
	profile := &entity.Profile{Nombre: "Ana"}

	_, hasAvatar := profileWriteData(profile)["avatarUrl"]
	assert.False(t, hasAvatar, "an empty avatar must not blank a stored one on merge")

	profile.AvatarURL = "https://cdn.example.com/uid-1/avatar.png"
	assert.Equal(t, profile.AvatarURL, profileWriteData(profile)["avatarUrl"])
}
