package entity

import "time"

// Profile holds the personal data a user maintains about themselves. There is
// at most one profile per user, stored on the uid-keyed users/{uid} document;
// the presence of the Created stamp is what distinguishes a saved profile
// from the bare user document written on first login.
type Profile struct {
	Nombre    string    `firestore:"nombre" json:"nombre"`
	Apellido  string    `firestore:"apellido" json:"apellido"`
	CodPostal int       `firestore:"cod_postal" json:"cod_postal"`
	Ciudad    string    `firestore:"ciudad" json:"ciudad"`
	Movil     int64     `firestore:"movil" json:"movil"`
	Email     string    `firestore:"email" json:"email"`
	Pais      string    `firestore:"pais" json:"pais"`
	AvatarURL string    `firestore:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Created   time.Time `firestore:"created" json:"created"`
	Updated   time.Time `firestore:"updated" json:"updated"`
}
