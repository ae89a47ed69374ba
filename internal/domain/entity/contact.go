// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Contact is a single entry in a user's personal contact list. Contacts live
// in the users/{uid}/contacts subcollection, so ownership is implied by the
// document path and never stored on the document itself.
//
// Field names follow the wire format of the original application.
type Contact struct {
	ID       string    `firestore:"-" json:"id"` // Document ID, assigned by Firestore on creation and immutable afterwards.
	Nombre   string    `firestore:"nombre" json:"nombre"`
	Telefono int64     `firestore:"telefono" json:"telefono"`
	Email    string    `firestore:"email" json:"email"`
	Action   string    `firestore:"action" json:"action"` // Free-text action label shown in the contact grid.
	Created  time.Time `firestore:"created" json:"created"`
	Updated  time.Time `firestore:"updated" json:"updated"`
}
