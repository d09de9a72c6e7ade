// File: models/outlet.go
package models

// Outlet is a point of sale tracked by the field team.
type Outlet struct {
	ID       string `bson:"_id" firestore:"-" json:"id"`
	Name     string `bson:"name" firestore:"name" json:"name"`
	Province string `bson:"province" firestore:"province" json:"province,omitempty"`
	Project  string `bson:"project" firestore:"project" json:"project,omitempty"`
	Active   bool   `bson:"active" firestore:"active" json:"active"`
}
