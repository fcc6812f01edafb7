package model

// User is the identity record produced by the identity provider.  The
// booking core only ever reads Name, Email and IsAdmin; it never
// enforces authorization itself.  Gating on IsAdmin is the HTTP
// layer's responsibility.
//
// Fields:
//  ID      – identifier assigned at login/signup time.
//  Email   – address the user authenticated with.
//  Name    – display name (derived from the email for plain logins).
//  IsAdmin – true only for the designated admin credential pair.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}
