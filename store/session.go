package store

import "github.com/junaidrashid-git/stitchlink-api/models"

// Login signs in a mock user. The password is not checked and any email is
// accepted; the role comes from models.ClassifyRole. Cart and orders are
// left alone.
//
// The error result is reserved for a real credential check and is always
// nil today.
func (s *Store) Login(email, password string) (models.User, error) {
	_ = password

	user := models.User{
		ID:    s.newID("user"),
		Name:  models.DisplayNameFromEmail(email),
		Email: email,
		Role:  models.ClassifyRole(email),
	}

	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeSession})
	return user, nil
}

// Signup creates and signs in a CUSTOMER. Self-registration never grants
// ADMIN, whatever the email says.
func (s *Store) Signup(name, email, password string) (models.User, error) {
	_ = password

	user := models.User{
		ID:    s.newID("user"),
		Name:  name,
		Email: email,
		Role:  models.RoleCustomer,
	}

	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeSession})
	return user, nil
}

// Logout ends the session. The cart and notifications go with it; orders
// stay so an admin signing in next still sees them.
func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.cart = nil
	s.notifications = nil
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeSession})
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}
