// Package session holds the state of one operator working through the warehouse
// screens: whether they are logged in, which page is open, the navigation history and
// the order currently being edited. The state is an explicit object owned by a caller;
// logging out tears it down.
//
// Example:
//
//	s, _ := session.NewSession(session.Credentials{LoginID: "admin", Password: "Password123!"})
//	if err := s.Login("admin", "Password123!"); err != nil {
//	    return err
//	}
//	_ = s.Navigate(session.PageDeliveries)
//	_ = s.OpenDelivery(7)
//
//	view, _ := session.NewOrderView(s, reader, validator, adder)
//	res, _ := view.Validate(ctx)
//	view.Cancel() // back to the deliveries list, order data untouched
package session
