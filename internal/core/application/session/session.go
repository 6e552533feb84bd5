package session

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

var (
	ErrCredentialsAreInvalid = errors.New("login id or password is incorrect")
	ErrLoginIsRequired       = errors.New("login is required")
	ErrNoOrderIsOpen         = errors.New("no order is open")
)

// Credentials is the single operator account accepted by Login.
type Credentials struct {
	LoginID  string
	Password string
}

func (c Credentials) Validate() error {
	var errList []error
	if strings.TrimSpace(c.LoginID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("login id"))
	}
	if c.Password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	return errors.Join(errList...)
}

// OrderRef identifies the order open on a details page.
type OrderRef struct {
	Kind order.Kind
	ID   int
}

func (r OrderRef) Reference() string {
	return order.FormatReference(r.Kind, r.ID)
}

// Session is the state of one operator. It is not safe for concurrent use.
type Session struct {
	credentials Credentials

	user      string
	loggedIn  bool
	current   Page
	openOrder *OrderRef
	history   []visit
}

// visit is a page left behind, with the order it showed.
type visit struct {
	page  Page
	order *OrderRef
}

// NewSession starts a logged out session on the login page.
func NewSession(credentials Credentials) (*Session, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	s := &Session{credentials: credentials}
	s.reset()
	return s, nil
}

// Login checks the credentials and opens the dashboard. Empty fields are reported
// before the credentials are compared.
func (s *Session) Login(loginID string, password string) error {
	attempt := Credentials{LoginID: loginID, Password: password}
	if err := attempt.Validate(); err != nil {
		return err
	}

	idMatch := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(loginID)), []byte(s.credentials.LoginID))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password))
	if idMatch&passwordMatch != 1 {
		return ErrCredentialsAreInvalid
	}

	s.loggedIn = true
	s.user = s.credentials.LoginID
	s.history = s.history[:0]
	s.openOrder = nil
	s.current = PageDashboard
	return nil
}

// Logout tears the session down to its initial state.
func (s *Session) Logout() {
	s.reset()
}

func (s *Session) IsLoggedIn() bool {
	return s.loggedIn
}

func (s *Session) User() string {
	return s.user
}

func (s *Session) Current() Page {
	return s.current
}

// OpenOrder returns the order shown on the current details page.
func (s *Session) OpenOrder() (OrderRef, bool) {
	if s.openOrder == nil {
		return OrderRef{}, false
	}
	return *s.openOrder, true
}

// Navigate moves to a page that does not need an order. Details pages are reached
// through OpenReceipt or OpenDelivery.
func (s *Session) Navigate(page Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if page.IsDetails() {
		return fmt.Errorf("%w: %w", errs.NewValueIsInvalidError("page"), ErrNoOrderIsOpen)
	}
	if !page.IsPublic() && !s.loggedIn {
		return ErrLoginIsRequired
	}

	s.push(page, nil)
	return nil
}

func (s *Session) OpenReceipt(id int) error {
	return s.Open(order.Receipt, id)
}

func (s *Session) OpenDelivery(id int) error {
	return s.Open(order.Delivery, id)
}

// Open shows the details page of an order.
func (s *Session) Open(kind order.Kind, id int) error {
	if !s.loggedIn {
		return ErrLoginIsRequired
	}
	if err := kind.Validate(); err != nil {
		return err
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	s.push(DetailsPage(kind), &OrderRef{Kind: kind, ID: id})
	return nil
}

// Back returns to the previous page and the order it showed, if any.
func (s *Session) Back() Page {
	if len(s.history) == 0 {
		return s.current
	}

	last := len(s.history) - 1
	s.current = s.history[last].page
	s.openOrder = s.history[last].order
	s.history = s.history[:last]
	return s.current
}

// close leaves the open order for its list page without touching any order data.
func (s *Session) close() Page {
	ref, ok := s.OpenOrder()
	if !ok {
		return s.current
	}

	s.push(ListPage(ref.Kind), nil)
	return s.current
}

func (s *Session) push(page Page, ref *OrderRef) {
	if s.current != page || !sameOrder(s.openOrder, ref) {
		s.history = append(s.history, visit{page: s.current, order: s.openOrder})
	}
	s.current = page
	s.openOrder = ref
}

func sameOrder(a, b *OrderRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *Session) reset() {
	s.user = ""
	s.loggedIn = false
	s.current = PageLogin
	s.history = nil
	s.openOrder = nil
}
