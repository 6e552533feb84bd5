package session

import (
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// Page identifies one screen of the application.
type Page int

const (
	PageUnknown Page = iota
	PageLogin
	PageSignUp
	PageForgotPassword
	PageDashboard
	PageOperations
	PageStock
	PageMoveHistory
	PageStockLedger
	PageSettings
	PageWarehouse
	PageLocation
	PageReceipts
	PageReceiptDetails
	PageDeliveries
	PageDeliveryDetails
)

var pageNames = map[Page]string{
	PageLogin:           "login",
	PageSignUp:          "signup",
	PageForgotPassword:  "forgot-password",
	PageDashboard:       "dashboard",
	PageOperations:      "operations",
	PageStock:           "stock",
	PageMoveHistory:     "move-history",
	PageStockLedger:     "stock-ledger",
	PageSettings:        "settings",
	PageWarehouse:       "warehouse",
	PageLocation:        "location",
	PageReceipts:        "receipts",
	PageReceiptDetails:  "receipt-details",
	PageDeliveries:      "deliveries",
	PageDeliveryDetails: "delivery-details",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePage resolves a page name as returned by String.
func ParsePage(name string) (Page, error) {
	for page, pageName := range pageNames {
		if pageName == name {
			return page, nil
		}
	}
	return PageUnknown, errs.NewValueIsInvalidErrorWithCause("page is invalid", fmt.Errorf("%q is not a page", name))
}

func (p Page) Validate() error {
	if _, ok := pageNames[p]; !ok {
		return errs.NewValueIsOutOfRangeError("page", int(p), int(PageLogin), int(PageDeliveryDetails))
	}
	return nil
}

// IsPublic reports whether the page is reachable without logging in.
func (p Page) IsPublic() bool {
	return p == PageLogin || p == PageSignUp || p == PageForgotPassword
}

// IsDetails reports whether the page shows a single order.
func (p Page) IsDetails() bool {
	return p == PageReceiptDetails || p == PageDeliveryDetails
}

// ListPage returns the list screen of the kind.
func ListPage(kind order.Kind) Page {
	if kind == order.Receipt {
		return PageReceipts
	}
	return PageDeliveries
}

// DetailsPage returns the details screen of the kind.
func DetailsPage(kind order.Kind) Page {
	if kind == order.Receipt {
		return PageReceiptDetails
	}
	return PageDeliveryDetails
}
