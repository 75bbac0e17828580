package settlement

import (
	"context"
	"fmt"
	"math"

	"homevista/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

const checkoutCurrency = "usd"

// StripeGateway opens Stripe hosted checkout sessions. The success and
// cancel URLs round-trip the intent id so the verify callback can address
// the right record.
type StripeGateway struct {
	// Origin is the frontend base URL the provider redirects back to.
	Origin string
	// ServiceCharge is appended as an extra line item on every session.
	ServiceCharge float64
}

func (g *StripeGateway) CreateSession(ctx context.Context, intent *models.PaymentIntent) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(intent.Items)+1)
	for _, item := range intent.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(checkoutCurrency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(toCents(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(checkoutCurrency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String("Service Charges"),
			},
			UnitAmount: stripe.Int64(toCents(g.ServiceCharge)),
		},
		Quantity: stripe.Int64(1),
	})

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&paymentId=%s", g.Origin, intent.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&paymentId=%s", g.Origin, intent.ID)),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
