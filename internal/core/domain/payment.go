package domain

type PaymentResult string

const (
	PaymentUnresolved PaymentResult = "UNRESOLVED"
	PaymentSucceeded  PaymentResult = "SUCCEEDED"
	PaymentFailed     PaymentResult = "FAILED"
)

// PaymentIntent lives for exactly one charge attempt and is never stored.
type PaymentIntent struct {
	ClientSecret string
	AmountCents  int64
	Currency     string
	Outcome      PaymentOutcome
}

type PaymentOutcome struct {
	Result PaymentResult
	Reason string
}

func Succeeded() PaymentOutcome {
	return PaymentOutcome{Result: PaymentSucceeded}
}

func Failed(reason string) PaymentOutcome {
	return PaymentOutcome{Result: PaymentFailed, Reason: reason}
}

func (o PaymentOutcome) IsSucceeded() bool {
	return o.Result == PaymentSucceeded
}

// Err converts a non-successful outcome into a *PaymentFailedError.
func (o PaymentOutcome) Err() error {
	if o.IsSucceeded() {
		return nil
	}
	reason := o.Reason
	if reason == "" {
		reason = "payment was not completed"
	}
	return &PaymentFailedError{Reason: reason}
}

// BillingDetails is the minimal metadata handed to the payment SDK.
type BillingDetails struct {
	Email string
	Name  string
}
