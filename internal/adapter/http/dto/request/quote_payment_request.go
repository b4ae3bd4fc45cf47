package request

import "encoding/json"

// QuotePaymentCreateRequest is the payload for the deposit payment route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type QuotePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
