package templates

import _ "embed"

//go:embed payment_slip.html
var PaymentSlip string
