package schema

// salesReport describes the "sales" (payments and refunds) export.
var salesReport = &Report{
	Kind: Sales,
	Columns: Map{
		{Raw: "Creado en hora", Canonical: "create_time"},
		{Raw: "Creado en fecha", Canonical: "create_date"},
		{Raw: "ID de pago o reembolso", Canonical: "id"},
		{Raw: "Creado por", Canonical: "created_by"},
		{Raw: "Tipo de pago", Canonical: "pay_method"},
		{Raw: "Tipo de tarjeta de crédito", Canonical: "card_type"},
		{Raw: "Bruto", Canonical: "gross"},
		{Raw: "Gasto de gestión", Canonical: "tpv_charge"},
		{Raw: "Neto", Canonical: "net"},
		{Raw: "Pago bruto", Canonical: "gross_paid"},
		{Raw: "Gasto de gestión de pago", Canonical: "tpv_charge_paid"},
		{Raw: "Pago neto", Canonical: "net_paid"},
		{Raw: "Reembolso bruto", Canonical: "gross_refund"},
		{Raw: "Gasto de gestión de reembolso", Canonical: "gross_refund_tpv_charge"},
		{Raw: "Reembolso neto", Canonical: "net_refund"},
		{Raw: "Subtotal pagado", Canonical: "subtotal_paid"},
		{Raw: "Impuesto pagado", Canonical: "tax_paid"},
		{Raw: "ID de reserva", Canonical: "booking_id"},
	},
	FloatFields: []string{
		"gross",
		"tpv_charge",
		"net",
		"gross_paid",
		"tpv_charge_paid",
		"net_paid",
		"gross_refund",
		"gross_refund_tpv_charge",
		"net_refund",
		"subtotal_paid",
		"tax_paid",
	},
	IdentifierFields: []string{"id", "booking_id"},
	CurrencySymbol:   "€",
}
