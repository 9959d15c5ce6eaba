package schema

// bookingsReport describes the "bookings" export (Spanish locale headers).
var bookingsReport = &Report{
	Kind: Bookings,
	Columns: Map{
		{Raw: "ID de reserva", Canonical: "id"},
		{Raw: "¿Cancelado?", Canonical: "cancelled"},
		{Raw: "Creado en hora", Canonical: "create_time"},
		{Raw: "Creado en fecha", Canonical: "create_date"},
		{Raw: "Reservado por", Canonical: "booked_by"},
		{Raw: "ID de artículo", Canonical: "article_id"},
		{Raw: "Artículo", Canonical: "article"},
		{Raw: "Hora de inicio", Canonical: "start_hour"},
		{Raw: "Fecha de inicio", Canonical: "start_date"},
		{Raw: "Día de disponibilidad", Canonical: "start_day"},
		{Raw: "Encabezado", Canonical: "public_header"},
		{Raw: "Encabezado privado", Canonical: "private_header"},
		{Raw: "Contacto", Canonical: "contact"},
		{Raw: "Teléfono", Canonical: "phone"},
		{Raw: "Idioma de contacto", Canonical: "language"},
		{Raw: "¿Suscrito a mensajes de texto?", Canonical: "opt_in_txt"},
		{Raw: "E-mail", Canonical: "email"},
		{Raw: "¿Está suscrito a e-mail?", Canonical: "opt_in_email"},
		{Raw: "Notas de reserva", Canonical: "notes"},
		{Raw: "N.º de pasajeros", Canonical: "pax"},
		{Raw: "Referencia de reserva online", Canonical: "online_ref"},
		{Raw: "Hoja de total", Canonical: "price_sheet"},
		{Raw: "Subtotal", Canonical: "subtotal"},
		{Raw: "Impuesto (21 %)", Canonical: "tax_21"},
		{Raw: "Impuesto total", Canonical: "tax_total"},
		{Raw: "Total", Canonical: "total"},
		{Raw: "Subtotal pagado", Canonical: "subtotal_paid"},
		{Raw: "Impuesto (21 %) pagado", Canonical: "tax_21_paid"},
		{Raw: "Impuestos totales pagados", Canonical: "tax_total_paid"},
		{Raw: "Total pagado", Canonical: "total_paid"},
		{Raw: "Subtotal pagado a Afiliado", Canonical: "subtotal_paid_affiliate"},
		{Raw: "Impuestos pagados a Afiliado", Canonical: "tax_paid_affiliate"},
		{Raw: "Total pagado a Afiliado", Canonical: "total_paid_affiliate"},
		{Raw: "Ingresos netos Cobrados", Canonical: "net_profit"},
		{Raw: "Gastos de gestión", Canonical: "tpv_charge"},
		{Raw: "Total pagado tras los gastos de gestión", Canonical: "total_paid_after_tpv"},
		{Raw: "Gastos de gestión Cobrado al Afiliado", Canonical: "tpv_charged_to_affiliate"},
		{Raw: "Total pagado al Afiliado tras los gastos de gestión", Canonical: "total_paid_affiliate_after_tpv"},
		{Raw: "Cantidad debida", Canonical: "debt_amount"},
		{Raw: "Estado de pago", Canonical: "payment_status"},
		{Raw: "Afiliado", Canonical: "affiliate"},
		{Raw: "Cupón", Canonical: "voucher"},
		{Raw: "Descripción de hoja de factura", Canonical: "sheet_description"},
		{Raw: "Hoja de factura", Canonical: "invoice_sheet"},
		{Raw: "Factura Subtotal", Canonical: "invoice_subtotal"},
		{Raw: "Impuesto de factura", Canonical: "invoice_tax"},
		{Raw: "Total de factura", Canonical: "invoice_total"},
		{Raw: "¿Facturado?", Canonical: "invoiced"},
		{Raw: "A pagar al afiliado", Canonical: "affiliate_to_be_paid"},
		{Raw: "Pagado a Afiliado", Canonical: "affiliate_paid"},
		{Raw: "Por cobrar al afiliado", Canonical: "affiliate_pending"},
		{Raw: "Recibido de Afiliado", Canonical: "affiliate_received"},
	},
	IntegerColumns: []string{"pax"},
	FloatFields: []string{
		"subtotal",
		"tax_21",
		"tax_total",
		"total",
		"subtotal_paid",
		"tax_21_paid",
		"tax_total_paid",
		"total_paid",
		"subtotal_paid_affiliate",
		"tax_paid_affiliate",
		"total_paid_affiliate",
		"net_profit",
		"tpv_charge",
		"total_paid_after_tpv",
		"tpv_charged_to_affiliate",
		"total_paid_affiliate_after_tpv",
		"debt_amount",
		"invoice_subtotal",
		"invoice_tax",
		"invoice_total",
		"affiliate_to_be_paid",
		"affiliate_paid",
		"affiliate_pending",
		"affiliate_received",
	},
	IdentifierFields: []string{"id"},
	CurrencySymbol:   "€",
}
