package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnected"

	ActionExternalServiceFailed = "external_service_failed"
	ActionPricingFetched        = "pricing_fetched"
	ActionReservationHandoff    = "reservation_handoff"
)
