package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
WTL cab site

Usage:
  site [-mode site] [-config-path config.yaml]

Flags:
  -mode          application mode (default "site")
  -config-path   path to the config yaml file (default "config.yaml")
  -help          show this message

Every config key can be overridden by an environment variable, for example:
  SERVER_PORT            http port (default 8080)
  PRICING_API_URL        pricing endpoint (default https://api.worldtriplink.com/api/cab1)
  PRICING_API_TIMEOUT    pricing request timeout (default 10s)
  BOOKING_INVOICE_URL    hand-off route (default /booking/invoice)
  BOOKING_TOKEN_SECRET   HMAC secret for quote and hand-off tokens
  LANDING_DEFAULT_CITY   city served on / (default Cab-Service-Gondia)
  RABBITMQ_ENABLED       publish reservation events (default false)
  TELEMETRY_ENABLED      export traces to stdout (default false)
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
