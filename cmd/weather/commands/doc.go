// Package commands defines the weather CLI, a terminal front-end for the
// same search flows the HTTP server exposes.
//
// Commands
//
//   - city [name]             Current weather and 5-day forecast for a city
//   - coords --lat --lon      The same for a coordinate pair
//
// # Implementation
//
// The root command builds the weather client and the search orchestrator
// before any subcommand runs. Settings come from flags first, then from the
// environment (OPENWEATHER_API_KEY, OPENWEATHER_BASE_URL, DEFAULT_CITY) and a
// .env file in the working directory.
package commands
