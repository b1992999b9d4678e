package ports

import "context"

// WeatherGateway fetches current conditions from the upstream forecast
// provider and hands back its JSON body untouched.
type WeatherGateway interface {
	CurrentConditions(ctx context.Context) ([]byte, error)
}
