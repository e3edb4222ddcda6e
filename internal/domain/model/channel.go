package model

import domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"

// Channel is an independent ordering context with its own menu and pause state.
type Channel string

const (
	ChannelRestaurant Channel = "restaurant"
	ChannelBar        Channel = "bar"
)

// Channels lists every service channel.
var Channels = []Channel{ChannelRestaurant, ChannelBar}

// ParseChannel validates a raw service type.
func ParseChannel(raw string) (Channel, error) {
	switch Channel(raw) {
	case ChannelRestaurant, ChannelBar:
		return Channel(raw), nil
	}
	return "", domainErrors.Validation("serviceType", "unknown service type "+raw)
}

// ParseOptionalChannel is ParseChannel that maps empty input to the zero channel.
func ParseOptionalChannel(raw string) (Channel, error) {
	if raw == "" {
		return "", nil
	}
	return ParseChannel(raw)
}
